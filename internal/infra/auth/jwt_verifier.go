// Package auth provides the identity verifiers that turn bearer tokens into
// caller identities.
package auth

import (
	"context"
	"time"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrMissingSubject is returned for tokens without a sub claim.
var ErrMissingSubject = errors.New("token has no subject")

// identityClaims are the claims carried by HS256 identity tokens.
type identityClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 tokens signed with a shared secret. It serves
// local development and tests where no Firebase project is available.
type JWTVerifier struct {
	secret []byte
	issuer string
}

var _ service.IdentityVerifier = (*JWTVerifier)(nil)

// NewJWTVerifier is the constructor for JWTVerifier. An empty issuer skips the iss check.
func NewJWTVerifier(secret, issuer string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("auth.jwtSecret must be provided for the jwt provider")
	}

	return &JWTVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Verify checks the signature, expiry and issuer of the token.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &identityClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...); err != nil {
		return nil, errors.Wrap(err, "invalid identity token")
	}
	if claims.Subject == "" {
		return nil, errors.WithStack(ErrMissingSubject)
	}

	return &entity.Identity{
		UID:   claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

// Issue signs a token for the identity that Verify accepts until ttl elapses.
func (v *JWTVerifier) Issue(identity *entity.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := identityClaims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign identity token")
	}

	return signed, nil
}
