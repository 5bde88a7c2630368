package auth

import (
	"context"

	"kanakku/internal/domain/entity"
	"kanakku/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// firebaseVerifier verifies Firebase ID tokens.
type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier is the constructor for firebaseVerifier.
func NewFirebaseVerifier(client *auth.Client) service.IdentityVerifier {
	return &firebaseVerifier{client: client}
}

// Verify checks the ID token against Firebase and reads the email and name claims.
func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "invalid Firebase ID token")
	}

	return identityFromClaims(decoded.UID, decoded.Claims), nil
}

func identityFromClaims(uid string, claims map[string]any) *entity.Identity {
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &entity.Identity{
		UID:   uid,
		Email: email,
		Name:  name,
	}
}
