package auth

import (
	"context"
	"testing"
	"time"

	"kanakku/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_identity_secret_key_very_long_for_testing"

func TestJWTVerifier_IssueAndVerify(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "kanakku-test")
	require.NoError(t, err)

	identity := &entity.Identity{UID: "u1", Email: "a@example.com", Name: "Anand"}
	token, err := verifier.Issue(identity, time.Hour)
	require.NoError(t, err)

	got, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, identity, got)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier, err := NewJWTVerifier(testSecret, "kanakku-test")
	require.NoError(t, err)

	other, err := NewJWTVerifier("another_secret_key_that_is_long_enough", "kanakku-test")
	require.NoError(t, err)
	foreignIssuer, err := NewJWTVerifier(testSecret, "someone-else")
	require.NoError(t, err)

	identity := &entity.Identity{UID: "u1"}

	expired, err := verifier.Issue(identity, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := other.Issue(identity, time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := foreignIssuer.Issue(identity, time.Hour)
	require.NoError(t, err)
	noSubject, err := verifier.Issue(&entity.Identity{}, time.Hour)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1", "iss": "kanakku-test"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "u1",
		"iss": "kanakku-test",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired, wantErr: jwt.ErrTokenExpired},
		{name: "wrong key", token: wrongKey, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: wrongIssuer, wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "missing subject", token: noSubject, wantErr: ErrMissingSubject},
		{name: "missing expiry", token: noExpiry, wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "alg none", token: unsigned, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "garbage", token: "not-a-token", wantErr: jwt.ErrTokenMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifier.Verify(context.Background(), tt.token)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier("", "")
	assert.Error(t, err)
}

func TestIdentityFromClaims(t *testing.T) {
	got := identityFromClaims("uid-1", map[string]any{"email": "a@example.com", "name": 42})

	assert.Equal(t, &entity.Identity{UID: "uid-1", Email: "a@example.com"}, got)
}
