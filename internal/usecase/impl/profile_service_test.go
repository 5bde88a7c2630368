package impl

import (
	"context"
	"testing"

	"kanakku/internal/domain/entity"
	domainerrors "kanakku/internal/domain/errors"
	"kanakku/internal/domain/repository"
	"kanakku/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetProfile_DefaultIsNotPersisted(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	identity := &entity.Identity{UID: "u1", Email: "a@example.com", Name: "Anand"}

	profile, err := fx.profiles.GetProfile(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, &entity.Profile{
		UID:         "u1",
		Email:       "a@example.com",
		Name:        "Anand",
		Description: "Profile not set up",
	}, profile)

	_, err = fx.store.FindProfileByUID(ctx, "u1")
	assert.True(t, errors.Is(err, repository.ErrProfileNotFound))
}

func TestProfileService_UpdateProfile_Merges(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()
	identity := &entity.Identity{UID: "u1", Email: "a@example.com"}

	name, address := "Anand Stores", "12 Bazaar Road"
	first, err := fx.profiles.UpdateProfile(ctx, identity, &usecase.UpdateProfileInput{Name: &name, Address: &address})
	require.NoError(t, err)
	assert.Equal(t, "Anand Stores", first.Name)
	assert.Equal(t, "a@example.com", first.Email)
	assert.Empty(t, first.Description)
	require.NotNil(t, first.CreatedAt)

	phone := "9845012345"
	second, err := fx.profiles.UpdateProfile(ctx, identity, &usecase.UpdateProfileInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Anand Stores", second.Name)
	assert.Equal(t, "12 Bazaar Road", second.Address)
	assert.Equal(t, "9845012345", second.Phone)
	assert.Equal(t, *first.CreatedAt, *second.CreatedAt)
}

func TestProfileService_Unauthorized(t *testing.T) {
	fx := createTestLedger(t, ledgerOptions{})
	ctx := context.Background()

	_, err := fx.profiles.GetProfile(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = fx.profiles.UpdateProfile(ctx, &entity.Identity{}, &usecase.UpdateProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
