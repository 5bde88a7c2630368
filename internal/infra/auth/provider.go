package auth

import (
	"context"
	"log/slog"

	"kanakku/config"
	"kanakku/internal/domain/constants"
	"kanakku/internal/domain/lifecycle"
	"kanakku/internal/domain/service"
	"kanakku/internal/infra/firebaseapp"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the identity verifier provider.
type VerifierParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebaseapp.Lazy
}

// NewIdentityVerifier selects the verifier named by auth.provider.
func NewIdentityVerifier(params VerifierParams) (service.IdentityVerifier, error) {
	authCfg := params.Config.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{Provider: constants.AuthProviderFirebase}
	}

	switch authCfg.Provider {
	case constants.AuthProviderJWT:
		params.Logger.Warn("Using shared-secret JWT identity verifier")

		return NewJWTVerifier(authCfg.JWTSecret, authCfg.JWTIssuer)
	case constants.AuthProviderFirebase, "":
		app, err := params.Firebase.Get()
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		client, err := app.Auth(ctx)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Firebase identity verifier")

		return NewFirebaseVerifier(client), nil
	default:
		return nil, errors.Errorf("unknown auth provider %q", authCfg.Provider)
	}
}
