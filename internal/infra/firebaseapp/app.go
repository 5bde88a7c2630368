// Package firebaseapp bootstraps the Firebase Admin SDK shared by the
// Firestore store and the Firebase identity verifier.
package firebaseapp

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"kanakku/config"
	"kanakku/internal/domain/lifecycle"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// App is an initialized Firebase application together with the client
// options it was built from.
type App struct {
	app        *firebase.App
	projectID  string
	databaseID string
	opts       []option.ClientOption
}

// New initializes the Firebase app from configuration. Inline service account
// JSON wins over a credentials file; with neither, application default
// credentials are used.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	fbCfg := cfg.Firebase
	if fbCfg == nil {
		fbCfg = &config.FirebaseConfig{}
	}

	opts, err := ClientOptions(fbCfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	var appCfg *firebase.Config
	if fbCfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: fbCfg.ProjectID}
	}
	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized",
		slog.String("projectId", fbCfg.ProjectID),
		slog.Bool("inlineCredentials", fbCfg.CredentialsJSON != ""),
	)

	return &App{
		app:        app,
		projectID:  fbCfg.ProjectID,
		databaseID: fbCfg.DatabaseID,
		opts:       opts,
	}, nil
}

// Auth returns the Firebase Auth client.
func (a *App) Auth(ctx context.Context) (*auth.Client, error) {
	client, err := a.app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase auth client")
	}

	return client, nil
}

// Firestore returns a client for the configured database.
func (a *App) Firestore(ctx context.Context) (*firestore.Client, error) {
	if a.databaseID == "" {
		client, err := a.app.Firestore(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firestore client")
		}

		return client, nil
	}

	if a.projectID == "" {
		return nil, errors.New("firebase.projectId is required with firebase.databaseId")
	}
	client, err := firestore.NewClientWithDatabase(ctx, a.projectID, a.databaseID, a.opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create Firestore client for database %s", a.databaseID)
	}

	return client, nil
}

// ClientOptions builds the credential options for the configured source.
func ClientOptions(cfg *config.FirebaseConfig) ([]option.ClientOption, error) {
	switch {
	case cfg.CredentialsJSON != "":
		raw, err := NormalizeServiceAccountJSON(cfg.CredentialsJSON)
		if err != nil {
			return nil, err
		}

		return []option.ClientOption{option.WithCredentialsJSON(raw)}, nil
	case cfg.CredentialsPath != "":
		return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsPath)}, nil
	default:
		return nil, nil
	}
}

// NormalizeServiceAccountJSON restores real newlines in a private key that
// was stored with escaped "\n" sequences, as happens when the JSON passes
// through an environment variable.
func NormalizeServiceAccountJSON(raw string) ([]byte, error) {
	var account map[string]any
	if err := json.Unmarshal([]byte(raw), &account); err != nil {
		return nil, errors.Wrap(err, "invalid service account JSON")
	}

	if key, ok := account["private_key"].(string); ok {
		account["private_key"] = strings.ReplaceAll(key, `\n`, "\n")
	}

	out, err := json.Marshal(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode service account JSON")
	}

	return out, nil
}
