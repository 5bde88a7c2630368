package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"kanakku/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultUploadBucketURL    = "mem://"
	defaultUploadMaxBytes     = 5 << 20
	defaultCurrency           = "INR"

	firebaseServiceAccountEnv = "FIREBASE_SERVICE_ACCOUNT"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Store selects the ledger store backend
	Store *StoreConfig `json:"store" yaml:"store"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Firebase configuration for Firestore and ID token verification
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Ledger configuration for cascades and batched writes
	Ledger *LedgerConfig `json:"ledger" yaml:"ledger"`

	// Upload configuration for product images
	Upload *UploadConfig `json:"upload" yaml:"upload"`

	// QRCode configuration for shop payment QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for ledger event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// StoreConfig selects the ledger store backend
type StoreConfig struct {
	// Driver type: "firestore", "postgres" or "memory"
	Driver string `json:"driver" yaml:"driver"`
}

// AuthConfig defines identity verification configuration
type AuthConfig struct {
	// Provider type: "firebase" for Firebase ID tokens or "jwt" for HS256 tokens
	Provider string `json:"provider" yaml:"provider"`

	// Shared secret for the jwt provider
	JWTSecret string `json:"jwtSecret" yaml:"jwtSecret"`

	// Expected issuer for the jwt provider, empty to skip the check
	JWTIssuer string `json:"jwtIssuer" yaml:"jwtIssuer"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Inline service account JSON, takes precedence over CredentialsPath
	CredentialsJSON string `json:"credentialsJson" yaml:"credentialsJson"`

	// Firestore database ID, empty for the default database
	DatabaseID string `json:"databaseId" yaml:"databaseId"`
}

// LedgerConfig defines cascade and batching behaviour
type LedgerConfig struct {
	// Maximum writes per committed batch, capped by the store limit
	BatchSize int `json:"batchSize" yaml:"batchSize"`

	// Soft-delete a shop's products together with the shop
	CascadeProductsOnShopDelete bool `json:"cascadeProductsOnShopDelete" yaml:"cascadeProductsOnShopDelete"`

	// Hard-delete products on account reset
	ResetIncludesProducts bool `json:"resetIncludesProducts" yaml:"resetIncludesProducts"`
}

// UploadConfig defines product image storage configuration
type UploadConfig struct {
	// gocloud.dev bucket URL, e.g. file:///var/lib/kanakku/uploads, gs://bucket or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// Key prefix for stored images
	Prefix string `json:"prefix" yaml:"prefix"`

	// Maximum accepted image size in bytes
	MaxBytes int64 `json:"maxBytes" yaml:"maxBytes"`

	// Public URL prefix joined with the object key, empty to store bare keys
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	Currency             string `json:"currency" yaml:"currency"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// FIREBASE_SERVICE_ACCOUNT carries the whole service account JSON and does not map onto a config key.
	if raw := strings.TrimSpace(os.Getenv(firebaseServiceAccountEnv)); raw != "" {
		cfg.Firebase.CredentialsJSON = raw
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = constants.StoreDriverFirestore
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Provider == "" {
		cfg.Auth.Provider = constants.AuthProviderFirebase
	}
	if cfg.Ledger == nil {
		cfg.Ledger = &LedgerConfig{}
	}
	if cfg.Upload == nil {
		cfg.Upload = &UploadConfig{}
	}
	if cfg.Upload.BucketURL == "" {
		cfg.Upload.BucketURL = defaultUploadBucketURL
	}
	if cfg.Upload.MaxBytes <= 0 {
		cfg.Upload.MaxBytes = defaultUploadMaxBytes
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Currency == "" {
		cfg.QRCode.Currency = defaultCurrency
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
