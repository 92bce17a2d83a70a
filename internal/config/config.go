// Package config provides configuration loading using koanf.
// Precedence: environment variables over compiled defaults; production salts
// may additionally be replaced at startup from AWS Secrets Manager.
package config

import (
	"context"
	"fmt"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/relaysms/vault/internal/domain"
)

// Config holds all service configuration.
type Config struct {
	// Mode is the run mode: "development" or "production".
	Mode string `koanf:"mode"`

	// Logging configuration
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`

	GRPC     GRPCConfig     `koanf:"grpc"`
	TLS      TLSConfig      `koanf:"tls"`
	Secrets  SecretsConfig  `koanf:"secrets"`
	Keystore KeystoreConfig `koanf:"keystore"`

	DynamoDB DynamoDBConfig `koanf:"dynamodb"`
	Redis    RedisConfig    `koanf:"redis"`
	AWS      AWSConfig      `koanf:"aws"`
	OTP      OTPConfig      `koanf:"otp"`
	OTEL     OTELConfig     `koanf:"otel"`
}

// GRPCConfig holds the listener configuration. In production mode the service
// listens with TLS on SSLPort; otherwise it listens in cleartext on Port.
type GRPCConfig struct {
	Host    string `koanf:"host"`
	Port    int    `koanf:"port"`
	SSLPort int    `koanf:"ssl_port"`

	// HealthPort serves the plain HTTP health endpoint in both modes.
	HealthPort int `koanf:"health_port"`
}

// TLSConfig holds the certificate paths, required in production mode.
type TLSConfig struct {
	Certificate string `koanf:"certificate"`
	Key         string `koanf:"key"`
}

// SecretsConfig holds the key-derivation salts. Each is required; in
// production they are typically loaded from Secrets Manager instead of the
// environment, keyed by SecretID.
type SecretsConfig struct {
	HashingSalt    domain.SecretString `koanf:"hashing_salt"`
	EncryptionSalt domain.SecretString `koanf:"encryption_salt"`
	SecretID       string              `koanf:"secret_id"`
}

// KeystoreConfig holds the on-disk key file directories. Path holds the
// per-entity key pairs; StaticPath holds the pre-generated static pool
// managed by the statickeygen CLI.
type KeystoreConfig struct {
	Path       string `koanf:"path"`
	StaticPath string `koanf:"static_path"`
}

// DynamoDBConfig holds DynamoDB configuration.
type DynamoDBConfig struct {
	Endpoint     string        `koanf:"endpoint"` // Empty for production (uses default AWS endpoint)
	EntityTable  string        `koanf:"entity_table"`
	TokenTable   string        `koanf:"token_table"`
	Timeout      time.Duration `koanf:"timeout"`
	CreateTables bool          `koanf:"create_tables"` // Development convenience
}

// RedisConfig holds Redis configuration for the OTP gateway.
type RedisConfig struct {
	Addr     string              `koanf:"addr"`
	Password domain.SecretString `koanf:"password"`
	DB       int                 `koanf:"db"`
	Timeout  time.Duration       `koanf:"timeout"`
}

// AWSConfig holds AWS SDK configuration.
type AWSConfig struct {
	Region   string `koanf:"region"`
	Endpoint string `koanf:"endpoint"` // LocalStack endpoint for development
}

// OTPConfig holds proof-of-ownership delivery settings.
type OTPConfig struct {
	// Validity is how long a delivered code verifies.
	Validity time.Duration `koanf:"validity"`
	// ResendBackoff is the minimum wait between deliveries to one number.
	ResendBackoff time.Duration `koanf:"resend_backoff"`
	// MaxAttempts bounds verification attempts per delivered code.
	MaxAttempts int `koanf:"max_attempts"`
	// SenderID is the SMS sender identity, where the region supports one.
	SenderID string `koanf:"sender_id"`
	// UseSNS selects real SMS delivery; off, codes go to the log.
	UseSNS bool `koanf:"use_sns"`
}

// OTELConfig holds OpenTelemetry configuration.
type OTELConfig struct {
	Endpoint    string `koanf:"endpoint"` // Empty disables OTLP export
	ServiceName string `koanf:"service_name"`
}

// envKeys maps the environment variable surface onto koanf paths. Variables
// not listed here are ignored, which keeps unrelated environment noise out of
// the unmarshal.
var envKeys = map[string]string{
	"MODE":       "mode",
	"LOG_LEVEL":  "log_level",
	"LOG_FORMAT": "log_format",

	"GRPC_HOST":        "grpc.host",
	"GRPC_PORT":        "grpc.port",
	"GRPC_SSL_PORT":    "grpc.ssl_port",
	"GRPC_HEALTH_PORT": "grpc.health_port",

	"SSL_CERTIFICATE": "tls.certificate",
	"SSL_KEY":         "tls.key",

	"HASHING_SALT":    "secrets.hashing_salt",
	"ENCRYPTION_SALT": "secrets.encryption_salt",
	"VAULT_SECRET_ID": "secrets.secret_id",

	"KEYSTORE_PATH":        "keystore.path",
	"STATIC_KEYSTORE_PATH": "keystore.static_path",

	"DYNAMODB_ENDPOINT":      "dynamodb.endpoint",
	"DYNAMODB_ENTITY_TABLE":  "dynamodb.entity_table",
	"DYNAMODB_TOKEN_TABLE":   "dynamodb.token_table",
	"DYNAMODB_TIMEOUT":       "dynamodb.timeout",
	"DYNAMODB_CREATE_TABLES": "dynamodb.create_tables",

	"REDIS_ADDR":     "redis.addr",
	"REDIS_PASSWORD": "redis.password",
	"REDIS_DB":       "redis.db",
	"REDIS_TIMEOUT":  "redis.timeout",

	"AWS_REGION":   "aws.region",
	"AWS_ENDPOINT": "aws.endpoint",

	"OTP_VALIDITY":       "otp.validity",
	"OTP_RESEND_BACKOFF": "otp.resend_backoff",
	"OTP_MAX_ATTEMPTS":   "otp.max_attempts",
	"OTP_SENDER_ID":      "otp.sender_id",
	"OTP_USE_SNS":        "otp.use_sns",

	"OTEL_ENDPOINT":     "otel.endpoint",
	"OTEL_SERVICE_NAME": "otel.service_name",
}

// defaults returns a Config with compiled default values.
func defaults() *Config {
	return &Config{
		Mode:      "development",
		LogLevel:  "info",
		LogFormat: "json",

		GRPC: GRPCConfig{
			Host:       "0.0.0.0",
			Port:       9090,
			SSLPort:    9443,
			HealthPort: 8080,
		},
		Keystore: KeystoreConfig{
			Path:       "keystore",
			StaticPath: "static_keystore",
		},
		DynamoDB: DynamoDBConfig{
			EntityTable: "entities",
			TokenTable:  "entity_tokens",
			Timeout:     domain.DynamoDBTimeout,
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			DB:      0,
			Timeout: domain.RedisTimeout,
		},
		AWS: AWSConfig{
			Region: "us-east-1",
		},
		OTP: OTPConfig{
			Validity:      domain.OTPValidityDuration,
			ResendBackoff: domain.OTPResendBackoff,
			MaxAttempts:   domain.MaxOTPVerifyAttempts,
		},
		OTEL: OTELConfig{
			ServiceName: "vault",
		},
	}
}

// Load loads configuration following the precedence:
// 1. Environment variables (highest)
// 2. Compiled defaults (lowest)
//
// Required keys missing in production mode fail startup.
func Load(ctx context.Context) (*Config, error) {
	k := koanf.New(".")

	cfg := defaults()

	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validateRequired(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateRequired checks that required configuration is present.
func validateRequired(cfg *Config) error {
	if cfg.Keystore.Path == "" {
		return fmt.Errorf("%w: keystore.path", domain.ErrConfigRequired)
	}

	if !cfg.IsProd() {
		return nil
	}

	if cfg.TLS.Certificate == "" {
		return fmt.Errorf("%w: tls.certificate", domain.ErrConfigRequired)
	}
	if cfg.TLS.Key == "" {
		return fmt.Errorf("%w: tls.key", domain.ErrConfigRequired)
	}
	if cfg.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr", domain.ErrConfigRequired)
	}
	// Salts must come from the environment or Secrets Manager.
	if cfg.Secrets.SecretID == "" {
		if cfg.Secrets.HashingSalt.IsEmpty() {
			return fmt.Errorf("%w: secrets.hashing_salt", domain.ErrConfigRequired)
		}
		if cfg.Secrets.EncryptionSalt.IsEmpty() {
			return fmt.Errorf("%w: secrets.encryption_salt", domain.ErrConfigRequired)
		}
	}
	return nil
}

// IsProd returns true if running in production mode.
func (c *Config) IsProd() bool {
	return c.Mode == "production"
}
