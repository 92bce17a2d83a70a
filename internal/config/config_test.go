package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/config"
	"github.com/relaysms/vault/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Mode)
	assert.False(t, cfg.IsProd())
	assert.Equal(t, "0.0.0.0", cfg.GRPC.Host)
	assert.Equal(t, 9090, cfg.GRPC.Port)
	assert.Equal(t, "entities", cfg.DynamoDB.EntityTable)
	assert.Equal(t, "entity_tokens", cfg.DynamoDB.TokenTable)
	assert.Equal(t, domain.DynamoDBTimeout, cfg.DynamoDB.Timeout)
	assert.Equal(t, domain.OTPValidityDuration, cfg.OTP.Validity)
	assert.Equal(t, domain.MaxOTPVerifyAttempts, cfg.OTP.MaxAttempts)
	assert.Equal(t, "vault", cfg.OTEL.ServiceName)
	assert.Equal(t, "keystore", cfg.Keystore.Path)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "7070")
	t.Setenv("GRPC_HOST", "127.0.0.1")
	t.Setenv("KEYSTORE_PATH", "/var/lib/vault/keys")
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("OTP_VALIDITY", "90s")
	t.Setenv("HASHING_SALT", "env-hashing-salt")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.GRPC.Port)
	assert.Equal(t, "127.0.0.1", cfg.GRPC.Host)
	assert.Equal(t, "/var/lib/vault/keys", cfg.Keystore.Path)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.Addr)
	assert.Equal(t, 90*time.Second, cfg.OTP.Validity)
	assert.Equal(t, "env-hashing-salt", cfg.Secrets.HashingSalt.Expose())
}

func TestLoadIgnoresUnrelatedEnv(t *testing.T) {
	t.Setenv("GRPC_SOMETHING_ELSE", "junk")
	t.Setenv("PATH_LIKE_NOISE", "junk")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.GRPC.Port)
}

func TestProductionValidation(t *testing.T) {
	setProdBase := func(t *testing.T) {
		t.Setenv("MODE", "production")
		t.Setenv("SSL_CERTIFICATE", "/etc/vault/tls.crt")
		t.Setenv("SSL_KEY", "/etc/vault/tls.key")
		t.Setenv("HASHING_SALT", "salt-a")
		t.Setenv("ENCRYPTION_SALT", "salt-b")
	}

	t.Run("complete production config loads", func(t *testing.T) {
		setProdBase(t)
		cfg, err := config.Load(context.Background())
		require.NoError(t, err)
		assert.True(t, cfg.IsProd())
	})

	t.Run("missing certificate fails", func(t *testing.T) {
		setProdBase(t)
		t.Setenv("SSL_CERTIFICATE", "")
		_, err := config.Load(context.Background())
		assert.ErrorIs(t, err, domain.ErrConfigRequired)
	})

	t.Run("missing salts fail without a secret id", func(t *testing.T) {
		setProdBase(t)
		t.Setenv("HASHING_SALT", "")
		_, err := config.Load(context.Background())
		assert.ErrorIs(t, err, domain.ErrConfigRequired)
	})

	t.Run("secret id stands in for env salts", func(t *testing.T) {
		setProdBase(t)
		t.Setenv("HASHING_SALT", "")
		t.Setenv("ENCRYPTION_SALT", "")
		t.Setenv("VAULT_SECRET_ID", "vault/prod/salts")
		cfg, err := config.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "vault/prod/salts", cfg.Secrets.SecretID)
	})

	t.Run("salts never print", func(t *testing.T) {
		setProdBase(t)
		cfg, err := config.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "[REDACTED]", cfg.Secrets.HashingSalt.String())
	})
}
