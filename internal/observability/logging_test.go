package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relaysms/vault/internal/observability"
)

func TestRedactingHandler(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		value        string
		shouldRedact bool
	}{
		{"hashing_salt is redacted", "hashing_salt", "salt123", true},
		{"password is redacted", "password", "mysecret", true},
		{"long_lived_token is redacted", "long_lived_token", "eid:abc.def", true},
		{"llt is redacted", "llt", "eid:abc.def", true},
		{"otp_code is redacted", "otp_code", "123456", true},
		{"device_id is redacted", "device_id", "deadbeef", true},
		{"shared_key is redacted", "shared_key", "a2V5", true},
		{"private_key is redacted", "private_key", "-----BEGIN", true},
		{"payload is redacted", "payload", "AAAAKA==", true},
		{"ciphertext is redacted", "ciphertext", "ZW5j", true},
		{"authorization is redacted", "authorization", "Bearer xyz", true},
		{"eid not redacted", "eid", "6b1f2a90", false},
		{"platform not redacted", "platform", "gmail", false},
		{"method not redacted", "method", "CreateEntity", false},
		{"error not redacted", "error", "something failed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := observability.NewRedactingHandler(&buf, nil)
			logger := slog.New(handler)

			logger.Info("test", tt.key, tt.value)
			output := buf.String()

			if tt.shouldRedact {
				assert.Contains(t, output, "[REDACTED]", "expected %s to be redacted", tt.key)
				assert.NotContains(t, output, tt.value, "expected actual value to not appear for %s", tt.key)
			} else {
				assert.Contains(t, output, tt.value, "expected %s value to appear", tt.key)
				assert.NotContains(t, output, "[REDACTED]", "expected %s to not be redacted", tt.key)
			}
		})
	}
}

func TestInitLogger(t *testing.T) {
	t.Run("creates logger with service context", func(t *testing.T) {
		cfg := observability.LogConfig{
			Level:       "info",
			Format:      "json",
			ServiceName: "vault-test",
			Mode:        "development",
		}

		logger := observability.InitLogger(cfg)
		assert.NotNil(t, logger)
	})

	t.Run("accepts error level", func(t *testing.T) {
		cfg := observability.LogConfig{
			Level:       "error",
			Format:      "text",
			ServiceName: "vault-test",
			Mode:        "development",
		}

		assert.NotNil(t, observability.InitLogger(cfg))
	})
}
