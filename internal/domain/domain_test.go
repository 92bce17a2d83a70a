package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/domain"
)

func TestNewPhoneNumber(t *testing.T) {
	t.Run("accepts valid E.164", func(t *testing.T) {
		for _, raw := range []string{"+237650000001", "+15551234567", "+4915112345678"} {
			p, err := domain.NewPhoneNumber(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, p.String())
			assert.False(t, p.IsZero())
		}
	})

	t.Run("canonicalizes formatted input", func(t *testing.T) {
		// Spellings of the same number must hash identically, so they must
		// all reduce to one canonical string.
		for _, raw := range []string{
			"+237 650 000 001",
			"+237-650-000-001",
			"+237.650.000.001",
			"+237 (650) 000-001",
		} {
			p, err := domain.NewPhoneNumber(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, "+237650000001", p.String(), raw)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		for _, raw := range []string{
			"",                  // empty
			"237650000001",      // missing plus
			"650 000 001",       // local format, no country code
			"+0237650000001",    // leading zero after plus
			"+123456",           // too short
			"+1234567890123456", // too long
			"+2376500x0001",     // non-digit
			"00237650000001",    // international prefix form
		} {
			_, err := domain.NewPhoneNumber(raw)
			require.Error(t, err, raw)
			assert.True(t, errors.Is(err, domain.ErrInvalidPhoneNumber), raw)
		}
	})
}

func TestEID(t *testing.T) {
	t.Run("derivation is deterministic", func(t *testing.T) {
		a := domain.DeriveEID("phone-hash-1")
		b := domain.DeriveEID("phone-hash-1")
		c := domain.DeriveEID("phone-hash-2")

		assert.Equal(t, a.String(), b.String())
		assert.NotEqual(t, a.String(), c.String())
		assert.False(t, a.IsZero())
	})

	t.Run("hex form round-trips", func(t *testing.T) {
		a := domain.DeriveEID("phone-hash-1")
		require.Len(t, a.String(), 32)

		parsed, err := domain.NewEID(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	})

	t.Run("accepts dashed UUID form", func(t *testing.T) {
		parsed, err := domain.NewEID("3d6afaa9-0d8e-5a6f-8a4e-123456789abc")
		require.NoError(t, err)
		assert.Equal(t, "3d6afaa90d8e5a6f8a4e123456789abc", parsed.String())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		for _, raw := range []string{"", "not-a-uuid", "3d6afaa90d8e"} {
			_, err := domain.NewEID(raw)
			require.Error(t, err, raw)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), raw)
		}
	})
}

func TestIsSupportedPlatform(t *testing.T) {
	assert.True(t, domain.IsSupportedPlatform("gmail"))
	assert.False(t, domain.IsSupportedPlatform("Gmail")) // callers lowercase first
	assert.False(t, domain.IsSupportedPlatform("twitter"))
	assert.False(t, domain.IsSupportedPlatform(""))
}

func TestSecretRedaction(t *testing.T) {
	t.Run("SecretString", func(t *testing.T) {
		s := domain.SecretString("hunter2")
		assert.Equal(t, "[REDACTED]", s.String())
		assert.Equal(t, "[REDACTED]", s.LogValue().String())
		assert.Equal(t, "hunter2", s.Expose())
		assert.False(t, s.IsEmpty())
		assert.True(t, domain.SecretString("").IsEmpty())
	})

	t.Run("SecretBytes", func(t *testing.T) {
		b := domain.SecretBytes("key-material")
		assert.Equal(t, "[REDACTED]", b.String())
		assert.Equal(t, "[REDACTED]", b.LogValue().String())
		assert.Equal(t, []byte("key-material"), b.Expose())
		assert.False(t, b.IsEmpty())
		assert.True(t, domain.SecretBytes(nil).IsEmpty())
	})
}

func TestEntityHasSession(t *testing.T) {
	e := &domain.Entity{}
	assert.False(t, e.HasSession())

	e.DeviceID = "ab12"
	assert.True(t, e.HasSession())
}
