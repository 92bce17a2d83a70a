package auth_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/auth"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/domain/domaintest"
)

var testEpoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func mintTestLLT(t *testing.T, sharedKey []byte) (domain.EID, string, *domaintest.FakeClock) {
	t.Helper()
	eid := domain.DeriveEID("aabbccddeeff00112233445566778899aabbccddeeff00112233445566778899")
	clock := domaintest.NewFakeClock(testEpoch)
	token, err := auth.MintLLT(eid, sharedKey, domain.LongLivedTokenLifetime, clock)
	require.NoError(t, err)
	return eid, token, clock
}

func TestMintLLT(t *testing.T) {
	sharedKey := []byte("shared-key-32-bytes-long-secret!")

	t.Run("wire form is eid:payload.signature", func(t *testing.T) {
		eid, token, _ := mintTestLLT(t, sharedKey)

		outer, envelope, err := auth.SplitLLT(token)
		require.NoError(t, err)
		assert.Equal(t, eid.String(), outer)
		assert.Contains(t, envelope, ".")
		assert.NotContains(t, envelope, ":")
	})

	t.Run("payload is base64url JSON with eid, iat, exp", func(t *testing.T) {
		eid, token, _ := mintTestLLT(t, sharedKey)

		_, envelope, err := auth.SplitLLT(token)
		require.NoError(t, err)
		encoded, _, _ := strings.Cut(envelope, ".")
		payload, err := base64.RawURLEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.Contains(t, string(payload), `"eid":"`+eid.String()+`"`)
		assert.Contains(t, string(payload), `"iat"`)
		assert.Contains(t, string(payload), `"exp"`)
	})

	t.Run("rejects non-positive lifetime", func(t *testing.T) {
		eid := domain.DeriveEID("ff")
		_, err := auth.MintLLT(eid, sharedKey, 0, domaintest.NewFakeClock(testEpoch))
		assert.Error(t, err)
	})
}

func TestVerifyLLT(t *testing.T) {
	sharedKey := []byte("shared-key-32-bytes-long-secret!")

	t.Run("valid token verifies", func(t *testing.T) {
		eid, token, clock := mintTestLLT(t, sharedKey)

		outer, envelope, err := auth.SplitLLT(token)
		require.NoError(t, err)
		claims, err := auth.VerifyLLT(outer, envelope, sharedKey, clock)
		require.NoError(t, err)
		assert.Equal(t, eid.String(), claims.EID)
		assert.Equal(t, testEpoch, claims.IssuedAt.Time)
	})

	t.Run("expired token rejects", func(t *testing.T) {
		_, token, clock := mintTestLLT(t, sharedKey)
		clock.Advance(domain.LongLivedTokenLifetime + time.Hour)

		outer, envelope, err := auth.SplitLLT(token)
		require.NoError(t, err)
		_, err = auth.VerifyLLT(outer, envelope, sharedKey, clock)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("wrong key rejects", func(t *testing.T) {
		_, token, clock := mintTestLLT(t, sharedKey)

		outer, envelope, err := auth.SplitLLT(token)
		require.NoError(t, err)
		otherKey := []byte("another-key-32-bytes-long-secret")
		_, err = auth.VerifyLLT(outer, envelope, otherKey, clock)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("any tampered payload byte rejects", func(t *testing.T) {
		_, token, clock := mintTestLLT(t, sharedKey)
		outer, envelope, err := auth.SplitLLT(token)
		require.NoError(t, err)

		encoded, signature, _ := strings.Cut(envelope, ".")
		for i := 0; i < len(encoded); i++ {
			mutated := []byte(encoded)
			mutated[i] ^= 0x01
			_, err := auth.VerifyLLT(outer, string(mutated)+"."+signature, sharedKey, clock)
			assert.Error(t, err, "byte %d", i)
		}
	})

	t.Run("tampered signature rejects", func(t *testing.T) {
		_, token, clock := mintTestLLT(t, sharedKey)
		outer, envelope, err := auth.SplitLLT(token)
		require.NoError(t, err)

		encoded, signature, _ := strings.Cut(envelope, ".")
		mutated := []byte(signature)
		mutated[0] ^= 0x01
		_, err = auth.VerifyLLT(outer, encoded+"."+string(mutated), sharedKey, clock)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("envelope cannot be cross-pasted onto another eid", func(t *testing.T) {
		_, token, clock := mintTestLLT(t, sharedKey)
		_, envelope, err := auth.SplitLLT(token)
		require.NoError(t, err)

		otherEID := domain.DeriveEID("other").String()
		_, err = auth.VerifyLLT(otherEID, envelope, sharedKey, clock)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("missing dot rejects", func(t *testing.T) {
		clock := domaintest.NewFakeClock(testEpoch)
		_, err := auth.VerifyLLT("abc", "no-dot-here", sharedKey, clock)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestSplitLLT(t *testing.T) {
	t.Run("splits on the first colon only", func(t *testing.T) {
		eid, rest, err := auth.SplitLLT("abc:def:ghi")
		require.NoError(t, err)
		assert.Equal(t, "abc", eid)
		assert.Equal(t, "def:ghi", rest)
	})

	t.Run("rejects token without colon", func(t *testing.T) {
		_, _, err := auth.SplitLLT("no-colon")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("rejects empty parts", func(t *testing.T) {
		_, _, err := auth.SplitLLT(":envelope")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}
