package crypto_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
)

func TestHMACHex(t *testing.T) {
	key := []byte("hashing-key-32-bytes-long-secret")

	t.Run("deterministic", func(t *testing.T) {
		h1 := crypto.HMACHex(key, "+237600000001")
		h2 := crypto.HMACHex(key, "+237600000001")
		assert.Equal(t, h1, h2)
	})

	t.Run("produces 64-char hex", func(t *testing.T) {
		assert.Len(t, crypto.HMACHex(key, "+237600000001"), 64)
	})

	t.Run("different messages produce different digests", func(t *testing.T) {
		assert.NotEqual(t,
			crypto.HMACHex(key, "+237600000001"),
			crypto.HMACHex(key, "+237600000002"),
		)
	})

	t.Run("different keys produce different digests", func(t *testing.T) {
		key2 := []byte("another-hashing-key-32-bytes-ok!")
		assert.NotEqual(t,
			crypto.HMACHex(key, "+237600000001"),
			crypto.HMACHex(key2, "+237600000001"),
		)
	})
}

func TestVerifyHMAC(t *testing.T) {
	key := []byte("hashing-key-32-bytes-long-secret")
	digest := crypto.HMACHex(key, "hunter2")

	t.Run("correct message verifies", func(t *testing.T) {
		assert.True(t, crypto.VerifyHMAC(key, "hunter2", digest))
	})

	t.Run("wrong message rejects", func(t *testing.T) {
		assert.False(t, crypto.VerifyHMAC(key, "hunter3", digest))
	})

	t.Run("tampered digest rejects", func(t *testing.T) {
		tampered := "0" + digest[1:]
		if tampered == digest {
			tampered = "1" + digest[1:]
		}
		assert.False(t, crypto.VerifyHMAC(key, "hunter2", tampered))
	})
}

func TestDeriveKey(t *testing.T) {
	salt := []byte("configured-hashing-salt")

	t.Run("stable across invocations", func(t *testing.T) {
		k1, err := crypto.DeriveKey(salt, "hashing", 32)
		require.NoError(t, err)
		k2, err := crypto.DeriveKey(salt, "hashing", 32)
		require.NoError(t, err)
		assert.Equal(t, k1, k2)
		assert.Len(t, k1, 32)
	})

	t.Run("purposes are independent", func(t *testing.T) {
		k1, err := crypto.DeriveKey(salt, "hashing", 32)
		require.NoError(t, err)
		k2, err := crypto.DeriveKey(salt, "encryption", 32)
		require.NoError(t, err)
		assert.NotEqual(t, k1, k2)
	})

	t.Run("rejects empty salt", func(t *testing.T) {
		_, err := crypto.DeriveKey(nil, "hashing", 32)
		assert.Error(t, err)
	})
}

func newTestEncryptor(t *testing.T) *crypto.Encryptor {
	t.Helper()
	key, err := crypto.DeriveKey([]byte("test-salt"), "encryption", 32)
	require.NoError(t, err)
	enc, err := crypto.NewEncryptor(key)
	require.NoError(t, err)
	return enc
}

func TestEncryptor(t *testing.T) {
	enc := newTestEncryptor(t)

	t.Run("round trip", func(t *testing.T) {
		ct, err := enc.EncryptEncode([]byte("CM"))
		require.NoError(t, err)
		pt, err := enc.DecodeDecryptString(ct)
		require.NoError(t, err)
		assert.Equal(t, "CM", pt)
	})

	t.Run("nonce freshness: same plaintext, different ciphertexts", func(t *testing.T) {
		ct1, err := enc.EncryptEncode([]byte("CM"))
		require.NoError(t, err)
		ct2, err := enc.EncryptEncode([]byte("CM"))
		require.NoError(t, err)
		assert.NotEqual(t, ct1, ct2)
	})

	t.Run("tampered ciphertext fails authentication", func(t *testing.T) {
		ct, err := enc.EncryptEncode([]byte("CM"))
		require.NoError(t, err)
		raw, err := base64.StdEncoding.DecodeString(ct)
		require.NoError(t, err)
		raw[len(raw)-1] ^= 0x01
		_, err = enc.DecodeDecrypt(base64.StdEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
	})

	t.Run("garbage input fails", func(t *testing.T) {
		_, err := enc.DecodeDecrypt("not base64!!")
		assert.ErrorIs(t, err, domain.ErrDecryptionFailed)
	})

	t.Run("rejects wrong key length", func(t *testing.T) {
		_, err := crypto.NewEncryptor([]byte("short"))
		assert.Error(t, err)
	})
}

func TestX25519(t *testing.T) {
	t.Run("agreement is symmetric", func(t *testing.T) {
		a, err := crypto.GenerateX25519()
		require.NoError(t, err)
		b, err := crypto.GenerateX25519()
		require.NoError(t, err)

		s1, err := a.Agree(b.Public())
		require.NoError(t, err)
		s2, err := b.Agree(a.Public())
		require.NoError(t, err)
		assert.Equal(t, s1, s2)
		assert.Len(t, s1, 32)
	})

	t.Run("reconstructed pair agrees identically", func(t *testing.T) {
		a, err := crypto.GenerateX25519()
		require.NoError(t, err)
		b, err := crypto.GenerateX25519()
		require.NoError(t, err)

		a2, err := crypto.NewKeyPair(a.Private(), a.Public())
		require.NoError(t, err)

		s1, err := a.Agree(b.Public())
		require.NoError(t, err)
		s2, err := a2.Agree(b.Public())
		require.NoError(t, err)
		assert.Equal(t, s1, s2)
	})

	t.Run("rejects all-zero peer key", func(t *testing.T) {
		a, err := crypto.GenerateX25519()
		require.NoError(t, err)
		_, err = a.Agree(make([]byte, 32))
		assert.ErrorIs(t, err, domain.ErrInvalidPublicKey)
	})

	t.Run("rejects short peer key", func(t *testing.T) {
		a, err := crypto.GenerateX25519()
		require.NoError(t, err)
		_, err = a.Agree([]byte{1, 2, 3})
		assert.ErrorIs(t, err, domain.ErrInvalidPublicKey)
	})
}

func TestValidX25519PublicKey(t *testing.T) {
	t.Run("accepts a generated public key", func(t *testing.T) {
		kp, err := crypto.GenerateX25519()
		require.NoError(t, err)
		assert.NoError(t, crypto.ValidX25519PublicKey(kp.PublicBase64()))
	})

	t.Run("rejects non-base64", func(t *testing.T) {
		err := crypto.ValidX25519PublicKey("%%%")
		assert.ErrorIs(t, err, domain.ErrInvalidPublicKey)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		err := crypto.ValidX25519PublicKey(base64.StdEncoding.EncodeToString([]byte("short")))
		assert.ErrorIs(t, err, domain.ErrInvalidPublicKey)
	})

	t.Run("rejects all-zero key", func(t *testing.T) {
		err := crypto.ValidX25519PublicKey(base64.StdEncoding.EncodeToString(make([]byte, 32)))
		assert.ErrorIs(t, err, domain.ErrInvalidPublicKey)
	})
}
