package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/relaysms/vault/internal/auth"
)

func TestComputeDeviceID(t *testing.T) {
	sharedKey := []byte("shared-key-32-bytes-long-secret!")
	phone := "+237600000001"
	pubKey := "Zm9vYmFyLXB1YmxpYy1rZXktMzItYnl0ZXM9PT0="

	t.Run("deterministic", func(t *testing.T) {
		id1 := auth.ComputeDeviceID(sharedKey, phone, pubKey)
		id2 := auth.ComputeDeviceID(sharedKey, phone, pubKey)
		assert.Equal(t, id1, id2)
	})

	t.Run("produces 64-char hex", func(t *testing.T) {
		assert.Len(t, auth.ComputeDeviceID(sharedKey, phone, pubKey), 64)
	})

	t.Run("changes with the shared key", func(t *testing.T) {
		other := []byte("another-key-32-bytes-long-secret")
		assert.NotEqual(t,
			auth.ComputeDeviceID(sharedKey, phone, pubKey),
			auth.ComputeDeviceID(other, phone, pubKey),
		)
	})

	t.Run("changes with the phone number", func(t *testing.T) {
		assert.NotEqual(t,
			auth.ComputeDeviceID(sharedKey, phone, pubKey),
			auth.ComputeDeviceID(sharedKey, "+237600000002", pubKey),
		)
	})

	t.Run("changes with the public key", func(t *testing.T) {
		assert.NotEqual(t,
			auth.ComputeDeviceID(sharedKey, phone, pubKey),
			auth.ComputeDeviceID(sharedKey, phone, pubKey+"x"),
		)
	})

	t.Run("concatenation has no separator", func(t *testing.T) {
		// Moving a trailing character of the phone onto the public key
		// must not change the digest; the inputs are joined directly.
		id1 := auth.ComputeDeviceID(sharedKey, "+23760000000", "1"+pubKey)
		id2 := auth.ComputeDeviceID(sharedKey, "+237600000001", pubKey)
		assert.Equal(t, id1, id2)
	})
}
