// Package auth implements the vault's session credentials: the deterministic
// device identifier and the long-lived token (LLT), both keyed on the X25519
// agreement between the server device_id key pair and the client device_id
// public key.
package auth

import (
	"encoding/hex"

	"github.com/relaysms/vault/internal/crypto"
)

// ComputeDeviceID derives the device identifier as
// hex(HMAC-SHA256(sharedKey, phone || clientPubB64)).
// The concatenation has no separator; clients recompute the same value
// offline and present it as an authenticator on payload-path RPCs.
func ComputeDeviceID(sharedKey []byte, phoneNumber, clientPublicKeyB64 string) string {
	return hex.EncodeToString(crypto.HMAC(sharedKey, []byte(phoneNumber+clientPublicKeyB64)))
}
