// Package crypto provides the vault's cryptographic primitives: HMAC-SHA256
// digests, the AES-GCM envelope used for at-rest encryption, X25519 key
// agreement, and startup key derivation.
package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HMAC computes HMAC-SHA256(key, msg) and returns the 32-byte digest.
func HMAC(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

// HMACHex computes HMAC-SHA256(key, msg) and returns the hex digest.
// This is the form persisted for phone number, password, and account
// identifier hashes.
func HMACHex(key []byte, msg string) string {
	return hex.EncodeToString(HMAC(key, []byte(msg)))
}

// VerifyHMAC recomputes HMAC-SHA256(key, msg) and compares it against
// expectedHex in constant time.
func VerifyHMAC(key []byte, msg, expectedHex string) bool {
	computed := HMACHex(key, msg)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expectedHex)) == 1
}
