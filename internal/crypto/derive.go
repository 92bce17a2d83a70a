package crypto

import (
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// deriveIterations matches the original key schedule; the salt is a
// long-lived process secret, not a per-record value, so the iteration count
// exists to slow offline brute force of a leaked derived key only.
const deriveIterations = 4096

// DeriveKey deterministically derives an n-byte key from the configured salt.
// The same salt always yields the same key, which keeps phone number hashes
// stable across restarts. The hashing key and the AES encryption key are
// separate derivations distinguished by purpose.
func DeriveKey(salt []byte, purpose string, n int) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("derive key %q: empty salt", purpose)
	}
	if n <= 0 {
		return nil, fmt.Errorf("derive key %q: invalid length %d", purpose, n)
	}
	return pbkdf2.Key(salt, []byte(purpose), deriveIterations, n, sha512.New), nil
}
