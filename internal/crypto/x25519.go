package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"github.com/relaysms/vault/internal/domain"
)

// KeyPair is an X25519 (private, public) key pair.
type KeyPair struct {
	private [32]byte
	public  [32]byte
}

// GenerateX25519 creates a fresh X25519 key pair from crypto/rand.
func GenerateX25519() (*KeyPair, error) {
	var kp KeyPair
	if _, err := rand.Read(kp.private[:]); err != nil {
		return nil, fmt.Errorf("x25519: generate: %w", err)
	}
	pub, err := curve25519.X25519(kp.private[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("x25519: derive public: %w", err)
	}
	copy(kp.public[:], pub)
	return &kp, nil
}

// NewKeyPair reconstructs a KeyPair from raw private and public key bytes.
// Both must be exactly 32 bytes.
func NewKeyPair(private, public []byte) (*KeyPair, error) {
	if len(private) != 32 || len(public) != 32 {
		return nil, fmt.Errorf("x25519: key material must be 32+32 bytes, got %d+%d",
			len(private), len(public))
	}
	var kp KeyPair
	copy(kp.private[:], private)
	copy(kp.public[:], public)
	return &kp, nil
}

// Agree computes the 32-byte X25519 shared secret between the key pair and
// a peer public key. Low-order peer keys produce an all-zero shared secret,
// which curve25519.X25519 rejects.
func (kp *KeyPair) Agree(peerPublic []byte) ([]byte, error) {
	if len(peerPublic) != 32 {
		return nil, fmt.Errorf("x25519: peer public key must be 32 bytes, got %d: %w",
			len(peerPublic), domain.ErrInvalidPublicKey)
	}
	shared, err := curve25519.X25519(kp.private[:], peerPublic)
	if err != nil {
		return nil, fmt.Errorf("x25519: agree: %w", domain.ErrInvalidPublicKey)
	}
	return shared, nil
}

// Public returns a copy of the raw 32-byte public key.
func (kp *KeyPair) Public() []byte {
	out := make([]byte, 32)
	copy(out, kp.public[:])
	return out
}

// PublicBase64 returns the public key in the base64 wire form.
func (kp *KeyPair) PublicBase64() string {
	return base64.StdEncoding.EncodeToString(kp.public[:])
}

// Private returns a copy of the raw 32-byte private key. Use only for
// serialization into the keystore.
func (kp *KeyPair) Private() []byte {
	out := make([]byte, 32)
	copy(out, kp.private[:])
	return out
}

// ValidX25519PublicKey checks that a base64-encoded public key decodes to
// exactly 32 bytes and is not the all-zero key.
func ValidX25519PublicKey(encoded string) error {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("public key is not valid base64: %w", domain.ErrInvalidPublicKey)
	}
	if len(raw) != 32 {
		return fmt.Errorf("public key must decode to 32 bytes, got %d: %w",
			len(raw), domain.ErrInvalidPublicKey)
	}
	allZero := true
	for _, b := range raw {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return fmt.Errorf("public key is the all-zero point: %w", domain.ErrInvalidPublicKey)
	}
	return nil
}

// DecodePublicKey decodes and validates a base64 X25519 public key.
func DecodePublicKey(encoded string) ([]byte, error) {
	if err := ValidX25519PublicKey(encoded); err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(encoded)
}
