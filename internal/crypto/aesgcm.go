package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/relaysms/vault/internal/domain"
)

// Encryptor performs AES-256-GCM envelope encryption under the server
// encryption key. The wire form is base64(nonce || ciphertext || tag) with
// a fresh 12-byte nonce per call, so ciphertexts differ across encryptions
// of the same plaintext.
type Encryptor struct {
	aead cipher.AEAD
}

// NewEncryptor creates an Encryptor from a 32-byte AES key.
func NewEncryptor(key []byte) (*Encryptor, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("encryptor: key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encryptor: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encryptor: %w", err)
	}
	return &Encryptor{aead: aead}, nil
}

// EncryptEncode encrypts plaintext and returns base64(nonce || ct || tag).
func (e *Encryptor) EncryptEncode(plaintext []byte) (string, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("encrypt: generate nonce: %w", err)
	}
	sealed := e.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecodeDecrypt reverses EncryptEncode. Authentication failure and malformed
// input both surface domain.ErrDecryptionFailed so callers cannot tell them
// apart.
func (e *Encryptor) DecodeDecrypt(encoded string) ([]byte, error) {
	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decrypt: decode: %w", domain.ErrDecryptionFailed)
	}
	if len(sealed) < e.aead.NonceSize() {
		return nil, fmt.Errorf("decrypt: short input: %w", domain.ErrDecryptionFailed)
	}
	nonce, ct := sealed[:e.aead.NonceSize()], sealed[e.aead.NonceSize():]
	plaintext, err := e.aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", domain.ErrDecryptionFailed)
	}
	return plaintext, nil
}

// DecodeDecryptString is DecodeDecrypt with a string result, for fields that
// are UTF-8 text (country codes, account identifiers, token JSON).
func (e *Encryptor) DecodeDecryptString(encoded string) (string, error) {
	plaintext, err := e.DecodeDecrypt(encoded)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
