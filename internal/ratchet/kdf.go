package ratchet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/relaysms/vault/internal/domain"
)

var kdfRKInfo = []byte("vault-ratchet-root")

// kdfRK derives the next root key and chain key from the current root key and
// a fresh DH output, per KDF_RK in the Double Ratchet specification:
// HKDF-SHA256 with the root key as salt and the DH output as input material.
func kdfRK(rk, dhOut []byte) (newRK, ck []byte, err error) {
	r := hkdf.New(sha256.New, dhOut, rk, kdfRKInfo)
	out := make([]byte, 64)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, nil, fmt.Errorf("kdf_rk: %w", err)
	}
	return out[:32], out[32:], nil
}

// kdfCK advances a symmetric chain one step: the message key is
// HMAC-SHA256(ck, 0x01) and the next chain key is HMAC-SHA256(ck, 0x02).
func kdfCK(ck []byte) (nextCK, mk []byte) {
	h := hmac.New(sha256.New, ck)
	h.Write([]byte{0x01})
	mk = h.Sum(nil)

	h = hmac.New(sha256.New, ck)
	h.Write([]byte{0x02})
	nextCK = h.Sum(nil)
	return nextCK, mk
}

// sealMessage encrypts a plaintext under a one-time message key with
// AES-256-GCM, binding the encoded header as associated data. The nonce is
// all zeros; each message key encrypts exactly one message.
func sealMessage(mk, header, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(mk)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	return aead.Seal(nil, nonce, plaintext, header), nil
}

// openMessage reverses sealMessage. Authentication failure surfaces as
// domain.ErrDecryptionFailed.
func openMessage(mk, header, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(mk)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	plaintext, err := aead.Open(nil, nonce, ciphertext, header)
	if err != nil {
		return nil, fmt.Errorf("open ratchet message: %w", domain.ErrDecryptionFailed)
	}
	return plaintext, nil
}

func newAEAD(mk []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(mk)
	if err != nil {
		return nil, fmt.Errorf("message key cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
