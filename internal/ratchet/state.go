// Package ratchet implements the Double Ratchet scheme for the vault's
// publish channel, following the Signal specification: a Diffie-Hellman
// ratchet over X25519 plus symmetric KDF chains for sending and receiving,
// with a bounded cache of skipped message keys.
package ratchet

import (
	"encoding/base64"
	"fmt"

	"github.com/relaysms/vault/internal/crypto"
)

// State is the full Double Ratchet state persisted per entity.
type State struct {
	// DHs is the current server ratchet key pair.
	DHs *crypto.KeyPair
	// DHr is the peer's current ratchet public key (32 bytes, nil before
	// the first inbound message).
	DHr []byte
	// RK is the 32-byte root key.
	RK []byte
	// CKs is the sending chain key (nil until the sending chain starts).
	CKs []byte
	// CKr is the receiving chain key (nil until the receiving chain starts).
	CKr []byte
	// Ns and Nr are the send and receive message counters for the current
	// chains. Nr never rewinds within a chain.
	Ns uint32
	Nr uint32
	// PN is the length of the previous sending chain.
	PN uint32
	// Skipped caches message keys for out-of-order messages, keyed by
	// (ratchet public key, message number). Bounded by MaxSkipped.
	Skipped map[SkippedKey][]byte
}

// SkippedKey identifies a cached message key.
type SkippedKey struct {
	// PublicKey is the base64 form of the sender ratchet key the message
	// was encrypted under.
	PublicKey string
	// N is the message number within that chain.
	N uint32
}

func skippedKey(pub []byte, n uint32) SkippedKey {
	return SkippedKey{PublicKey: base64.StdEncoding.EncodeToString(pub), N: n}
}

// Clone deep-copies the state so a failed decrypt never mutates the
// persisted state.
func (s *State) Clone() *State {
	c := &State{
		DHs: s.DHs,
		DHr: append([]byte(nil), s.DHr...),
		RK:  append([]byte(nil), s.RK...),
		CKs: append([]byte(nil), s.CKs...),
		CKr: append([]byte(nil), s.CKr...),
		Ns:  s.Ns,
		Nr:  s.Nr,
		PN:  s.PN,
	}
	if s.DHs != nil {
		kp, err := crypto.NewKeyPair(s.DHs.Private(), s.DHs.Public())
		if err == nil {
			c.DHs = kp
		}
	}
	if s.Skipped != nil {
		c.Skipped = make(map[SkippedKey][]byte, len(s.Skipped))
		for k, v := range s.Skipped {
			c.Skipped[k] = append([]byte(nil), v...)
		}
	}
	return c
}

func (s *State) String() string {
	// Deliberately key-free; safe for debug logs.
	return fmt.Sprintf("ratchet.State{Ns: %d, Nr: %d, PN: %d, skipped: %d}",
		s.Ns, s.Nr, s.PN, len(s.Skipped))
}
