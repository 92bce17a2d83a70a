package ratchet

import (
	"bytes"
	"fmt"

	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
)

// NewReceivingState initializes the responder side of a session before the
// first inbound message: the root key is the X25519 agreement on the publish
// key pair and the current ratchet key pair is that same server key pair. The
// receiving chain starts on the first DH ratchet step.
func NewReceivingState(sharedKey []byte, own *crypto.KeyPair) *State {
	return &State{
		DHs:     own,
		RK:      append([]byte(nil), sharedKey...),
		Skipped: make(map[SkippedKey][]byte),
	}
}

// NewSendingState initializes the initiator side of a session: it generates a
// fresh ratchet key pair and performs the first DH ratchet step against the
// peer's public key, producing the sending chain.
func NewSendingState(sharedKey []byte, peerPub []byte) (*State, error) {
	dhs, err := crypto.GenerateX25519()
	if err != nil {
		return nil, fmt.Errorf("new sending state: %w", err)
	}
	dhOut, err := dhs.Agree(peerPub)
	if err != nil {
		return nil, fmt.Errorf("new sending state: %w", err)
	}
	rk, cks, err := kdfRK(sharedKey, dhOut)
	if err != nil {
		return nil, err
	}
	return &State{
		DHs:     dhs,
		DHr:     append([]byte(nil), peerPub...),
		RK:      rk,
		CKs:     cks,
		Skipped: make(map[SkippedKey][]byte),
	}, nil
}

// Encrypt advances the sending chain one step and seals the plaintext. It
// returns the successor state together with the header and ciphertext; the
// input state is never mutated.
func Encrypt(s *State, plaintext []byte) (*State, Header, []byte, error) {
	if s == nil || s.CKs == nil {
		return nil, Header{}, nil, fmt.Errorf("encrypt: sending chain not initialized")
	}
	next := s.Clone()

	var mk []byte
	next.CKs, mk = kdfCK(next.CKs)
	header := Header{DHPub: next.DHs.Public(), PN: next.PN, N: next.Ns}
	next.Ns++

	ciphertext, err := sealMessage(mk, header.Marshal(), plaintext)
	if err != nil {
		return nil, Header{}, nil, err
	}
	return next, header, ciphertext, nil
}

// Decrypt opens an inbound message and returns the successor state. On any
// failure the input state is left intact so the caller keeps the last good
// persisted state. Out-of-order messages are served from the skipped-key
// cache; a new ratchet public key in the header triggers a DH ratchet step.
func Decrypt(s *State, header Header, ciphertext []byte) (*State, []byte, error) {
	if s == nil {
		return nil, nil, fmt.Errorf("decrypt: nil state")
	}
	next := s.Clone()

	if plaintext, ok, err := trySkipped(next, header, ciphertext); err != nil {
		return nil, nil, err
	} else if ok {
		return next, plaintext, nil
	}

	if !bytes.Equal(header.DHPub, next.DHr) {
		// Close out the current receiving chain before stepping the DH
		// ratchet; header.PN is its final length.
		if err := skipMessageKeys(next, header.PN); err != nil {
			return nil, nil, err
		}
		if err := dhRatchet(next, header.DHPub); err != nil {
			return nil, nil, err
		}
	}

	if err := skipMessageKeys(next, header.N); err != nil {
		return nil, nil, err
	}

	var mk []byte
	next.CKr, mk = kdfCK(next.CKr)
	next.Nr++

	plaintext, err := openMessage(mk, header.Marshal(), ciphertext)
	if err != nil {
		return nil, nil, err
	}
	return next, plaintext, nil
}

// trySkipped consumes a cached message key if the header matches one.
func trySkipped(s *State, header Header, ciphertext []byte) ([]byte, bool, error) {
	key := skippedKey(header.DHPub, header.N)
	mk, ok := s.Skipped[key]
	if !ok {
		return nil, false, nil
	}
	plaintext, err := openMessage(mk, header.Marshal(), ciphertext)
	if err != nil {
		return nil, false, err
	}
	delete(s.Skipped, key)
	return plaintext, true, nil
}

// skipMessageKeys advances the receiving chain to message number until,
// caching the intervening message keys. The cache is bounded so a hostile
// header cannot force unbounded key derivation.
func skipMessageKeys(s *State, until uint32) error {
	if s.CKr == nil {
		return nil
	}
	if until > s.Nr && until-s.Nr > domain.MaxSkippedMessageKeys {
		return fmt.Errorf("refusing to skip %d message keys: %w", until-s.Nr, domain.ErrTooManySkipped)
	}
	for s.Nr < until {
		var mk []byte
		s.CKr, mk = kdfCK(s.CKr)
		s.Skipped[skippedKey(s.DHr, s.Nr)] = mk
		s.Nr++
	}
	return nil
}

// dhRatchet performs a full DH ratchet step: derive the new receiving chain
// from the peer's fresh public key, then rotate the local key pair and derive
// the new sending chain.
func dhRatchet(s *State, peerPub []byte) error {
	s.PN = s.Ns
	s.Ns = 0
	s.Nr = 0
	s.DHr = append([]byte(nil), peerPub...)

	dhOut, err := s.DHs.Agree(s.DHr)
	if err != nil {
		return fmt.Errorf("dh ratchet: %w", err)
	}
	if s.RK, s.CKr, err = kdfRK(s.RK, dhOut); err != nil {
		return err
	}

	if s.DHs, err = crypto.GenerateX25519(); err != nil {
		return fmt.Errorf("dh ratchet: %w", err)
	}
	if dhOut, err = s.DHs.Agree(s.DHr); err != nil {
		return fmt.Errorf("dh ratchet: %w", err)
	}
	if s.RK, s.CKs, err = kdfRK(s.RK, dhOut); err != nil {
		return err
	}
	return nil
}
