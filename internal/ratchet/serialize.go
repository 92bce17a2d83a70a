package ratchet

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/relaysms/vault/internal/crypto"
)

// Serialized state layout, version 0x01:
//
//	[1B version][1B flags][32B RK]
//	[64B DHs priv+pub]? [32B DHr]? [32B CKs]? [32B CKr]?
//	[u32be Ns][u32be Nr][u32be PN]
//	[u32be skipped count]{[32B ratchet pub][u32be N][32B mk]}*
//
// Optional fields are gated by the flags byte. The serialized form is what
// the app layer encrypts and persists per entity.
const stateVersion = 0x01

const (
	flagDHs = 1 << iota
	flagDHr
	flagCKs
	flagCKr
)

// Marshal serializes the state into the versioned binary form.
func (s *State) Marshal() ([]byte, error) {
	if len(s.RK) != 32 {
		return nil, fmt.Errorf("marshal ratchet state: root key is %d bytes", len(s.RK))
	}

	var flags byte
	if s.DHs != nil {
		flags |= flagDHs
	}
	if s.DHr != nil {
		flags |= flagDHr
	}
	if s.CKs != nil {
		flags |= flagCKs
	}
	if s.CKr != nil {
		flags |= flagCKr
	}

	var buf bytes.Buffer
	buf.WriteByte(stateVersion)
	buf.WriteByte(flags)
	buf.Write(s.RK)
	if s.DHs != nil {
		buf.Write(s.DHs.Private())
		buf.Write(s.DHs.Public())
	}
	if s.DHr != nil {
		if len(s.DHr) != 32 {
			return nil, fmt.Errorf("marshal ratchet state: peer key is %d bytes", len(s.DHr))
		}
		buf.Write(s.DHr)
	}
	if s.CKs != nil {
		buf.Write(s.CKs)
	}
	if s.CKr != nil {
		buf.Write(s.CKr)
	}

	var nums [12]byte
	binary.BigEndian.PutUint32(nums[0:4], s.Ns)
	binary.BigEndian.PutUint32(nums[4:8], s.Nr)
	binary.BigEndian.PutUint32(nums[8:12], s.PN)
	buf.Write(nums[:])

	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(s.Skipped)))
	buf.Write(count[:])
	for key, mk := range s.Skipped {
		pub, err := base64.StdEncoding.DecodeString(key.PublicKey)
		if err != nil || len(pub) != 32 {
			return nil, fmt.Errorf("marshal ratchet state: bad skipped key entry")
		}
		buf.Write(pub)
		var n [4]byte
		binary.BigEndian.PutUint32(n[:], key.N)
		buf.Write(n[:])
		buf.Write(mk)
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a serialized state produced by Marshal.
func Unmarshal(data []byte) (*State, error) {
	r := bytes.NewReader(data)

	version, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("unmarshal ratchet state: %w", err)
	}
	if version != stateVersion {
		return nil, fmt.Errorf("unmarshal ratchet state: unknown version 0x%02x", version)
	}
	flags, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("unmarshal ratchet state: %w", err)
	}

	s := &State{Skipped: make(map[SkippedKey][]byte)}
	if s.RK, err = read(r, 32); err != nil {
		return nil, err
	}
	if flags&flagDHs != 0 {
		priv, err := read(r, 32)
		if err != nil {
			return nil, err
		}
		pub, err := read(r, 32)
		if err != nil {
			return nil, err
		}
		if s.DHs, err = crypto.NewKeyPair(priv, pub); err != nil {
			return nil, fmt.Errorf("unmarshal ratchet state: %w", err)
		}
	}
	if flags&flagDHr != 0 {
		if s.DHr, err = read(r, 32); err != nil {
			return nil, err
		}
	}
	if flags&flagCKs != 0 {
		if s.CKs, err = read(r, 32); err != nil {
			return nil, err
		}
	}
	if flags&flagCKr != 0 {
		if s.CKr, err = read(r, 32); err != nil {
			return nil, err
		}
	}

	nums, err := read(r, 12)
	if err != nil {
		return nil, err
	}
	s.Ns = binary.BigEndian.Uint32(nums[0:4])
	s.Nr = binary.BigEndian.Uint32(nums[4:8])
	s.PN = binary.BigEndian.Uint32(nums[8:12])

	countBytes, err := read(r, 4)
	if err != nil {
		return nil, err
	}
	count := binary.BigEndian.Uint32(countBytes)
	for i := uint32(0); i < count; i++ {
		pub, err := read(r, 32)
		if err != nil {
			return nil, err
		}
		nBytes, err := read(r, 4)
		if err != nil {
			return nil, err
		}
		mk, err := read(r, 32)
		if err != nil {
			return nil, err
		}
		s.Skipped[skippedKey(pub, binary.BigEndian.Uint32(nBytes))] = mk
	}

	if r.Len() != 0 {
		return nil, fmt.Errorf("unmarshal ratchet state: %d trailing bytes", r.Len())
	}
	return s, nil
}

func read(r *bytes.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("unmarshal ratchet state: truncated")
	}
	return buf, nil
}
