package ratchet

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"

	"github.com/relaysms/vault/internal/domain"
)

// Header is the ratchet message header sent in the clear alongside every
// ciphertext and bound into the AEAD as associated data.
type Header struct {
	// DHPub is the sender's current ratchet public key, 32 raw bytes.
	DHPub []byte
	// PN is the number of messages in the sender's previous chain.
	PN uint32
	// N is the message number within the current chain.
	N uint32
}

const headerLen = 32 + 4 + 4

// Marshal encodes the header as [32B DH public key][u32be PN][u32be N].
func (h Header) Marshal() []byte {
	buf := make([]byte, headerLen)
	copy(buf[:32], h.DHPub)
	binary.BigEndian.PutUint32(buf[32:36], h.PN)
	binary.BigEndian.PutUint32(buf[36:40], h.N)
	return buf
}

// UnmarshalHeader decodes an exact headerLen byte slice.
func UnmarshalHeader(buf []byte) (Header, error) {
	if len(buf) != headerLen {
		return Header{}, fmt.Errorf("ratchet header is %d bytes, want %d: %w",
			len(buf), headerLen, domain.ErrMalformedPayload)
	}
	return Header{
		DHPub: append([]byte(nil), buf[:32]...),
		PN:    binary.BigEndian.Uint32(buf[32:36]),
		N:     binary.BigEndian.Uint32(buf[36:40]),
	}, nil
}

// EncodePayload frames a header and ciphertext for transport:
// base64([u32be header length][header][ciphertext]).
func EncodePayload(h Header, ciphertext []byte) string {
	header := h.Marshal()
	buf := make([]byte, 0, 4+len(header)+len(ciphertext))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(header)))
	buf = append(buf, header...)
	buf = append(buf, ciphertext...)
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodePayload reverses EncodePayload. Every framing defect surfaces as
// domain.ErrMalformedPayload so the transport layer can map it uniformly.
func DecodePayload(encoded string) (Header, []byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Header{}, nil, fmt.Errorf("payload is not base64: %w", domain.ErrMalformedPayload)
	}
	if len(raw) < 4 {
		return Header{}, nil, fmt.Errorf("payload too short for length prefix: %w", domain.ErrMalformedPayload)
	}
	hlen := binary.BigEndian.Uint32(raw[:4])
	if hlen != headerLen || len(raw) < 4+int(hlen) {
		return Header{}, nil, fmt.Errorf("payload header length %d out of range: %w", hlen, domain.ErrMalformedPayload)
	}
	header, err := UnmarshalHeader(raw[4 : 4+hlen])
	if err != nil {
		return Header{}, nil, err
	}
	return header, append([]byte(nil), raw[4+hlen:]...), nil
}
