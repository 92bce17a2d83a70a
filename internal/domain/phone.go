package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// e164Pattern matches canonical E.164: '+' followed by 7-15 digits, no
// leading zero after the '+'.
var e164Pattern = regexp.MustCompile(`^\+[1-9]\d{6,14}$`)

// separators strips the punctuation dialers commonly insert. Anything else
// non-numeric still fails validation.
var separators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

// PhoneNumber is a value object holding a phone number in canonical E.164
// form. The vault never persists the number itself, only its keyed hash, and
// the EID is derived from that hash; the canonical form is therefore the
// exact byte string fed to the MAC. Two spellings of the same number must
// reduce to identical bytes or they would mint two distinct identities.
// Always valid in memory; use NewPhoneNumber to construct.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber canonicalizes raw input into E.164. Separator punctuation
// (spaces, hyphens, dots, parentheses) is removed first; the result must be
// '+' followed by 7-15 digits with no leading zero after the country code.
// Local formats without a country code are rejected rather than guessed at,
// since a wrong guess would hash into someone else's identity.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	if raw == "" {
		return PhoneNumber{}, fmt.Errorf("phone number cannot be empty: %w", ErrInvalidPhoneNumber)
	}
	cleaned := separators.Replace(raw)
	if !e164Pattern.MatchString(cleaned) {
		return PhoneNumber{}, fmt.Errorf("phone number %q is not valid E.164: %w", raw, ErrInvalidPhoneNumber)
	}
	return PhoneNumber{value: cleaned}, nil
}

// MustPhoneNumber creates a PhoneNumber, panicking on invalid input. Use only in tests.
func MustPhoneNumber(raw string) PhoneNumber {
	p, err := NewPhoneNumber(raw)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical E.164 form. This is the byte string the
// hashing layer MACs, so it must stay stable across releases.
func (p PhoneNumber) String() string { return p.value }

func (p PhoneNumber) IsZero() bool { return p.value == "" }
