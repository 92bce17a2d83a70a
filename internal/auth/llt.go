package auth

import (
	"crypto/hmac"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
)

// LLTClaims is the payload of a long-lived token.
// Timestamps use jwt.NumericDate so they serialize as epoch seconds.
type LLTClaims struct {
	EID       string           `json:"eid"`
	IssuedAt  *jwt.NumericDate `json:"iat"`
	ExpiresAt *jwt.NumericDate `json:"exp"`
}

// MintLLT creates a long-lived token for the given entity. The wire form is
//
//	<eid>:<base64url payload>.<base64url signature>
//
// where the payload is the JSON claims and the signature is HMAC-SHA256 over
// the encoded payload, keyed on the device_id shared key. The lifetime is
// always finite.
func MintLLT(eid domain.EID, sharedKey []byte, ttl time.Duration, clock domain.Clock) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("mint llt: lifetime must be positive, got %v", ttl)
	}

	now := clock.Now().UTC()
	claims := LLTClaims{
		EID:       eid.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("mint llt: marshal claims: %w", err)
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	signature := base64.RawURLEncoding.EncodeToString(crypto.HMAC(sharedKey, []byte(encoded)))

	return fmt.Sprintf("%s:%s.%s", eid, encoded, signature), nil
}

// SplitLLT splits a wire token on the first ':' into the outer eid and the
// signed envelope. The eid identifies which entity's shared key verifies the
// envelope; the caller resolves the entity before calling VerifyLLT.
func SplitLLT(token string) (eid, envelope string, err error) {
	eid, envelope, ok := strings.Cut(token, ":")
	if !ok || eid == "" || envelope == "" {
		return "", "", fmt.Errorf("malformed long-lived token: %w", domain.ErrInvalidToken)
	}
	return eid, envelope, nil
}

// VerifyLLT authenticates a signed envelope against the entity's device_id
// shared key. It rejects malformed envelopes, bad signatures (constant-time),
// expired tokens, and payloads whose eid differs from the outer eid of the
// wire token (defence against cross-pasting an envelope onto another
// entity's prefix).
func VerifyLLT(outerEID, envelope string, sharedKey []byte, clock domain.Clock) (*LLTClaims, error) {
	encoded, signature, ok := strings.Cut(envelope, ".")
	if !ok {
		return nil, fmt.Errorf("malformed llt envelope: %w", domain.ErrInvalidToken)
	}

	sig, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return nil, fmt.Errorf("malformed llt signature: %w", domain.ErrInvalidToken)
	}
	if !hmac.Equal(sig, crypto.HMAC(sharedKey, []byte(encoded))) {
		return nil, fmt.Errorf("llt signature mismatch: %w", domain.ErrInvalidToken)
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("malformed llt payload: %w", domain.ErrInvalidToken)
	}

	var claims LLTClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, fmt.Errorf("unmarshal llt payload: %w", domain.ErrInvalidToken)
	}

	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("llt has no expiry: %w", domain.ErrInvalidToken)
	}
	if clock.Now().UTC().After(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("llt expired at %v: %w", claims.ExpiresAt.Time, domain.ErrTokenExpired)
	}

	if claims.EID != outerEID {
		return nil, fmt.Errorf("llt eid mismatch: %w", domain.ErrInvalidToken)
	}

	return &claims, nil
}
