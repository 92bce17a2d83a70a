package domain

import "time"

// Entity is a custodial account. Every personal field is stored hashed or
// encrypted; the vault never persists a phone number, password, or country
// code in the clear.
type Entity struct {
	// EID is the stable entity identifier, derived from PhoneNumberHash.
	EID EID

	// PhoneNumberHash is the hex HMAC-SHA256 of the E.164 phone number
	// under the hashing key. Lookup key for authentication.
	PhoneNumberHash string

	// PasswordHash is the hex HMAC-SHA256 of the password.
	PasswordHash string

	// CountryCodeCiphertext is the AES-GCM encrypted ISO country code.
	CountryCodeCiphertext string

	// DeviceID is the hex HMAC device identifier for the current session.
	// Empty when no session is active.
	DeviceID string

	// ClientPublishPubKey and ClientDeviceIDPubKey are the client's X25519
	// public keys in base64, captured at creation or last authentication.
	ClientPublishPubKey  string
	ClientDeviceIDPubKey string

	// PublishKeypair and DeviceIDKeypair are the server's key pairs as
	// versioned opaque blobs, mirroring the keystore files for the eid.
	PublishKeypair  []byte
	DeviceIDKeypair []byte

	// ServerState is the serialized ratchet state for the publish channel.
	// Empty until the first payload operation.
	ServerState []byte

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSession reports whether the entity has completed creation or
// authentication and holds an active device binding.
func (e *Entity) HasSession() bool {
	return e.DeviceID != ""
}

// EntityToken is one stored platform credential. The account identifier and
// the provider tokens are AES-GCM ciphertexts; the hash column exists for
// exact-match lookup without decryption.
type EntityToken struct {
	EID                   EID
	Platform              string
	AccountIdentifierHash string

	// AccountIdentifierCiphertext holds the encrypted account identifier
	// (e.g. an email address).
	AccountIdentifierCiphertext string

	// AccountTokensCiphertext holds the encrypted provider token document
	// (access token, refresh token, expiry).
	AccountTokensCiphertext string

	CreatedAt time.Time
	UpdatedAt time.Time
}
