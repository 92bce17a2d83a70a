package domain

import "errors"

// Sentinel errors for domain error conditions.
// Use errors.Is() for matching - never compare error strings.
var (
	// Resource errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	// Authentication errors. All of these surface the same generic user
	// message so a caller cannot tell which verification step failed.
	ErrUnauthenticated   = errors.New("authentication failed")
	ErrInvalidToken      = errors.New("invalid long-lived token")
	ErrTokenExpired      = errors.New("long-lived token has expired")
	ErrUnknownDeviceID   = errors.New("unknown device ID")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrOTPRejected       = errors.New("ownership proof verification failed")

	// Validation errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	ErrInvalidPublicKey   = errors.New("invalid X25519 public key")
	ErrMalformedPayload   = errors.New("malformed payload framing")

	// Precondition errors
	ErrTokensStillStored = errors.New("entity still has stored tokens")

	// Platform errors
	ErrUnsupportedPlatform = errors.New("platform is not supported")

	// Cryptographic errors
	ErrDecryptionFailed = errors.New("decryption failed")
	ErrTooManySkipped   = errors.New("too many skipped message keys")

	// Operational errors
	ErrUnavailable = errors.New("service temporarily unavailable")

	// Configuration errors
	ErrConfigRequired = errors.New("required configuration key missing")
)

// authErrors enumerates the errors that must be indistinguishable to clients.
var authErrors = []error{
	ErrUnauthenticated,
	ErrInvalidToken,
	ErrTokenExpired,
	ErrUnknownDeviceID,
	ErrIncorrectPassword,
	ErrOTPRejected,
}

// IsAuthError returns true if the error represents an authentication failure.
// Auth failures surface a single generic user message so callers cannot
// enumerate which verification step rejected them.
func IsAuthError(err error) bool {
	for _, target := range authErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound returns true if the error represents a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
