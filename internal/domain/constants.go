package domain

import "time"

// Normative limits for the vault. Compiled defaults; several can be
// overridden via configuration.
const (
	// Long-lived token configuration. The lifetime MUST be finite.
	LongLivedTokenLifetime = 30 * 24 * time.Hour

	// Derived key sizes, bytes. The encryption key feeds AES-256-GCM and
	// MUST be 32; the hashing key matches it.
	HashingKeySize    = 32
	EncryptionKeySize = 32

	// Ratchet limits
	MaxSkippedMessageKeys = 1000 // per receiving chain; exceeding is a decrypt error

	// OTP configuration
	OTPValidityDuration  = 5 * time.Minute
	OTPDeliveryTimeout   = 10 * time.Second // deadline on the gateway call
	OTPResendBackoff     = time.Minute      // between deliveries to one number
	MaxOTPVerifyAttempts = 5

	// Timeout contracts
	DynamoDBTimeout = 5 * time.Second
	RedisTimeout    = 2 * time.Second

	// Scheduling
	MaxConcurrentHandlers = 10 // bounded worker pool for RPC handlers

	// Graceful shutdown
	GracefulShutdownTimeout = 30 * time.Second
	ShutdownDrainDelay      = 2 * time.Second
	ShutdownOTELTimeout     = 5 * time.Second
)

// SupportedPlatforms lists the third-party platforms the vault stores
// credentials for. Platform names are compared lowercase.
var SupportedPlatforms = []string{"gmail"}

// IsSupportedPlatform checks a platform name against SupportedPlatforms.
// The comparison is case-sensitive; callers must lowercase first.
func IsSupportedPlatform(platform string) bool {
	for _, p := range SupportedPlatforms {
		if platform == p {
			return true
		}
	}
	return false
}
