package adapter

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	redisclient "github.com/relaysms/vault/internal/redis"
)

var otpMax = big.NewInt(1_000_000) // 10^6 for 6-digit codes

// generateOTP generates a cryptographically random 6-digit code, zero-padded.
// rand.Int performs rejection sampling, so there is no modulo bias.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// OTPConfig holds proof-of-ownership policy knobs.
type OTPConfig struct {
	// Validity is how long a delivered code verifies.
	Validity time.Duration
	// ResendBackoff is the minimum wait between deliveries to one number.
	ResendBackoff time.Duration
	// MaxAttempts bounds verification attempts per delivered code.
	MaxAttempts int
}

// OTPGateway implements proof-of-ownership over SMS, with Redis holding the
// per-number state: the MAC of the active code, the verification attempt
// counter, and the resend backoff marker. Codes themselves are never stored.
type OTPGateway struct {
	cmd     redisclient.Cmdable
	sms     SMSProvider
	hashKey []byte
	clock   domain.Clock
	cfg     OTPConfig
}

// NewOTPGateway creates an OTPGateway. hashKey is the vault hashing key; it
// keys both the phone-derived Redis keys and the stored code MACs.
func NewOTPGateway(cmd redisclient.Cmdable, sms SMSProvider, hashKey []byte, clock domain.Clock, cfg OTPConfig) *OTPGateway {
	if cfg.Validity <= 0 {
		cfg.Validity = domain.OTPValidityDuration
	}
	if cfg.ResendBackoff <= 0 {
		cfg.ResendBackoff = domain.OTPResendBackoff
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = domain.MaxOTPVerifyAttempts
	}
	return &OTPGateway{cmd: cmd, sms: sms, hashKey: hashKey, clock: clock, cfg: cfg}
}

func (g *OTPGateway) phoneKey(kind, phone string) string {
	return "otp:" + kind + ":" + crypto.HMACHex(g.hashKey, phone)
}

// Request delivers a fresh code to the phone number and returns the earliest
// time another delivery will be accepted. While the backoff from a previous
// delivery is still running, no code is sent and the pending deadline is
// returned with domain.ErrOTPRejected.
func (g *OTPGateway) Request(ctx context.Context, phone string) (nextAttempt time.Time, err error) {
	ctx, span := tracer.Start(ctx, "otp.request")
	defer span.End()
	span.SetAttributes(attribute.String("db.system", "redis"))

	backoffKey := g.phoneKey("backoff", phone)

	ttl, err := g.cmd.TTL(ctx, backoffKey).Result()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return time.Time{}, fmt.Errorf("otp gateway: backoff check: %w", err)
	}
	now := g.clock.Now()
	if ttl > 0 {
		return now.Add(ttl), fmt.Errorf("otp gateway: resend too soon: %w", domain.ErrOTPRejected)
	}

	code, err := generateOTP()
	if err != nil {
		return time.Time{}, err
	}

	// Deliver before persisting so a failed SMS leaves no verifiable state.
	smsCtx, cancel := context.WithTimeout(ctx, domain.OTPDeliveryTimeout)
	defer cancel()
	if err := g.sms.SendOTP(smsCtx, phone, code); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return time.Time{}, fmt.Errorf("otp gateway: deliver: %w: %w", domain.ErrUnavailable, err)
	}

	mac := crypto.HMACHex(g.hashKey, code+phone)
	if err := g.cmd.Set(ctx, g.phoneKey("mac", phone), mac, g.cfg.Validity).Err(); err != nil {
		return time.Time{}, fmt.Errorf("otp gateway: store mac: %w", err)
	}
	if err := g.cmd.Set(ctx, g.phoneKey("attempts", phone), 0, g.cfg.Validity).Err(); err != nil {
		return time.Time{}, fmt.Errorf("otp gateway: reset attempts: %w", err)
	}
	if err := g.cmd.Set(ctx, backoffKey, 1, g.cfg.ResendBackoff).Err(); err != nil {
		return time.Time{}, fmt.Errorf("otp gateway: set backoff: %w", err)
	}

	return now.Add(g.cfg.ResendBackoff), nil
}

// Verify checks a candidate code. Every failure path returns
// domain.ErrOTPRejected without distinguishing the cause; the comparison is
// constant-time. Attempts are bounded and a success consumes the code.
func (g *OTPGateway) Verify(ctx context.Context, phone, code string) error {
	ctx, span := tracer.Start(ctx, "otp.verify")
	defer span.End()
	span.SetAttributes(attribute.String("db.system", "redis"))

	macKey := g.phoneKey("mac", phone)
	attemptsKey := g.phoneKey("attempts", phone)

	stored, err := g.cmd.Get(ctx, macKey).Result()
	if err == redisclient.Nil {
		return fmt.Errorf("otp gateway: no active code: %w", domain.ErrOTPRejected)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("otp gateway: load mac: %w", err)
	}

	attempts, err := g.cmd.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return fmt.Errorf("otp gateway: count attempt: %w", err)
	}
	if attempts > int64(g.cfg.MaxAttempts) {
		// Burn the code so further guessing is pointless.
		g.cmd.Del(ctx, macKey, attemptsKey)
		return fmt.Errorf("otp gateway: attempts exhausted: %w", domain.ErrOTPRejected)
	}

	candidate := crypto.HMACHex(g.hashKey, code+phone)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) != 1 {
		return fmt.Errorf("otp gateway: code mismatch: %w", domain.ErrOTPRejected)
	}

	if err := g.cmd.Del(ctx, macKey, attemptsKey).Err(); err != nil {
		return fmt.Errorf("otp gateway: consume code: %w", err)
	}
	return nil
}
