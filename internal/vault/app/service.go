// Package app orchestrates the vault's operations: entity lifecycle,
// stored-token CRUD, and the ratchet payload channel. It depends on narrow
// interfaces satisfied by the adapter and keystore packages, so tests run
// against in-memory fakes.
package app

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/observability"
)

var tracer = otel.Tracer("vault/app")

// EntityStore persists entities.
type EntityStore interface {
	Create(ctx context.Context, e *domain.Entity) error
	Update(ctx context.Context, e *domain.Entity) error
	GetByEID(ctx context.Context, eid domain.EID) (*domain.Entity, error)
	FindByPhoneHash(ctx context.Context, phoneHash string) (*domain.Entity, error)
	FindByDeviceID(ctx context.Context, deviceID string) (*domain.Entity, error)
	Delete(ctx context.Context, eid domain.EID) error
}

// TokenStore persists stored platform credentials.
type TokenStore interface {
	Put(ctx context.Context, tok *domain.EntityToken) error
	Get(ctx context.Context, eid domain.EID, platform, accountHash string) (*domain.EntityToken, error)
	ListByEID(ctx context.Context, eid domain.EID) ([]*domain.EntityToken, error)
	Delete(ctx context.Context, eid domain.EID, platform, accountHash string) error
}

// OTPGateway delivers and verifies proof-of-ownership codes. The vault
// treats delivery policy (channel, rate limits, code shape) as the gateway's
// concern; Request surfaces the next permitted delivery time verbatim.
type OTPGateway interface {
	Request(ctx context.Context, phone string) (nextAttempt time.Time, err error)
	Verify(ctx context.Context, phone, code string) error
}

// KeyStore manages the on-disk server key pairs, one file per
// (entity, purpose).
type KeyStore interface {
	PublishPath(eid domain.EID) string
	DeviceIDPath(eid domain.EID) string
	CreateOrLoad(path string) (*crypto.KeyPair, error)
	Replace(path string) (*crypto.KeyPair, error)
	Remove(path string) error
}

// Config carries the derived keys and policy for a Vault service.
type Config struct {
	// HashingKey keys every HMAC the vault computes: phone number hashes,
	// password hashes, account identifier hashes.
	HashingKey domain.SecretBytes

	// LLTLifetime bounds minted long-lived tokens. Zero means the
	// compiled default.
	LLTLifetime time.Duration
}

// Vault implements the twelve entity operations.
type Vault struct {
	entities EntityStore
	tokens   TokenStore
	otp      OTPGateway
	keys     KeyStore

	encryptor  *crypto.Encryptor
	hashingKey []byte
	lltTTL     time.Duration

	locks *entityLocks

	clock   domain.Clock
	logger  *slog.Logger
	metrics *observability.VaultMetrics
}

// New creates a Vault service. metrics may be nil.
func New(
	entities EntityStore,
	tokens TokenStore,
	otp OTPGateway,
	keys KeyStore,
	encryptor *crypto.Encryptor,
	cfg Config,
	clock domain.Clock,
	logger *slog.Logger,
	metrics *observability.VaultMetrics,
) *Vault {
	ttl := cfg.LLTLifetime
	if ttl <= 0 {
		ttl = domain.LongLivedTokenLifetime
	}
	return &Vault{
		entities:   entities,
		tokens:     tokens,
		otp:        otp,
		keys:       keys,
		encryptor:  encryptor,
		hashingKey: cfg.HashingKey.Expose(),
		lltTTL:     ttl,
		locks:      newEntityLocks(),
		clock:      clock,
		logger:     logger,
		metrics:    metrics,
	}
}

func (v *Vault) phoneHash(phone string) string {
	return crypto.HMACHex(v.hashingKey, phone)
}

// passwordHash is HMAC-SHA256 under the server hashing key, not a
// memory-hard password KDF. An attacker without the key cannot mount an
// offline guessing attack on stored hashes, which is the threat a KDF's
// work factor buys; with the key the scheme is weaker than argon2/scrypt.
// Stored hashes are compatible with the existing entity table.
func (v *Vault) passwordHash(password string) string {
	return crypto.HMACHex(v.hashingKey, password)
}

func (v *Vault) accountHash(accountIdentifier string) string {
	return crypto.HMACHex(v.hashingKey, accountIdentifier)
}
