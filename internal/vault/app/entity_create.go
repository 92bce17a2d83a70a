package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/relaysms/vault/internal/auth"
	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/keystore"
)

// CreateEntityParams carries the inputs of both CreateEntity phases. Phase 1
// sets only PhoneNumber; phase 2 adds the remaining fields including the
// ownership proof.
type CreateEntityParams struct {
	PhoneNumber            string
	Password               string
	CountryCode            string
	ClientPublishPubKey    string
	ClientDeviceIDPubKey   string
	OwnershipProofResponse string
}

// SessionResult is the material returned when an entity session is
// established: creation, authentication, or password reset.
type SessionResult struct {
	RequiresOwnershipProof bool
	Message                string
	NextAttempt            time.Time

	LongLivedToken       string
	ServerPublishPubKey  string
	ServerDeviceIDPubKey string
}

// requestProof runs the shared phase-1 tail: deliver a code and describe the
// retry window to the client.
func (v *Vault) requestProof(ctx context.Context, phone string) (*SessionResult, error) {
	next, err := v.otp.Request(ctx, phone)
	if err != nil {
		// A backoff rejection still tells the client when to retry.
		if domain.IsAuthError(err) && !next.IsZero() {
			return &SessionResult{
				RequiresOwnershipProof: true,
				Message:                "ownership proof already pending, retry later",
				NextAttempt:            next,
			}, nil
		}
		return nil, err
	}
	return &SessionResult{
		RequiresOwnershipProof: true,
		Message:                "ownership proof sent",
		NextAttempt:            next,
	}, nil
}

// CreateEntity registers a phone number as a new custodial entity. The
// operation is two-phase: without an ownership proof it delivers a code and
// returns the retry window; with one it verifies the code, provisions key
// material, and persists the entity.
func (v *Vault) CreateEntity(ctx context.Context, p CreateEntityParams) (*SessionResult, error) {
	ctx, span := tracer.Start(ctx, "vault.create_entity")
	defer span.End()

	phone, err := domain.NewPhoneNumber(p.PhoneNumber)
	if err != nil {
		return nil, err
	}
	phoneHash := v.phoneHash(phone.String())

	if _, err := v.entities.FindByPhoneHash(ctx, phoneHash); err == nil {
		return nil, fmt.Errorf("phone already registered: %w", domain.ErrAlreadyExists)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if p.OwnershipProofResponse == "" {
		return v.requestProof(ctx, phone.String())
	}

	if err := v.otp.Verify(ctx, phone.String(), p.OwnershipProofResponse); err != nil {
		return nil, err
	}

	eid := domain.DeriveEID(phoneHash)

	publishKP, err := v.keys.CreateOrLoad(v.keys.PublishPath(eid))
	if err != nil {
		return nil, err
	}
	deviceKP, err := v.keys.CreateOrLoad(v.keys.DeviceIDPath(eid))
	if err != nil {
		return nil, err
	}

	clientDevicePub, err := crypto.DecodePublicKey(p.ClientDeviceIDPubKey)
	if err != nil {
		return nil, err
	}
	if _, err := crypto.DecodePublicKey(p.ClientPublishPubKey); err != nil {
		return nil, err
	}

	sharedKey, err := deviceKP.Agree(clientDevicePub)
	if err != nil {
		return nil, err
	}
	deviceID := auth.ComputeDeviceID(sharedKey, phone.String(), p.ClientDeviceIDPubKey)

	llt, err := auth.MintLLT(eid, sharedKey, v.lltTTL, v.clock)
	if err != nil {
		return nil, err
	}

	countryCode, err := v.encryptor.EncryptEncode([]byte(p.CountryCode))
	if err != nil {
		return nil, err
	}

	now := v.clock.Now()
	entity := &domain.Entity{
		EID:                   eid,
		PhoneNumberHash:       phoneHash,
		PasswordHash:          v.passwordHash(p.Password),
		CountryCodeCiphertext: countryCode,
		DeviceID:              deviceID,
		ClientPublishPubKey:   p.ClientPublishPubKey,
		ClientDeviceIDPubKey:  p.ClientDeviceIDPubKey,
		PublishKeypair:        keystore.MarshalKeyPair(publishKP),
		DeviceIDKeypair:       keystore.MarshalKeyPair(deviceKP),
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := v.entities.Create(ctx, entity); err != nil {
		return nil, err
	}

	v.metrics.EntityCreated(ctx)
	v.logger.InfoContext(ctx, "entity created", slog.String("eid", eid.String()))

	return &SessionResult{
		Message:              "entity created",
		LongLivedToken:       llt,
		ServerPublishPubKey:  publishKP.PublicBase64(),
		ServerDeviceIDPubKey: deviceKP.PublicBase64(),
	}, nil
}
