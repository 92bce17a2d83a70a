package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/relaysms/vault/internal/auth"
	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/keystore"
)

// AuthenticateEntityParams carries the inputs of both AuthenticateEntity
// phases.
type AuthenticateEntityParams struct {
	PhoneNumber            string
	Password               string
	ClientPublishPubKey    string
	ClientDeviceIDPubKey   string
	OwnershipProofResponse string
}

// AuthenticateEntity re-establishes a session for an existing entity. Both
// phases verify the password in constant time. Phase 1 delivers an ownership
// proof and revokes the current session; phase 2 verifies the proof and
// rotates both server key pairs before minting a fresh long-lived token.
func (v *Vault) AuthenticateEntity(ctx context.Context, p AuthenticateEntityParams) (*SessionResult, error) {
	ctx, span := tracer.Start(ctx, "vault.authenticate_entity")
	defer span.End()

	phone, err := domain.NewPhoneNumber(p.PhoneNumber)
	if err != nil {
		return nil, err
	}

	e, err := v.entities.FindByPhoneHash(ctx, v.phoneHash(phone.String()))
	if err != nil {
		return nil, err
	}

	if !crypto.VerifyHMAC(v.hashingKey, p.Password, e.PasswordHash) {
		v.metrics.AuthFailed(ctx, "password")
		return nil, fmt.Errorf("password verification: %w", domain.ErrIncorrectPassword)
	}

	if p.OwnershipProofResponse == "" {
		// Revoke the current session before the proof round trip; the old
		// device binding must not survive a re-authentication attempt.
		release := v.locks.Acquire(e.EID)
		e.DeviceID = ""
		e.ServerState = nil
		e.UpdatedAt = v.clock.Now()
		err := v.entities.Update(ctx, e)
		release()
		if err != nil {
			return nil, err
		}
		return v.requestProof(ctx, phone.String())
	}

	if err := v.otp.Verify(ctx, phone.String(), p.OwnershipProofResponse); err != nil {
		return nil, err
	}

	result, err := v.rotateSession(ctx, e, phone.String(), p.ClientPublishPubKey, p.ClientDeviceIDPubKey)
	if err != nil {
		return nil, err
	}

	v.metrics.Authenticated(ctx)
	v.logger.InfoContext(ctx, "entity authenticated", slog.String("eid", e.EID.String()))
	return result, nil
}

// rotateSession replaces both server key pairs, binds the new client public
// keys, computes the fresh device identifier, and mints a long-lived token.
// The ratchet state is dropped: the payload channel restarts with the new
// publish keys.
func (v *Vault) rotateSession(ctx context.Context, e *domain.Entity, phone, clientPublishPub, clientDevicePub string) (*SessionResult, error) {
	clientDevicePubRaw, err := crypto.DecodePublicKey(clientDevicePub)
	if err != nil {
		return nil, err
	}
	if _, err := crypto.DecodePublicKey(clientPublishPub); err != nil {
		return nil, err
	}

	release := v.locks.Acquire(e.EID)
	defer release()

	publishKP, err := v.keys.Replace(v.keys.PublishPath(e.EID))
	if err != nil {
		return nil, err
	}
	deviceKP, err := v.keys.Replace(v.keys.DeviceIDPath(e.EID))
	if err != nil {
		return nil, err
	}

	sharedKey, err := deviceKP.Agree(clientDevicePubRaw)
	if err != nil {
		return nil, err
	}
	deviceID := auth.ComputeDeviceID(sharedKey, phone, clientDevicePub)

	llt, err := auth.MintLLT(e.EID, sharedKey, v.lltTTL, v.clock)
	if err != nil {
		return nil, err
	}

	e.DeviceID = deviceID
	e.ClientPublishPubKey = clientPublishPub
	e.ClientDeviceIDPubKey = clientDevicePub
	e.PublishKeypair = keystore.MarshalKeyPair(publishKP)
	e.DeviceIDKeypair = keystore.MarshalKeyPair(deviceKP)
	e.ServerState = nil
	e.UpdatedAt = v.clock.Now()

	if err := v.entities.Update(ctx, e); err != nil {
		return nil, err
	}

	return &SessionResult{
		Message:              "session established",
		LongLivedToken:       llt,
		ServerPublishPubKey:  publishKP.PublicBase64(),
		ServerDeviceIDPubKey: deviceKP.PublicBase64(),
	}, nil
}
