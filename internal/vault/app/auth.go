package app

import (
	"context"
	"fmt"

	"github.com/relaysms/vault/internal/auth"
	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/keystore"
)

// deviceSharedKey recovers the X25519 agreement between the entity's server
// device_id key pair and the client's device_id public key. It keys both the
// device identifier and LLT signatures.
func deviceSharedKey(e *domain.Entity) ([]byte, error) {
	kp, err := keystore.UnmarshalKeyPair(e.DeviceIDKeypair)
	if err != nil {
		return nil, fmt.Errorf("device shared key: %w", err)
	}
	clientPub, err := crypto.DecodePublicKey(e.ClientDeviceIDPubKey)
	if err != nil {
		return nil, fmt.Errorf("device shared key: %w", err)
	}
	return kp.Agree(clientPub)
}

// publishSharedKey recovers the agreement on the publish channel, together
// with the server publish key pair the ratchet needs.
func publishSharedKey(e *domain.Entity) ([]byte, *crypto.KeyPair, error) {
	kp, err := keystore.UnmarshalKeyPair(e.PublishKeypair)
	if err != nil {
		return nil, nil, fmt.Errorf("publish shared key: %w", err)
	}
	clientPub, err := crypto.DecodePublicKey(e.ClientPublishPubKey)
	if err != nil {
		return nil, nil, fmt.Errorf("publish shared key: %w", err)
	}
	shared, err := kp.Agree(clientPub)
	if err != nil {
		return nil, nil, err
	}
	return shared, kp, nil
}

// resolveByLLT authenticates a long-lived token and returns its entity.
// Every failure collapses into the invalid-token sentinel so responses do
// not reveal whether the eid exists.
func (v *Vault) resolveByLLT(ctx context.Context, token string) (*domain.Entity, error) {
	outer, envelope, err := auth.SplitLLT(token)
	if err != nil {
		return nil, err
	}
	eid, err := domain.NewEID(outer)
	if err != nil {
		return nil, fmt.Errorf("llt names no valid entity: %w", domain.ErrInvalidToken)
	}

	e, err := v.entities.GetByEID(ctx, eid)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, fmt.Errorf("llt entity lookup: %w", domain.ErrInvalidToken)
		}
		return nil, err
	}

	sharedKey, err := deviceSharedKey(e)
	if err != nil {
		return nil, fmt.Errorf("llt key recovery: %w", domain.ErrInvalidToken)
	}
	if _, err := auth.VerifyLLT(outer, envelope, sharedKey, v.clock); err != nil {
		v.metrics.AuthFailed(ctx, "llt")
		return nil, err
	}
	return e, nil
}

// resolveByDeviceID authenticates a device identifier and returns its
// entity. An unknown identifier is an authentication failure, not a lookup
// miss.
func (v *Vault) resolveByDeviceID(ctx context.Context, deviceID string) (*domain.Entity, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("empty device id: %w", domain.ErrUnknownDeviceID)
	}
	e, err := v.entities.FindByDeviceID(ctx, deviceID)
	if err != nil {
		if domain.IsNotFound(err) {
			v.metrics.AuthFailed(ctx, "device_id")
			return nil, fmt.Errorf("device id lookup: %w", domain.ErrUnknownDeviceID)
		}
		return nil, err
	}
	return e, nil
}
