package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/ratchet"
)

// DecryptPayload decrypts one inbound ratchet message from the entity's
// device. The advanced state is persisted before the plaintext is returned:
// if the write fails the message is treated as undelivered and the client
// retries against the unchanged state.
func (v *Vault) DecryptPayload(ctx context.Context, deviceID, payload string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "vault.decrypt_payload")
	defer span.End()

	e, err := v.resolveByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	header, ciphertext, err := ratchet.DecodePayload(payload)
	if err != nil {
		return nil, err
	}

	release := v.locks.Acquire(e.EID)
	defer release()

	// Re-read under the lock; a concurrent payload operation may have
	// advanced the state since the device lookup.
	e, err = v.entities.GetByEID(ctx, e.EID)
	if err != nil {
		return nil, err
	}

	state, err := v.loadRatchetState(e)
	if err != nil {
		return nil, err
	}

	next, plaintext, err := ratchet.Decrypt(state, header, ciphertext)
	if err != nil {
		return nil, err
	}

	if err := v.storeRatchetState(ctx, e, next); err != nil {
		return nil, err
	}

	v.metrics.PayloadOp(ctx, "decrypt")
	v.logger.InfoContext(ctx, "payload decrypted",
		slog.String("eid", e.EID.String()), slog.Int("bytes", len(plaintext)))
	return plaintext, nil
}

// EncryptPayload encrypts one outbound message to the entity's device and
// returns the framed base64 payload. The advanced state is persisted before
// the ciphertext is returned so a message key is never handed out twice.
func (v *Vault) EncryptPayload(ctx context.Context, deviceID string, plaintext []byte) (string, error) {
	ctx, span := tracer.Start(ctx, "vault.encrypt_payload")
	defer span.End()

	e, err := v.resolveByDeviceID(ctx, deviceID)
	if err != nil {
		return "", err
	}

	release := v.locks.Acquire(e.EID)
	defer release()

	e, err = v.entities.GetByEID(ctx, e.EID)
	if err != nil {
		return "", err
	}

	state, err := v.loadRatchetState(e)
	if err != nil {
		return "", err
	}
	if state.DHr == nil {
		// No message from the client yet; the sending chain starts against
		// the client's published key.
		shared, _, err := publishSharedKey(e)
		if err != nil {
			return "", err
		}
		clientPub, err := crypto.DecodePublicKey(e.ClientPublishPubKey)
		if err != nil {
			return "", err
		}
		state, err = ratchet.NewSendingState(shared, clientPub)
		if err != nil {
			return "", err
		}
	}

	next, header, ciphertext, err := ratchet.Encrypt(state, plaintext)
	if err != nil {
		return "", err
	}

	if err := v.storeRatchetState(ctx, e, next); err != nil {
		return "", err
	}

	v.metrics.PayloadOp(ctx, "encrypt")
	v.logger.InfoContext(ctx, "payload encrypted",
		slog.String("eid", e.EID.String()), slog.Int("bytes", len(plaintext)))
	return ratchet.EncodePayload(header, ciphertext), nil
}

// loadRatchetState deserializes the entity's persisted ratchet state, or
// initializes a fresh receiving state from the publish agreement when no
// payload has been exchanged yet.
func (v *Vault) loadRatchetState(e *domain.Entity) (*ratchet.State, error) {
	if len(e.ServerState) > 0 {
		return ratchet.Unmarshal(e.ServerState)
	}
	shared, kp, err := publishSharedKey(e)
	if err != nil {
		return nil, err
	}
	return ratchet.NewReceivingState(shared, kp), nil
}

// storeRatchetState persists the advanced state onto the entity record.
// Callers hold the entity lock.
func (v *Vault) storeRatchetState(ctx context.Context, e *domain.Entity, s *ratchet.State) error {
	blob, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("serialize ratchet state: %w", err)
	}
	e.ServerState = blob
	e.UpdatedAt = v.clock.Now()
	return v.entities.Update(ctx, e)
}
