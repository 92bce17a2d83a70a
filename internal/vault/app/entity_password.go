package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
)

// ResetPasswordParams carries the inputs of both ResetPassword phases.
type ResetPasswordParams struct {
	PhoneNumber            string
	NewPassword            string
	ClientPublishPubKey    string
	ClientDeviceIDPubKey   string
	OwnershipProofResponse string
}

// ResetPassword recovers an account whose password is lost. It is keyed on
// ownership of the phone number alone: phase 1 delivers a proof code and
// revokes the current session, phase 2 verifies the code, stores the new
// password hash, and rotates the session the way AuthenticateEntity does.
func (v *Vault) ResetPassword(ctx context.Context, p ResetPasswordParams) (*SessionResult, error) {
	ctx, span := tracer.Start(ctx, "vault.reset_password")
	defer span.End()

	phone, err := domain.NewPhoneNumber(p.PhoneNumber)
	if err != nil {
		return nil, err
	}

	e, err := v.entities.FindByPhoneHash(ctx, v.phoneHash(phone.String()))
	if err != nil {
		return nil, err
	}

	if p.OwnershipProofResponse == "" {
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
	if p.NewPassword == "" {
		return nil, fmt.Errorf("new password is required: %w", domain.ErrInvalidInput)
	}

	e.PasswordHash = v.passwordHash(p.NewPassword)

	result, err := v.rotateSession(ctx, e, phone.String(), p.ClientPublishPubKey, p.ClientDeviceIDPubKey)
	if err != nil {
		return nil, err
	}

	v.logger.InfoContext(ctx, "password reset", slog.String("eid", e.EID.String()))
	return result, nil
}

// UpdateEntityPassword changes the password of an authenticated entity. The
// current password must still verify; on success the session is revoked so
// every device re-authenticates with the new password.
func (v *Vault) UpdateEntityPassword(ctx context.Context, longLivedToken, currentPassword, newPassword string) error {
	ctx, span := tracer.Start(ctx, "vault.update_entity_password")
	defer span.End()

	e, err := v.resolveByLLT(ctx, longLivedToken)
	if err != nil {
		return err
	}

	if !crypto.VerifyHMAC(v.hashingKey, currentPassword, e.PasswordHash) {
		v.metrics.AuthFailed(ctx, "password")
		return fmt.Errorf("current password verification: %w", domain.ErrIncorrectPassword)
	}
	if newPassword == "" {
		return fmt.Errorf("new password is required: %w", domain.ErrInvalidInput)
	}

	release := v.locks.Acquire(e.EID)
	defer release()

	e.PasswordHash = v.passwordHash(newPassword)
	e.DeviceID = ""
	e.ServerState = nil
	e.UpdatedAt = v.clock.Now()

	if err := v.entities.Update(ctx, e); err != nil {
		return err
	}

	v.logger.InfoContext(ctx, "password updated", slog.String("eid", e.EID.String()))
	return nil
}
