package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/relaysms/vault/internal/domain"
)

// StoredTokenInfo describes one stored credential without exposing the
// provider tokens themselves.
type StoredTokenInfo struct {
	AccountIdentifier string
	Platform          string
}

// normalizePlatform lowercases and whitelists a platform name.
func normalizePlatform(platform string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(platform))
	if !domain.IsSupportedPlatform(p) {
		return "", fmt.Errorf("platform %q: %w", platform, domain.ErrUnsupportedPlatform)
	}
	return p, nil
}

// ListEntityStoredTokens returns the (account identifier, platform) pairs the
// entity has stored, with identifiers decrypted for display.
func (v *Vault) ListEntityStoredTokens(ctx context.Context, longLivedToken string) ([]StoredTokenInfo, error) {
	ctx, span := tracer.Start(ctx, "vault.list_entity_stored_tokens")
	defer span.End()

	e, err := v.resolveByLLT(ctx, longLivedToken)
	if err != nil {
		return nil, err
	}

	toks, err := v.tokens.ListByEID(ctx, e.EID)
	if err != nil {
		return nil, err
	}

	infos := make([]StoredTokenInfo, 0, len(toks))
	for _, t := range toks {
		id, err := v.encryptor.DecodeDecryptString(t.AccountIdentifierCiphertext)
		if err != nil {
			return nil, fmt.Errorf("token %s/%s: %w", t.Platform, t.AccountIdentifierHash, err)
		}
		infos = append(infos, StoredTokenInfo{AccountIdentifier: id, Platform: t.Platform})
	}
	return infos, nil
}

// StoreEntityToken stores a platform credential for the entity. Duplicate
// (platform, account identifier) pairs are rejected so an existing credential
// is never silently overwritten; UpdateEntityToken is the overwrite path.
func (v *Vault) StoreEntityToken(ctx context.Context, longLivedToken, platform, accountIdentifier, accountTokens string) error {
	ctx, span := tracer.Start(ctx, "vault.store_entity_token")
	defer span.End()

	e, err := v.resolveByLLT(ctx, longLivedToken)
	if err != nil {
		return err
	}
	plat, err := normalizePlatform(platform)
	if err != nil {
		return err
	}
	if accountIdentifier == "" || accountTokens == "" {
		return fmt.Errorf("account identifier and tokens are required: %w", domain.ErrInvalidInput)
	}

	accountHash := v.accountHash(accountIdentifier)
	if _, err := v.tokens.Get(ctx, e.EID, plat, accountHash); err == nil {
		return fmt.Errorf("credential for %s account: %w", plat, domain.ErrAlreadyExists)
	} else if !domain.IsNotFound(err) {
		return err
	}

	idCT, err := v.encryptor.EncryptEncode([]byte(accountIdentifier))
	if err != nil {
		return err
	}
	tokCT, err := v.encryptor.EncryptEncode([]byte(accountTokens))
	if err != nil {
		return err
	}

	now := v.clock.Now()
	if err := v.tokens.Put(ctx, &domain.EntityToken{
		EID:                         e.EID,
		Platform:                    plat,
		AccountIdentifierHash:       accountHash,
		AccountIdentifierCiphertext: idCT,
		AccountTokensCiphertext:     tokCT,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}); err != nil {
		return err
	}

	v.metrics.TokenOp(ctx, "store")
	v.logger.InfoContext(ctx, "token stored",
		slog.String("eid", e.EID.String()), slog.String("platform", plat))
	return nil
}

// GetEntityAccessToken returns the decrypted provider token document for one
// stored credential. Exactly one of longLivedToken and deviceID must be set.
func (v *Vault) GetEntityAccessToken(ctx context.Context, longLivedToken, deviceID, platform, accountIdentifier string) (string, error) {
	ctx, span := tracer.Start(ctx, "vault.get_entity_access_token")
	defer span.End()

	e, err := v.resolveExactlyOne(ctx, longLivedToken, deviceID)
	if err != nil {
		return "", err
	}
	plat, err := normalizePlatform(platform)
	if err != nil {
		return "", err
	}

	tok, err := v.tokens.Get(ctx, e.EID, plat, v.accountHash(accountIdentifier))
	if err != nil {
		return "", err
	}

	tokens, err := v.encryptor.DecodeDecryptString(tok.AccountTokensCiphertext)
	if err != nil {
		return "", err
	}

	v.metrics.TokenOp(ctx, "get")
	return tokens, nil
}

// resolveExactlyOne authenticates by long-lived token or device identifier,
// rejecting requests that supply both or neither.
func (v *Vault) resolveExactlyOne(ctx context.Context, longLivedToken, deviceID string) (*domain.Entity, error) {
	switch {
	case longLivedToken != "" && deviceID != "":
		return nil, fmt.Errorf("long_lived_token and device_id are mutually exclusive: %w", domain.ErrInvalidInput)
	case longLivedToken != "":
		return v.resolveByLLT(ctx, longLivedToken)
	case deviceID != "":
		return v.resolveByDeviceID(ctx, deviceID)
	default:
		return nil, fmt.Errorf("long_lived_token or device_id is required: %w", domain.ErrInvalidInput)
	}
}

// UpdateEntityToken replaces the provider token document of an existing
// credential. Device-authenticated: the refresh path runs on the device
// channel, not under an LLT.
func (v *Vault) UpdateEntityToken(ctx context.Context, deviceID, platform, accountIdentifier, accountTokens string) error {
	ctx, span := tracer.Start(ctx, "vault.update_entity_token")
	defer span.End()

	e, err := v.resolveByDeviceID(ctx, deviceID)
	if err != nil {
		return err
	}
	plat, err := normalizePlatform(platform)
	if err != nil {
		return err
	}
	if accountTokens == "" {
		return fmt.Errorf("account tokens are required: %w", domain.ErrInvalidInput)
	}

	tok, err := v.tokens.Get(ctx, e.EID, plat, v.accountHash(accountIdentifier))
	if err != nil {
		return err
	}

	tokCT, err := v.encryptor.EncryptEncode([]byte(accountTokens))
	if err != nil {
		return err
	}
	tok.AccountTokensCiphertext = tokCT
	tok.UpdatedAt = v.clock.Now()

	if err := v.tokens.Put(ctx, tok); err != nil {
		return err
	}

	v.metrics.TokenOp(ctx, "update")
	v.logger.InfoContext(ctx, "token updated",
		slog.String("eid", e.EID.String()), slog.String("platform", plat))
	return nil
}

// DeleteEntityToken removes one stored credential.
func (v *Vault) DeleteEntityToken(ctx context.Context, longLivedToken, platform, accountIdentifier string) error {
	ctx, span := tracer.Start(ctx, "vault.delete_entity_token")
	defer span.End()

	e, err := v.resolveByLLT(ctx, longLivedToken)
	if err != nil {
		return err
	}
	plat, err := normalizePlatform(platform)
	if err != nil {
		return err
	}

	if err := v.tokens.Delete(ctx, e.EID, plat, v.accountHash(accountIdentifier)); err != nil {
		return err
	}

	v.metrics.TokenOp(ctx, "delete")
	v.logger.InfoContext(ctx, "token deleted",
		slog.String("eid", e.EID.String()), slog.String("platform", plat))
	return nil
}
