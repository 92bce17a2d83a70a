package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/relaysms/vault/internal/domain"
)

// DeleteEntity removes the entity, its key files, and its lock entry. The
// operation refuses while credentials remain stored: the caller must revoke
// them platform-side first, so the error names every remaining
// (platform, account identifier) pair.
func (v *Vault) DeleteEntity(ctx context.Context, longLivedToken string) error {
	ctx, span := tracer.Start(ctx, "vault.delete_entity")
	defer span.End()

	e, err := v.resolveByLLT(ctx, longLivedToken)
	if err != nil {
		return err
	}

	release := v.locks.Acquire(e.EID)
	defer release()

	toks, err := v.tokens.ListByEID(ctx, e.EID)
	if err != nil {
		return err
	}
	if len(toks) > 0 {
		pairs := make([]string, 0, len(toks))
		for _, t := range toks {
			id, err := v.encryptor.DecodeDecryptString(t.AccountIdentifierCiphertext)
			if err != nil {
				return err
			}
			pairs = append(pairs, fmt.Sprintf("(%s, %s)", t.Platform, id))
		}
		return fmt.Errorf("revoke stored accounts first: %s: %w",
			strings.Join(pairs, ", "), domain.ErrTokensStillStored)
	}

	if err := v.entities.Delete(ctx, e.EID); err != nil {
		return err
	}

	// Key files and the lock entry go after the row; a crash between the
	// two leaves only orphaned files, which a re-created entity replaces.
	if err := v.keys.Remove(v.keys.PublishPath(e.EID)); err != nil {
		return err
	}
	if err := v.keys.Remove(v.keys.DeviceIDPath(e.EID)); err != nil {
		return err
	}
	v.locks.Prune(e.EID)

	v.logger.InfoContext(ctx, "entity deleted", slog.String("eid", e.EID.String()))
	return nil
}
