package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/relaysms/vault/internal/domain"
)

// smClient is the narrow consumer-defined interface for Secrets Manager
// operations. The real *secretsmanager.Client satisfies it.
type smClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// VaultSalts is the secret document the vault reads at startup in production.
// Both salts feed PBKDF2 key derivation and must never rotate casually: the
// hashing salt determines every stored hash and the encryption salt every
// stored ciphertext.
type VaultSalts struct {
	HashingSalt    domain.SecretString `json:"hashing_salt"`
	EncryptionSalt domain.SecretString `json:"encryption_salt"`
}

// SaltLoader fetches the vault salts from AWS Secrets Manager.
type SaltLoader struct {
	sm       smClient
	secretID string
}

// NewSaltLoader creates a SaltLoader for the given secret.
func NewSaltLoader(sm smClient, secretID string) *SaltLoader {
	return &SaltLoader{sm: sm, secretID: secretID}
}

// Load fetches and parses the secret. Loading is synchronous and happens
// once at startup; the service must not start without its salts.
func (l *SaltLoader) Load(ctx context.Context) (*VaultSalts, error) {
	out, err := l.sm.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &l.secretID,
	})
	if err != nil {
		return nil, fmt.Errorf("salt loader: fetch %s: %w", l.secretID, err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("salt loader: secret %s has no string value", l.secretID)
	}

	var salts VaultSalts
	if err := json.Unmarshal([]byte(*out.SecretString), &salts); err != nil {
		return nil, fmt.Errorf("salt loader: parse secret %s: %w", l.secretID, err)
	}
	if salts.HashingSalt.IsEmpty() || salts.EncryptionSalt.IsEmpty() {
		return nil, fmt.Errorf("salt loader: secret %s is missing a salt", l.secretID)
	}
	return &salts, nil
}
