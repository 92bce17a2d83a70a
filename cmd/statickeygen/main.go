// Package main is the static X25519 key management CLI. It maintains a pool
// of pre-generated keypairs, each encrypted at rest under the vault's AES
// key, with a JSON index recording key IDs and statuses.
//
// Subcommands:
//
//	generate  populate the pool (skips when the pool already exists)
//	export    write the active public keys to a JSON file
//	test      run a pairwise key agreement self-test
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/relaysms/vault/internal/config"
	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/keystore"
	"github.com/relaysms/vault/internal/observability"
)

const poolIndexName = "pool.json"

// poolEntry is one keypair in the pool index.
type poolEntry struct {
	KID    int    `json:"kid"`
	File   string `json:"file"`
	Status string `json:"status"`
}

// exportedKey is the public half of a pool keypair, as written by export.
type exportedKey struct {
	KID       int    `json:"kid"`
	PublicKey string `json:"public_key"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: statickeygen <generate|export|test> [flags]")
	}

	cfg, err := config.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      "text",
		ServiceName: "statickeygen",
		Mode:        cfg.Mode,
	})

	if cfg.Secrets.EncryptionSalt.IsEmpty() {
		return fmt.Errorf("%w: secrets.encryption_salt", domain.ErrConfigRequired)
	}
	key, err := crypto.DeriveKey([]byte(cfg.Secrets.EncryptionSalt.Expose()), "encryption", domain.EncryptionKeySize)
	if err != nil {
		return fmt.Errorf("derive encryption key: %w", err)
	}
	enc, err := crypto.NewEncryptor(key)
	if err != nil {
		return fmt.Errorf("create encryptor: %w", err)
	}

	dir := cfg.Keystore.StaticPath

	switch args[0] {
	case "generate":
		fs := flag.NewFlagSet("generate", flag.ContinueOnError)
		count := fs.Int("n", 255, "number of keypairs to generate")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return generatePool(logger, enc, dir, *count)

	case "export":
		fs := flag.NewFlagSet("export", flag.ContinueOnError)
		file := fs.String("f", "static_x25519_pub_keys.json", "path to save the public keys file")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return exportPublicKeys(logger, enc, dir, *file)

	case "test":
		return testAgreement(logger, enc, dir)

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

// generatePool fills the pool directory with count encrypted keypairs and
// writes the index. An existing non-empty pool is left untouched.
func generatePool(logger *slog.Logger, enc *crypto.Encryptor, dir string, count int) error {
	if entries, err := os.ReadDir(dir); err == nil && len(entries) > 0 {
		logger.Info("keypairs already exist, skipping generation", slog.String("dir", dir))
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create pool directory: %w", err)
	}

	index := make([]poolEntry, 0, count)
	for kid := 0; kid < count; kid++ {
		name := uuid.New().String() + ".db"
		if err := writeKeypair(enc, filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("generate keypair %d: %w", kid, err)
		}
		index = append(index, poolEntry{KID: kid, File: name, Status: "active"})
	}
	if err := writeIndex(dir, index); err != nil {
		return err
	}

	logger.Info("generated keypairs", slog.Int("count", count), slog.String("dir", dir))
	return nil
}

func writeKeypair(enc *crypto.Encryptor, path string) error {
	kp, err := crypto.GenerateX25519()
	if err != nil {
		return err
	}
	sealed, err := enc.EncryptEncode(keystore.MarshalKeyPair(kp))
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(sealed), 0o600)
}

// exportPublicKeys writes the active public keys to a JSON file.
func exportPublicKeys(logger *slog.Logger, enc *crypto.Encryptor, dir, file string) error {
	pool, err := loadActive(enc, dir)
	if err != nil {
		return err
	}

	keys := make([]exportedKey, 0, len(pool))
	for _, pk := range pool {
		keys = append(keys, exportedKey{KID: pk.kid, PublicKey: pk.kp.PublicBase64()})
	}
	out, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return fmt.Errorf("encode public keys: %w", err)
	}

	if parent := filepath.Dir(file); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(file, out, 0o644); err != nil {
		return fmt.Errorf("write public keys: %w", err)
	}

	logger.Info("public keys exported", slog.Int("count", len(keys)), slog.String("file", file))
	return nil
}

// testAgreement picks two random active keypairs and checks that both sides
// derive the same shared secret.
func testAgreement(logger *slog.Logger, enc *crypto.Encryptor, dir string) error {
	pool, err := loadActive(enc, dir)
	if err != nil {
		return err
	}
	if len(pool) < 2 {
		return errors.New("not enough keypairs for key agreement test")
	}

	i := rand.Intn(len(pool))
	j := rand.Intn(len(pool) - 1)
	if j >= i {
		j++
	}
	a, b := pool[i], pool[j]

	s1, err := a.kp.Agree(b.kp.Public())
	if err != nil {
		return fmt.Errorf("agree %d with %d: %w", a.kid, b.kid, err)
	}
	s2, err := b.kp.Agree(a.kp.Public())
	if err != nil {
		return fmt.Errorf("agree %d with %d: %w", b.kid, a.kid, err)
	}
	if string(s1) != string(s2) {
		return fmt.Errorf("key agreement failed between %d and %d: shared secrets differ", a.kid, b.kid)
	}

	logger.Info("key agreement successful", slog.Int("kid_a", a.kid), slog.Int("kid_b", b.kid))
	return nil
}

type poolKey struct {
	kid int
	kp  *crypto.KeyPair
}

// loadActive reads the index and decrypts every active keypair.
func loadActive(enc *crypto.Encryptor, dir string) ([]poolKey, error) {
	raw, err := os.ReadFile(filepath.Join(dir, poolIndexName))
	if err != nil {
		return nil, fmt.Errorf("read pool index: %w", err)
	}
	var index []poolEntry
	if err := json.Unmarshal(raw, &index); err != nil {
		return nil, fmt.Errorf("parse pool index: %w", err)
	}

	var pool []poolKey
	for _, entry := range index {
		if entry.Status != "active" {
			continue
		}
		sealed, err := os.ReadFile(filepath.Join(dir, entry.File))
		if err != nil {
			return nil, fmt.Errorf("read keypair %d: %w", entry.KID, err)
		}
		blob, err := enc.DecodeDecrypt(string(sealed))
		if err != nil {
			return nil, fmt.Errorf("decrypt keypair %d: %w", entry.KID, err)
		}
		kp, err := keystore.UnmarshalKeyPair(blob)
		if err != nil {
			return nil, fmt.Errorf("decode keypair %d: %w", entry.KID, err)
		}
		pool = append(pool, poolKey{kid: entry.KID, kp: kp})
	}
	return pool, nil
}

func writeIndex(dir string, index []poolEntry) error {
	out, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pool index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, poolIndexName), out, 0o600); err != nil {
		return fmt.Errorf("write pool index: %w", err)
	}
	return nil
}
