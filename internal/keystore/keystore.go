// Package keystore persists X25519 key pairs on disk, one file per
// (entity, purpose). File contents are versioned blobs so the key
// serialization can be migrated later.
package keystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
)

// blobVersion is the current key pair serialization version.
const blobVersion = 0x01

// blobSize is version byte + 32-byte private + 32-byte public.
const blobSize = 1 + 32 + 32

// Purpose names the role of a key pair within an entity.
type Purpose string

const (
	// PurposePublish keys the Double Ratchet payload channel.
	PurposePublish Purpose = "publish"
	// PurposeDeviceID keys device ID computation and LLT signing.
	PurposeDeviceID Purpose = "device_id"
)

// Store is a directory of serialized X25519 key pairs.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("keystore: empty directory")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("keystore: create directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the on-disk path for an entity's key pair file,
// e.g. <dir>/<eid>_publish.db.
func (s *Store) Path(eid domain.EID, purpose Purpose) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.db", eid, purpose))
}

// PublishPath returns the publish key pair path for eid.
func (s *Store) PublishPath(eid domain.EID) string {
	return s.Path(eid, PurposePublish)
}

// DeviceIDPath returns the device_id key pair path for eid.
func (s *Store) DeviceIDPath(eid domain.EID) string {
	return s.Path(eid, PurposeDeviceID)
}

// CreateOrLoad returns the key pair at path, generating and persisting a
// fresh one if the file does not exist. Creation is atomic: the blob is
// written to a temporary file and linked into place, so two concurrent
// callers for the same path converge on a single key pair and both observe
// the same public key.
func (s *Store) CreateOrLoad(path string) (*crypto.KeyPair, error) {
	if kp, err := s.load(path); err == nil {
		return kp, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	kp, err := crypto.GenerateX25519()
	if err != nil {
		return nil, fmt.Errorf("keystore: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".keypair-*")
	if err != nil {
		return nil, fmt.Errorf("keystore: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(MarshalKeyPair(kp)); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("keystore: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("keystore: close temp: %w", err)
	}

	// Link is create-if-absent: it fails with EEXIST when a concurrent
	// caller won the race, in which case the winner's key pair is loaded.
	if err := os.Link(tmpName, path); err != nil {
		if errors.Is(err, os.ErrExist) {
			return s.load(path)
		}
		return nil, fmt.Errorf("keystore: link %s: %w", path, err)
	}

	return kp, nil
}

// Replace deletes any key pair at path and generates a fresh one. Used on
// authentication and password reset, where the intent is key rotation rather
// than the idempotent load of entity creation.
func (s *Store) Replace(path string) (*crypto.KeyPair, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("keystore: remove %s: %w", path, err)
	}
	return s.CreateOrLoad(path)
}

// Load returns the key pair at path. Returns domain.ErrNotFound when the
// file does not exist.
func (s *Store) Load(path string) (*crypto.KeyPair, error) {
	kp, err := s.load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("keystore: %s: %w", path, domain.ErrNotFound)
	}
	return kp, err
}

// Remove deletes the key pair at path. Removing a missing file is not an
// error; entity deletion must be idempotent.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("keystore: remove %s: %w", path, err)
	}
	return nil
}

func (s *Store) load(path string) (*crypto.KeyPair, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	kp, err := UnmarshalKeyPair(blob)
	if err != nil {
		return nil, fmt.Errorf("keystore: %s: %w", path, err)
	}
	return kp, nil
}

// MarshalKeyPair serializes a key pair into the versioned blob form stored
// both on disk and on the entity record.
func MarshalKeyPair(kp *crypto.KeyPair) []byte {
	blob := make([]byte, 0, blobSize)
	blob = append(blob, blobVersion)
	blob = append(blob, kp.Private()...)
	blob = append(blob, kp.Public()...)
	return blob
}

// UnmarshalKeyPair reverses MarshalKeyPair.
func UnmarshalKeyPair(blob []byte) (*crypto.KeyPair, error) {
	if len(blob) != blobSize {
		return nil, fmt.Errorf("keypair blob must be %d bytes, got %d", blobSize, len(blob))
	}
	if blob[0] != blobVersion {
		return nil, fmt.Errorf("unsupported keypair blob version 0x%02x", blob[0])
	}
	return crypto.NewKeyPair(blob[1:33], blob[33:65])
}
