// Copyright (c) 2024-2025 Web Plus Academy
// SPDX-License-Identifier: AGPL-3.0-or-later

package secure

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Web-Plus-Academy/lms-admin/internal/util"
)

const (
	// masterKeySize is the size of the random master secret in bytes.
	masterKeySize = 32

	// saltSize is the size of the per-install PBKDF2 salt in bytes.
	saltSize = 16
)

// FileKeyStore keeps the master secret and salt in restricted-permission
// files under the console's data directory. Both files are created on
// first use.
type FileKeyStore struct {
	keyPath  string
	saltPath string
}

// NewFileKeyStore returns a keystore rooted at dataDir.
func NewFileKeyStore(dataDir string) *FileKeyStore {
	return &FileKeyStore{
		keyPath:  filepath.Join(dataDir, "master.key"),
		saltPath: filepath.Join(dataDir, "master.key.salt"),
	}
}

// LoadOrCreate returns the master secret and salt, generating and
// persisting fresh material on first use.
func (ks *FileKeyStore) LoadOrCreate() (key, salt []byte, err error) {
	key, err = ks.loadOrCreateFile(ks.keyPath, masterKeySize)
	if err != nil {
		return nil, nil, fmt.Errorf("master key: %w", err)
	}
	salt, err = ks.loadOrCreateFile(ks.saltPath, saltSize)
	if err != nil {
		return nil, nil, fmt.Errorf("key salt: %w", err)
	}
	return key, salt, nil
}

// Reset removes the stored material. Any previously sealed records become
// permanently unreadable, which downstream code treats as absence.
func (ks *FileKeyStore) Reset() error {
	if err := os.Remove(ks.keyPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(ks.saltPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (ks *FileKeyStore) loadOrCreateFile(path string, size int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != size {
			return nil, fmt.Errorf("corrupt key material in %s (%d bytes)", filepath.Base(path), len(data))
		}
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	data = make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, data); err != nil {
		return nil, fmt.Errorf("failed to generate key material: %w", err)
	}
	if err := util.AtomicWriteFileWithDir(path, data, 0600, 0700); err != nil {
		return nil, fmt.Errorf("failed to persist key material: %w", err)
	}
	return data, nil
}
