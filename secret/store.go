// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret

import (
	"path/filepath"

	"github.com/NVIDIA/cryptoserver/cmn"

	"github.com/pkg/errors"
)

// Store is read-only and stateless: files are opened per read and never cached,
// so a single instance is safe for concurrent use.
type Store struct {
	dir  string
	mode cmn.Mode
}

func NewStore(mode cmn.Mode, dir string) *Store { return &Store{dir: dir, mode: mode} }

func (s *Store) String() string { return "secret-store[" + s.mode.String() + ", " + s.dir + "]" }

// Locate returns the fully qualified file name and the offset of the secret selected by keyID.
func (s *Store) Locate(keyID uint32) (fqn string, off int64) {
	loc := Locate(s.mode, keyID)
	return filepath.Join(s.dir, loc.Fname), loc.Off
}

// Get reads the secret selected by keyID into sec; on error, sec is wiped.
func (s *Store) Get(keyID uint32, sec *Secret) error {
	fqn, off := s.Locate(keyID)
	f, err := openSecret(fqn)
	if err != nil {
		return newErrSecretRead(fqn, off, err)
	}
	_, err = f.ReadAt(sec[:], off)
	f.Close()
	if err != nil {
		sec.Wipe()
		return newErrSecretRead(fqn, off, errors.Wrapf(err, "short read (%d bytes)", SecretSize))
	}
	return nil
}
