// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret

import "github.com/awnumar/memguard"

// Secret is read fresh for every signing operation and must be wiped
// on every exit path once the keyed hash is constructed.
type Secret [SecretSize]byte

func (s *Secret) Wipe() { memguard.WipeBytes(s[:]) }

// IsZero is true for wiped (and never-read) secrets
func (s *Secret) IsZero() bool {
	var acc byte
	for _, b := range s {
		acc |= b
	}
	return acc == 0
}
