// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// secret files are read on every request - don't update their access times
// (O_NOATIME requires ownership or CAP_FOWNER, hence the fallback)
func openSecret(fqn string) (*os.File, error) {
	f, err := os.OpenFile(fqn, os.O_RDONLY|unix.O_NOATIME, 0)
	if err != nil && errors.Is(err, unix.EPERM) {
		return os.Open(fqn)
	}
	return f, err
}
