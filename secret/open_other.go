//go:build !linux

// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret

import "os"

func openSecret(fqn string) (*os.File, error) { return os.Open(fqn) }
