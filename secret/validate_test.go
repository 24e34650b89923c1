// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/secret"
	"github.com/NVIDIA/cryptoserver/tools/tassert"
)

func sparse(t *testing.T, fqn string, size int64) {
	t.Helper()
	f, err := os.Create(fqn)
	tassert.CheckFatal(t, err)
	tassert.CheckFatal(t, f.Truncate(size))
	tassert.CheckFatal(t, f.Close())
}

func allShards(t *testing.T, dir string) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping in short mode: creates 65536 files")
	}
	for i := range secret.NumShards {
		sparse(t, filepath.Join(dir, secret.ShardName(uint16(i))), secret.KeyspaceFileSize)
	}
}

func TestValidateMode0(t *testing.T) {
	dir := t.TempDir()
	err := secret.Validate(context.Background(), cmn.Mode0, dir)
	tassert.Errorf(t, errors.Is(err, secret.ErrBadSecretFileMode0), "missing: got %v", err)

	sparse(t, filepath.Join(dir, secret.FnameMode0), 31)
	err = secret.Validate(context.Background(), cmn.Mode0, dir)
	tassert.Errorf(t, errors.Is(err, secret.ErrBadSecretFileMode0), "31 bytes: got %v", err)

	sparse(t, filepath.Join(dir, secret.FnameMode0), 33)
	err = secret.Validate(context.Background(), cmn.Mode0, dir)
	tassert.Errorf(t, errors.Is(err, secret.ErrBadSecretFileMode0), "33 bytes: got %v", err)

	sparse(t, filepath.Join(dir, secret.FnameMode0), 32)
	tassert.CheckError(t, secret.Validate(context.Background(), cmn.Mode0, dir))
}

func TestValidateMode16(t *testing.T) {
	dir := t.TempDir()
	err := secret.Validate(context.Background(), cmn.Mode16, dir)
	tassert.Errorf(t, errors.Is(err, secret.ErrBadSecretFileMode16), "missing: got %v", err)

	sparse(t, filepath.Join(dir, secret.FnameMode16), secret.KeyspaceFileSize-1)
	err = secret.Validate(context.Background(), cmn.Mode16, dir)
	tassert.Errorf(t, errors.Is(err, secret.ErrBadSecretFileMode16), "short: got %v", err)
	var e *secret.ErrBadLayout
	tassert.Fatalf(t, errors.As(err, &e), "expected bad-layout, got %T", err)
	tassert.Errorf(t, e.Size == secret.KeyspaceFileSize-1 && e.Want == secret.KeyspaceFileSize, "%+v", e)

	sparse(t, filepath.Join(dir, secret.FnameMode16), secret.KeyspaceFileSize)
	tassert.CheckError(t, secret.Validate(context.Background(), cmn.Mode16, dir))

	// a directory in place of the file
	dir = t.TempDir()
	tassert.CheckFatal(t, os.Mkdir(filepath.Join(dir, secret.FnameMode16), 0o700))
	err = secret.Validate(context.Background(), cmn.Mode16, dir)
	tassert.Errorf(t, errors.Is(err, secret.ErrBadSecretFileMode16), "dir: got %v", err)
}

func TestValidateMode32(t *testing.T) {
	dir := t.TempDir()
	allShards(t, dir)
	tassert.CheckFatal(t, secret.Validate(context.Background(), cmn.Mode32, dir))

	// every shard is checked, including the last one
	last := filepath.Join(dir, "ffff")
	tassert.CheckFatal(t, os.Remove(last))
	err := secret.Validate(context.Background(), cmn.Mode32, dir)
	tassert.Errorf(t, errors.Is(err, secret.ErrBadSecretFileMode32), "missing ffff: got %v", err)

	sparse(t, last, secret.KeyspaceFileSize+32)
	err = secret.Validate(context.Background(), cmn.Mode32, dir)
	tassert.Errorf(t, errors.Is(err, secret.ErrBadSecretFileMode32), "oversized ffff: got %v", err)

	sparse(t, last, secret.KeyspaceFileSize)
	tassert.CheckFatal(t, os.Remove(filepath.Join(dir, "8000")))
	err = secret.Validate(context.Background(), cmn.Mode32, dir)
	tassert.Errorf(t, errors.Is(err, secret.ErrBadSecretFileMode32), "missing 8000: got %v", err)
}

func TestValidateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := secret.Validate(ctx, cmn.Mode32, t.TempDir())
	tassert.Errorf(t, err != nil, "expected error")
}

func TestValidateInvalidMode(t *testing.T) {
	err := secret.Validate(context.Background(), cmn.Mode(7), t.TempDir())
	tassert.Errorf(t, cmn.IsErrInvalidMode(err), "expected invalid-mode, got %v", err)
}
