// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/cmn/nlog"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const maxValidateWorkers = 32

// Validate checks, once at startup, that every file the configured mode requires
// exists and has the exact expected size. In MODE32 all 65536 shards are checked
// in parallel; the first failure cancels the rest.
func Validate(ctx context.Context, mode cmn.Mode, dir string) error {
	if !mode.IsValid() {
		return cmn.NewErrInvalidMode(mode.String())
	}
	if mode != cmn.Mode32 {
		return checkFile(mode, filepath.Join(dir, Fname(mode, 0)))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(maxValidateWorkers, 4*runtime.GOMAXPROCS(0)))
	for i := range NumShards {
		if gctx.Err() != nil {
			break
		}
		fqn := filepath.Join(dir, ShardName(uint16(i)))
		g.Go(func() error { return checkFile(cmn.Mode32, fqn) })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "secret layout validation")
	}
	nlog.Infof("%s: validated %d file(s) in %q", mode, NumShards, dir)
	return nil
}

func checkFile(mode cmn.Mode, fqn string) error {
	finfo, err := os.Stat(fqn)
	if err != nil {
		return newErrBadLayout(mode, fqn, 0, err)
	}
	if !finfo.Mode().IsRegular() {
		return newErrBadLayout(mode, fqn, 0, errors.Errorf("%q is not a regular file", fqn))
	}
	if size := finfo.Size(); size != FileSize(mode) {
		return newErrBadLayout(mode, fqn, size, nil)
	}
	return nil
}
