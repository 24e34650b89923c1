// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret

import (
	"crypto/rand"
	"io"
	"os"
	"path/filepath"

	"github.com/NVIDIA/cryptoserver/cmn"

	"github.com/awnumar/memguard"
	"github.com/pkg/errors"
)

const (
	genFilePerm = 0o400
	genDirPerm  = 0o700
)

type GenArgs struct {
	Rand   io.Reader // defaults to crypto/rand
	Dir    string
	Mode   cmn.Mode
	Sparse bool // create zero-filled sparse files of the correct size (testing only)
	Force  bool // overwrite existing files
}

// Generate populates a secret directory for the given mode.
// Each file is written to a temporary name and then renamed into place.
func Generate(args *GenArgs) error {
	if !args.Mode.IsValid() {
		return cmn.NewErrInvalidMode(args.Mode.String())
	}
	if args.Rand == nil {
		args.Rand = rand.Reader
	}
	if err := os.MkdirAll(args.Dir, genDirPerm); err != nil {
		return errors.Wrapf(err, "generate: mkdir %q", args.Dir)
	}
	var (
		size = FileSize(args.Mode)
		buf  []byte
	)
	if !args.Sparse {
		buf = make([]byte, size)
		defer memguard.WipeBytes(buf)
	}
	for i := range NumFiles(args.Mode) {
		fqn := filepath.Join(args.Dir, Fname(args.Mode, i))
		if !args.Force {
			if _, err := os.Lstat(fqn); err == nil {
				return errors.Errorf("generate: %q already exists", fqn)
			}
		}
		if err := genFile(args, fqn, size, buf); err != nil {
			return err
		}
	}
	return nil
}

func genFile(args *GenArgs, fqn string, size int64, buf []byte) (err error) {
	tmp := fqn + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, genFilePerm)
	if err != nil {
		return errors.Wrap(err, "generate")
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	if args.Sparse {
		err = f.Truncate(size)
	} else {
		if _, err = io.ReadFull(args.Rand, buf); err == nil {
			_, err = f.Write(buf)
		}
		if err == nil {
			err = f.Sync()
		}
	}
	if errC := f.Close(); err == nil {
		err = errC
	}
	if err != nil {
		return errors.Wrapf(err, "generate %q", fqn)
	}
	return errors.Wrap(os.Rename(tmp, fqn), "generate")
}
