// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/NVIDIA/cryptoserver/cmn"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

// Layout summarizes the contents of a secret directory.
type Layout struct {
	Dir       string `json:"dir"`
	Mode0     bool   `json:"mode0"`      // "secret" exists and is exactly 32 bytes
	Shards    int    `json:"shards"`     // correctly sized 4-hex-digit files
	BadShards int    `json:"bad_shards"` // 4-hex-digit files of the wrong size
	Other     int    `json:"other"`
	Has0000   bool   `json:"has_0000"` // correctly sized "0000"
}

// Inspect reads the directory (non-recursively) and reports which layouts it satisfies.
// Used in diagnostics only; it does not replace Validate.
func Inspect(dir string) (*Layout, error) {
	dirents, err := godirwalk.ReadDirents(dir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "inspect %q", dir)
	}
	l := &Layout{Dir: dir}
	for _, de := range dirents {
		name := de.Name()
		if de.IsDir() {
			l.Other++
			continue
		}
		switch {
		case name == FnameMode0:
			l.Mode0 = sizeIs(filepath.Join(dir, name), SecretSize)
			if !l.Mode0 {
				l.Other++
			}
		default:
			if _, ok := parseShardName(name); !ok {
				l.Other++
				continue
			}
			if !sizeIs(filepath.Join(dir, name), KeyspaceFileSize) {
				l.BadShards++
				continue
			}
			l.Shards++
			if name == FnameMode16 {
				l.Has0000 = true
			}
		}
	}
	return l, nil
}

func sizeIs(fqn string, size int64) bool {
	finfo, err := os.Stat(fqn)
	return err == nil && finfo.Mode().IsRegular() && finfo.Size() == size
}

// Modes returns the modes this layout satisfies.
func (l *Layout) Modes() (modes []cmn.Mode) {
	if l.Mode0 {
		modes = append(modes, cmn.Mode0)
	}
	if l.Has0000 {
		modes = append(modes, cmn.Mode16)
	}
	if l.Shards == NumShards {
		modes = append(modes, cmn.Mode32)
	}
	return modes
}

func (l *Layout) String() string {
	return fmt.Sprintf("%q: mode0=%t, shards=%d/%d (bad %d), other=%d, satisfies %v",
		l.Dir, l.Mode0, l.Shards, NumShards, l.BadShards, l.Other, l.Modes())
}
