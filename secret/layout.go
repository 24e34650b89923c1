// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret

import (
	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/cmn/debug"
)

// on-disk layout
//
//	| mode   | files               | per-file size   | secret                                   |
//	|--------|---------------------|-----------------|------------------------------------------|
//	| MODE0  | secret              | 32B             | entire file                              |
//	| MODE16 | 0000                | 2MiB            | offset = (keyID & 0xffff) * 32           |
//	| MODE32 | 0000 ... ffff       | 2MiB each       | file = %04x of keyID >> 16; offset ditto |
const (
	SecretSize       = 32
	SecretsPerFile   = 1 << 16
	KeyspaceFileSize = SecretSize * SecretsPerFile // 2,097,152
	NumShards        = 1 << 16

	FnameMode0  = "secret"
	FnameMode16 = "0000"
)

const hexchars = "0123456789abcdef"

// Loc is the physical location of a secret relative to the secret directory.
type Loc struct {
	Fname string
	Off   int64
}

// Locate is a pure function of (mode, keyID).
func Locate(mode cmn.Mode, keyID uint32) Loc {
	switch mode {
	case cmn.Mode16:
		return Loc{Fname: FnameMode16, Off: offset(keyID)}
	case cmn.Mode32:
		return Loc{Fname: ShardName(uint16((keyID & 0xffff0000) >> 16)), Off: offset(keyID)}
	default:
		debug.Assertf(mode == cmn.Mode0, "invalid mode %d", mode)
		return Loc{Fname: FnameMode0}
	}
}

func offset(keyID uint32) int64 { return int64(keyID&0xffff) * SecretSize }

// ShardName renders a 16-bit shard index as 4 lowercase hex digits.
func ShardName(idx uint16) string {
	b := [4]byte{
		hexchars[idx>>12],
		hexchars[(idx>>8)&0xf],
		hexchars[(idx>>4)&0xf],
		hexchars[idx&0xf],
	}
	return string(b[:])
}

// parseShardName is the inverse of ShardName
func parseShardName(name string) (idx uint16, ok bool) {
	if len(name) != 4 {
		return 0, false
	}
	for i := range 4 {
		c := name[i]
		var v byte
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		default:
			return 0, false
		}
		idx = idx<<4 | uint16(v)
	}
	return idx, true
}

// FileSize returns the exact size of each file in the given mode.
func FileSize(mode cmn.Mode) int64 {
	if mode == cmn.Mode0 {
		return SecretSize
	}
	return KeyspaceFileSize
}

// NumFiles returns the number of files in the given mode.
func NumFiles(mode cmn.Mode) int {
	if mode == cmn.Mode32 {
		return NumShards
	}
	return 1
}

// Fname returns the name of the i-th file in the given mode, 0 <= i < NumFiles(mode).
func Fname(mode cmn.Mode, i int) string {
	switch mode {
	case cmn.Mode0:
		return FnameMode0
	case cmn.Mode16:
		return FnameMode16
	default:
		return ShardName(uint16(i))
	}
}
