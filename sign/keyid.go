// Package sign derives key identifiers and computes HMAC-SHA256 signatures over request payloads
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package sign

import (
	"strings"

	"github.com/NVIDIA/cryptoserver/api/apc"
	"github.com/NVIDIA/cryptoserver/cmn"

	"github.com/OneOfOne/xxhash"
	"github.com/spaolacci/murmur3"
)

// KeyHash maps a payload to a 32-bit key identifier.
// Selection only, not security-sensitive: it does not need to be
// cryptographically strong, but it must be deterministic and stable
// across restarts and deployments.
type KeyHash func(payload []byte) uint32

// DeriveKeyID is the default: 32-bit MurmurHash3 (x86), seed 0.
func DeriveKeyID(payload []byte) uint32 { return murmur3.Sum32(payload) }

// xxh32 (seed 0) is the alternative; switching invalidates every previously issued signature.
func xxh32(payload []byte) uint32 { return xxhash.Checksum32(payload) }

// ParseKeyHash resolves the configured name; empty selects the default.
func ParseKeyHash(name string) (KeyHash, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", apc.KeyHashMurmur3:
		return DeriveKeyID, nil
	case apc.KeyHashXXH32:
		return xxh32, nil
	default:
		return nil, cmn.NewErrInvalidConfig("key_hash", "%q (expecting %s or %s)", name,
			apc.KeyHashMurmur3, apc.KeyHashXXH32)
	}
}
