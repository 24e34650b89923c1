// Package sign derives key identifiers and computes HMAC-SHA256 signatures over request payloads
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/NVIDIA/cryptoserver/api/apc"
	"github.com/NVIDIA/cryptoserver/cmn/debug"
	"github.com/NVIDIA/cryptoserver/secret"

	"github.com/pkg/errors"
)

type (
	// implemented by secret.Store
	SecretGetter interface {
		Get(keyID uint32, sec *secret.Secret) error
	}

	// Observer receives secret-read latencies (e.g., stats.Tracker)
	Observer interface {
		ObserveSecretRead(d time.Duration)
	}

	Digest [apc.DigestSize]byte

	Signer struct {
		store   SecretGetter
		keyHash KeyHash
		obs     Observer
	}

	ErrSigning struct {
		cause error
		keyID uint32
	}
)

// NewSigner: nil keyHash selects DeriveKeyID; obs is optional.
func NewSigner(store SecretGetter, keyHash KeyHash, obs Observer) *Signer {
	if keyHash == nil {
		keyHash = DeriveKeyID
	}
	return &Signer{store: store, keyHash: keyHash, obs: obs}
}

// KeyID returns the identifier that selects the secret for this payload.
func (s *Signer) KeyID(payload []byte) uint32 { return s.keyHash(payload) }

// Sign is stateless and safe for concurrent use: the secret is read
// fresh for every call and wiped before returning, on all paths.
// Empty payload is valid.
func (s *Signer) Sign(payload []byte) (digest Digest, err error) {
	var (
		sec   secret.Secret
		keyID = s.keyHash(payload)
	)
	defer sec.Wipe()

	started := time.Now()
	err = s.store.Get(keyID, &sec)
	if s.obs != nil {
		s.obs.ObserveSecretRead(time.Since(started))
	}
	if err != nil {
		return digest, &ErrSigning{cause: err, keyID: keyID}
	}

	mac := hmac.New(sha256.New, sec[:])
	sec.Wipe()
	mac.Write(payload)
	n := len(mac.Sum(digest[:0]))
	debug.Assert(n == apc.DigestSize)
	return digest, nil
}

//
// ErrSigning
//

func (e *ErrSigning) Error() string {
	return fmt.Sprintf("failed to sign (key ID %#08x): %v", e.keyID, e.cause)
}

func (e *ErrSigning) Unwrap() error { return e.cause }

func (e *ErrSigning) KeyID() uint32 { return e.keyID }

func IsErrSigning(err error) bool {
	var e *ErrSigning
	return errors.As(err, &e)
}
