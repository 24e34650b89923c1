// Package secret implements the file-backed secret store: addressing, reads, and layout validation
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package secret

import (
	"fmt"
	"strconv"

	"github.com/NVIDIA/cryptoserver/cmn"

	"github.com/pkg/errors"
)

// startup validation
var (
	ErrBadSecretFileMode0  = errors.New("BadSecretFileMode0")
	ErrBadSecretFileMode16 = errors.New("BadSecretFileMode16")
	ErrBadSecretFileMode32 = errors.New("BadSecretFileMode32")
)

type (
	// ErrBadLayout is fatal: the service must not start accepting connections.
	ErrBadLayout struct {
		kind  error // one of the ErrBadSecretFileMode* sentinels
		cause error
		Fqn   string
		Size  int64
		Want  int64
	}
	// ErrSecretRead: the expected file is missing or unreadable,
	// or it is too short for the computed offset.
	ErrSecretRead struct {
		cause error
		Fqn   string
		Off   int64
	}
)

func badLayoutKind(mode cmn.Mode) error {
	switch mode {
	case cmn.Mode16:
		return ErrBadSecretFileMode16
	case cmn.Mode32:
		return ErrBadSecretFileMode32
	default:
		return ErrBadSecretFileMode0
	}
}

//
// ErrBadLayout
//

func newErrBadLayout(mode cmn.Mode, fqn string, size int64, cause error) *ErrBadLayout {
	return &ErrBadLayout{kind: badLayoutKind(mode), cause: cause, Fqn: fqn, Size: size, Want: FileSize(mode)}
}

func (e *ErrBadLayout) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%v: %v", e.kind, e.cause)
	}
	return fmt.Sprintf("%v: %q has size %d, expected %d", e.kind, e.Fqn, e.Size, e.Want)
}

func (e *ErrBadLayout) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

func IsErrBadLayout(err error) bool {
	var e *ErrBadLayout
	return errors.As(err, &e)
}

//
// ErrSecretRead
//

func newErrSecretRead(fqn string, off int64, cause error) *ErrSecretRead {
	return &ErrSecretRead{cause: cause, Fqn: fqn, Off: off}
}

func (e *ErrSecretRead) Error() string {
	return "failed to read secret from " + strconv.Quote(e.Fqn) + " at offset " +
		strconv.FormatInt(e.Off, 10) + ": " + e.cause.Error()
}

func (e *ErrSecretRead) Unwrap() error { return e.cause }

func IsErrSecretRead(err error) bool {
	var e *ErrSecretRead
	return errors.As(err, &e)
}
