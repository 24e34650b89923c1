// Package cmn provides common types, configuration, and utilities for the signing service
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"errors"
	"fmt"
)

type (
	ErrInvalidMode struct {
		value string
	}
	ErrInvalidConfig struct {
		field string
		what  string
	}
)

func NewErrInvalidMode(value string) *ErrInvalidMode { return &ErrInvalidMode{value} }

func (e *ErrInvalidMode) Error() string {
	return fmt.Sprintf("invalid mode %q (expecting one of: %s, %s, %s)", e.value, Mode0, Mode16, Mode32)
}

func IsErrInvalidMode(err error) bool {
	var e *ErrInvalidMode
	return errors.As(err, &e)
}

func NewErrInvalidConfig(field, format string, a ...any) *ErrInvalidConfig {
	return &ErrInvalidConfig{field: field, what: fmt.Sprintf(format, a...)}
}

func (e *ErrInvalidConfig) Error() string {
	return "invalid config " + e.field + ": " + e.what
}

func IsErrInvalidConfig(err error) bool {
	var e *ErrInvalidConfig
	return errors.As(err, &e)
}
