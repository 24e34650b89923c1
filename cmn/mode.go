// Package cmn provides common types, configuration, and utilities for the signing service
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"strings"
)

// Mode selects the secret-store addressing scheme; fixed for the lifetime of the process.
type Mode int

const (
	Mode0  Mode = iota // single global secret
	Mode16             // 2^16 secrets in one file
	Mode32             // 2^16 files of 2^16 secrets each
)

var modeNames = [...]string{Mode0: "MODE0", Mode16: "MODE16", Mode32: "MODE32"}

// ParseMode is case-insensitive; empty string resolves to Mode0, any other unknown value is an error.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Mode0, nil
	}
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return Mode0, &ErrInvalidMode{s}
}

func (m Mode) IsValid() bool { return m >= Mode0 && m <= Mode32 }

func (m Mode) String() string {
	if m.IsValid() {
		return modeNames[m]
	}
	return "MODE(invalid)"
}
