// Package cos provides common low-level types and utilities
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"fmt"
	"os"

	"github.com/NVIDIA/cryptoserver/cmn/nlog"
)

//////////////////////////
// Abnormal Termination //
//////////////////////////

const fatalPrefix = "FATAL ERROR: "

// Exitf writes formatted message to STDERR and exits with non-zero status code.
func Exitf(f string, a ...any) {
	fmt.Fprintf(os.Stderr, fatalPrefix+f+"\n", a...)
	os.Exit(1)
}

// ExitLogf is `Exitf` with logging; use it once nlog is initialized.
func ExitLogf(f string, a ...any) {
	nlog.Errorf(fatalPrefix+f, a...) // (errors are mirrored to stderr)
	nlog.Stop()
	os.Exit(1)
}
