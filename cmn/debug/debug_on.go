//go:build debug

// Package debug provides debug utilities
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

import (
	"fmt"
	"os"
	"runtime"
)

func ON() bool { return true }

func Assert(cond bool, a ...any) {
	if !cond {
		msg := "DEBUG PANIC"
		if len(a) > 0 {
			msg += ": " + fmt.Sprint(a...)
		}
		_panic(msg)
	}
}

func Assertf(cond bool, f string, a ...any) {
	if !cond {
		_panic("DEBUG PANIC: " + fmt.Sprintf(f, a...))
	}
}

func _panic(msg string) {
	var buf [4096]byte
	n := runtime.Stack(buf[:], false)
	os.Stderr.WriteString(msg + "\n")
	os.Stderr.Write(buf[:n])
	panic(msg)
}
