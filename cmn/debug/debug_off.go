//go:build !debug

// Package debug provides debug utilities
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

func ON() bool { return false }

func Assert(bool, ...any)          {}
func Assertf(bool, string, ...any) {}
