// Package cos provides common low-level types and utilities
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"os"
	"strconv"
	"strings"
)

// GetEnvOrDefault returns the value of the environment variable if it exists,
// otherwise it returns the provided default value.
func GetEnvOrDefault(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	return defaultValue
}

// IsParseEnvBoolOrDefault parses a boolean from the environment variable string
// or returns the default value if the variable is not set.
func IsParseEnvBoolOrDefault(envVar string, defaultValue bool) (bool, error) {
	if value := os.Getenv(envVar); value != "" {
		return ParseBool(value)
	}
	return defaultValue, nil
}

// ParseBool converts string to bool (case-insensitive):
//
//	y, yes, on -> true
//	n, no, off, <empty value> -> false
//
// strconv handles the rest.
func ParseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	s = strings.ToLower(s)
	switch s {
	case "y", "yes", "on":
		return true, nil
	case "n", "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}
