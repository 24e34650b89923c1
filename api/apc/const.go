// Package apc: API constants shared by the signing service and its clients
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

import "time"

// the one and only endpoint
const (
	URLPathHMAC = "/hmac"
	MethodHMAC  = "POST"
)

// HMAC-SHA256
const DigestSize = 32

const (
	DefaultBind      = "0.0.0.0:8080"
	DefaultSecretDir = "/secrets"
)

// in re: "Slowloris Attack"
const (
	ReadHeaderTimeout = 10 * time.Second
	ReadTimeout       = 30 * time.Second
	WriteTimeout      = 30 * time.Second
	IdleTimeout       = 2 * time.Minute

	// bounded drain upon SIGINT/SIGTERM
	ShutdownTimeout = 10 * time.Second

	// supervisor: fixed pause between serve attempts
	RetryPause = time.Second
)

// transports
const (
	TransportNetHTTP  = "nethttp"
	TransportFastHTTP = "fasthttp"
)

// key-id hash functions (non-cryptographic; see sign.DeriveKeyID)
const (
	KeyHashMurmur3 = "murmur3" // default
	KeyHashXXH32   = "xxh32"
)
