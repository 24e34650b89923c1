// Package stats registers, tracks, periodically logs, and exports (Prometheus)
// request and secret-store metrics
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package stats

import "time"

const namespace = "cryptoserver"

// internal names (periodic log); compare with Prometheus names in prom.go
const (
	errPrefix = "err."

	ReqCount      = "req.n"              // all requests on the service port
	SignCount     = "sign.n"             // 200s
	ErrReqCount   = errPrefix + "req.n"  // all 400s
	ErrSignCount  = errPrefix + "sign.n" // 400s due to secret store
	SecretReadLat = "secret.read.ns"     // average over the logging interval
	Inflight      = "inflight.n"
)

const (
	dfltLogInterval = time.Minute
	maxIdleLogs     = 10 // when idle, log every so many intervals
)

// secret reads: from page-cache hits (~µs) to cold network filesystems
var secretReadBuckets = []float64{
	0.000_005, 0.000_01, 0.000_025, 0.000_05, 0.000_1, 0.000_25, 0.000_5,
	0.001, 0.002_5, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25,
}
