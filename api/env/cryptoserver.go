// Package env contains environment variables
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package env

// environment takes precedence over the (optional) configuration file
var (
	CryptoServer = struct {
		Mode        string
		SecretDir   string
		Bind        string
		Transport   string
		KeyHash     string
		MetricsBind string
		LogDir      string
		MaxConns    string
		MaxBodySize string
	}{
		Mode:        "CRYPTOSERVER_MODE",      // MODE0 | MODE16 | MODE32
		SecretDir:   "CRYPTOSERVER_SECRETDIR", // fully qualified
		Bind:        "CRYPTOSERVER_BIND",      // host:port
		Transport:   "CRYPTOSERVER_TRANSPORT", // nethttp | fasthttp
		KeyHash:     "CRYPTOSERVER_KEYHASH",   // murmur3 | xxh32
		MetricsBind: "CRYPTOSERVER_METRICS_BIND",
		LogDir:      "CRYPTOSERVER_LOG_DIR",
		MaxConns:    "CRYPTOSERVER_MAX_CONNS",
		MaxBodySize: "CRYPTOSERVER_MAX_BODY_SIZE", // e.g. "64MiB"
	}
)
