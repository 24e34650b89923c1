// Package env contains environment variables
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package env

// verbose logging (per-request), same as `log.verbose` in the configuration
const DEBUG = "CRYPTOSERVER_DEBUG"
