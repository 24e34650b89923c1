// Package cos provides common low-level types and utilities
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

// Ref: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers
const (
	HdrContentType   = "Content-Type"
	HdrContentLength = "Content-Length"
)

// Ref: https://www.iana.org/assignments/media-types/media-types.xhtml
const ContentBinary = "application/octet-stream"
