//go:build !oteltracing

// Package tracing offers support for distributed tracing utilizing OpenTelemetry (OTEL).
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package tracing

import (
	"context"
	"net/http"

	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/cmn/nlog"
)

func IsEnabled() bool { return false }

func Init(conf *cmn.TracingConf, _ string) error {
	if conf != nil && conf.Enabled {
		nlog.Warningln("tracing is enabled in the configuration but the binary was built without 'oteltracing' tag")
	}
	return nil
}

func Shutdown(context.Context) error { return nil }

func NewTraceableHandler(handler http.Handler, _ string) http.Handler { return handler }
