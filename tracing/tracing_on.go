//go:build oteltracing

// Package tracing offers support for distributed tracing utilizing OpenTelemetry (OTEL).
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package tracing

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/NVIDIA/cryptoserver/cmn"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

const dfltServiceName = "cryptoserver"

var tp *trace.TracerProvider

// (tests substitute an in-memory exporter)
var newExporter = func(conf *cmn.TracingConf) (trace.SpanExporter, error) {
	options := []otlptracegrpc.Option{
		otlptracegrpc.WithEndpoint(conf.ExporterEndpoint),
		otlptracegrpc.WithRetry(otlptracegrpc.RetryConfig{Enabled: true}),
	}
	if conf.SkipVerify {
		options = append(options, otlptracegrpc.WithInsecure())
	}
	return otlptracegrpc.New(context.Background(), options...)
}

func newResource(conf *cmn.TracingConf, version string) *resource.Resource {
	serviceName := conf.ServiceName
	if serviceName == "" {
		serviceName = dfltServiceName
	}
	hostname, _ := os.Hostname()
	r, _ := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(
			attribute.String("service.name", serviceName),
			attribute.String("version", version),
			attribute.String("host", hostname),
		),
	)
	return r
}

func IsEnabled() bool { return tp != nil }

// Init is a no-op when tracing is disabled in the configuration.
func Init(conf *cmn.TracingConf, version string) error {
	if conf == nil || !conf.Enabled {
		return nil
	}
	if conf.ExporterEndpoint == "" {
		return errors.New("tracing: exporter endpoint is empty")
	}
	exp, err := newExporter(conf)
	if err != nil {
		return err
	}
	tp = trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(conf.SamplerProbability))),
		trace.WithBatcher(exp),
		trace.WithResource(newResource(conf, version)),
	)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		),
	)
	otel.SetTracerProvider(tp)
	return nil
}

// Shutdown flushes pending spans.
func Shutdown(ctx context.Context) error {
	if tp == nil {
		return nil
	}
	return tp.Shutdown(ctx)
}

func NewTraceableHandler(handler http.Handler, operation string) http.Handler {
	if !IsEnabled() {
		return handler
	}
	return otelhttp.NewHandler(handler, operation)
}
