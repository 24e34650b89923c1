//go:build oteltracing

// Package tracing offers support for distributed tracing utilizing OpenTelemetry (OTEL).
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/NVIDIA/cryptoserver/cmn"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var _ = Describe("Tracing", func() {
	const version = "v1.2.3"

	var (
		exporter *tracetest.InMemoryExporter

		origExporter = newExporter

		testHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("-"))
		})

		expectResourceAttrs = func(attrs []attribute.KeyValue) {
			expected := map[string]string{
				"service.name": "cryptoserver-test",
				"version":      version,
			}
			matched := 0
			for _, attr := range attrs {
				value, ok := expected[string(attr.Key)]
				if !ok {
					continue
				}
				Expect(attr.Value.AsString()).To(Equal(value))
				matched++
			}
			Expect(matched).To(Equal(len(expected)))
		}
	)

	BeforeEach(func() {
		exporter = tracetest.NewInMemoryExporter()
		newExporter = func(*cmn.TracingConf) (trace.SpanExporter, error) {
			return exporter, nil
		}
	})

	AfterEach(func() {
		Expect(Shutdown(context.Background())).To(Succeed())
		tp = nil
		newExporter = origExporter
	})

	It("should export server spans when tracing is enabled", func() {
		err := Init(&cmn.TracingConf{
			ExporterEndpoint:   "dummy",
			ServiceName:        "cryptoserver-test",
			Enabled:            true,
			SamplerProbability: 1.0,
		}, version)
		Expect(err).NotTo(HaveOccurred())
		Expect(IsEnabled()).To(BeTrue())

		server := httptest.NewServer(NewTraceableHandler(testHandler, "hmac"))
		defer server.Close()

		resp, err := http.Post(server.URL+"/hmac", "application/octet-stream", nil)
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()

		Expect(tp.ForceFlush(context.Background())).To(Succeed())
		Expect(exporter.GetSpans()).To(HaveLen(1))
		expectResourceAttrs(exporter.GetSpans()[0].Resource.Attributes())
	})

	It("should do nothing when tracing is disabled", func() {
		Expect(Init(&cmn.TracingConf{Enabled: false}, version)).To(Succeed())
		Expect(IsEnabled()).To(BeFalse())

		server := httptest.NewServer(NewTraceableHandler(testHandler, "hmac"))
		defer server.Close()

		resp, err := http.Get(server.URL)
		Expect(err).NotTo(HaveOccurred())
		resp.Body.Close()
		Expect(exporter.GetSpans()).To(BeEmpty())
	})

	It("should fail without exporter endpoint", func() {
		err := Init(&cmn.TracingConf{Enabled: true}, version)
		Expect(err).To(HaveOccurred())
		Expect(IsEnabled()).To(BeFalse())
	})
})
