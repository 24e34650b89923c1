// Package hserv serves POST /hmac over net/http or fasthttp and supervises the serve loop
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package hserv

import (
	"context"
	"net/http"

	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/stats"
)

const metricsPath = "/metrics"

// MetricsServer exports Prometheus metrics on a separate listener,
// so that the service port recognizes POST /hmac and nothing else.
type MetricsServer struct {
	conf *cmn.Config
	mux  *http.ServeMux
}

func NewMetricsServer(config *cmn.Config, tracker *stats.Tracker) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, tracker.Handler())
	return &MetricsServer{conf: config, mux: mux}
}

func (ms *MetricsServer) ListenAndServe(ctx context.Context) error {
	ln, err := listen(ms.conf.Metrics.Bind, 0)
	if err != nil {
		return err
	}
	return serve(ctx, newNetServer(ms.mux, &ms.conf.Net, "metrics"), ln)
}
