// Package stats registers, tracks, periodically logs, and exports (Prometheus)
// request and secret-store metrics
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package stats

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	ratomic "sync/atomic"
	"time"

	"github.com/NVIDIA/cryptoserver/cmn/nlog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type (
	// Tracker is safe for concurrent use; it keeps its own registry
	// (never the global default) so that tests can run in parallel.
	Tracker struct {
		reg        *prometheus.Registry
		requests   *prometheus.CounterVec
		signErrs   prometheus.Counter
		secretRead prometheus.Histogram
		inflight   prometheus.Gauge

		vals  [numVals]int64 // in-process copies for the periodic log
		nlat  int64          // secret reads in the current interval
		sumNs int64          // ditto, cumulative latency
	}
	Snapshot map[string]int64
)

const (
	iReq = iota
	iSign
	iErrReq
	iErrSign
	iInflight
	numVals
)

var valNames = [numVals]string{ReqCount, SignCount, ErrReqCount, ErrSignCount, Inflight}

func NewTracker() *Tracker {
	t := &Tracker{reg: prometheus.NewRegistry()}
	t.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "total number of requests on the service port, by status code",
	}, []string{"code"})
	t.signErrs = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sign_errors_total",
		Help:      "total number of well-formed requests that failed to read the secret",
	})
	t.secretRead = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "secret_read_seconds",
		Help:      "secret-store read latency (seconds)",
		Buckets:   secretReadBuckets,
	})
	t.inflight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inflight_requests",
		Help:      "number of requests currently being served",
	})
	t.reg.MustRegister(
		t.requests, t.signErrs, t.secretRead, t.inflight,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return t
}

func (t *Tracker) Registry() *prometheus.Registry { return t.reg }

// Handler exports the registry; served on the (optional) metrics listener only.
func (t *Tracker) Handler() http.Handler {
	return promhttp.HandlerFor(t.reg, promhttp.HandlerOpts{ErrorLog: promLogger{}})
}

func (t *Tracker) IncInflight() {
	ratomic.AddInt64(&t.vals[iInflight], 1)
	t.inflight.Inc()
}

func (t *Tracker) DecInflight() {
	ratomic.AddInt64(&t.vals[iInflight], -1)
	t.inflight.Dec()
}

// IncRequest counts a completed request by its status code.
func (t *Tracker) IncRequest(code int) {
	ratomic.AddInt64(&t.vals[iReq], 1)
	switch code {
	case http.StatusOK:
		ratomic.AddInt64(&t.vals[iSign], 1)
	case http.StatusBadRequest:
		ratomic.AddInt64(&t.vals[iErrReq], 1)
	}
	t.requests.WithLabelValues(strconv.Itoa(code)).Inc()
}

// IncSignError is in addition to IncRequest(400).
func (t *Tracker) IncSignError() {
	ratomic.AddInt64(&t.vals[iErrSign], 1)
	t.signErrs.Inc()
}

// ObserveSecretRead implements sign.Observer.
func (t *Tracker) ObserveSecretRead(d time.Duration) {
	ratomic.AddInt64(&t.nlat, 1)
	ratomic.AddInt64(&t.sumNs, int64(d))
	t.secretRead.Observe(d.Seconds())
}

// Snapshot returns current values; SecretReadLat is the average since the last Snapshot.
func (t *Tracker) Snapshot() Snapshot {
	snap := make(Snapshot, numVals+1)
	for i, name := range valNames {
		snap[name] = ratomic.LoadInt64(&t.vals[i])
	}
	snap[SecretReadLat] = 0
	if n := ratomic.SwapInt64(&t.nlat, 0); n > 0 {
		snap[SecretReadLat] = ratomic.SwapInt64(&t.sumNs, 0) / n
	}
	return snap
}

func (snap Snapshot) String() string {
	return fmt.Sprintf("%s=%d, %s=%d, %s=%d, %s=%d, %s=%d, %s=%v",
		ReqCount, snap[ReqCount], SignCount, snap[SignCount], ErrReqCount, snap[ErrReqCount],
		ErrSignCount, snap[ErrSignCount], Inflight, snap[Inflight],
		SecretReadLat, time.Duration(snap[SecretReadLat]))
}

// Run logs a one-line summary every interval until ctx is done;
// when idle, only every maxIdleLogs intervals.
func (t *Tracker) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = dfltLogInterval
	}
	var (
		ticker = time.NewTicker(interval)
		prev   int64
		idle   int
	)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			nlog.Infoln("stats:", t.Snapshot().String())
			return
		case <-ticker.C:
			snap := t.Snapshot()
			if snap[ReqCount] == prev && snap[Inflight] == 0 {
				if idle++; idle < maxIdleLogs {
					continue
				}
			}
			idle, prev = 0, snap[ReqCount]
			nlog.Infoln("stats:", snap.String())
		}
	}
}

type promLogger struct{}

func (promLogger) Println(v ...any) { nlog.Errorln(v...) }
