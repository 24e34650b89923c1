// Package hserv serves POST /hmac over net/http or fasthttp and supervises the serve loop
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package hserv

import (
	"context"
	"time"

	"github.com/NVIDIA/cryptoserver/cmn/nlog"
)

// Supervise keeps calling serve until ctx is done, pausing for a fixed interval
// between attempts. No backoff growth, no circuit breaker.
func Supervise(ctx context.Context, name string, serve func(context.Context) error, pause time.Duration) {
	timer := time.NewTimer(pause)
	timer.Stop()
	defer timer.Stop()
	for attempt := 1; ; attempt++ {
		err := serve(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			nlog.Errorf("%s: attempt #%d failed: %v (retrying in %v)", name, attempt, err, pause)
		} else {
			nlog.Warningf("%s: attempt #%d exited (retrying in %v)", name, attempt, pause)
		}
		timer.Reset(pause)
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}
