// Package hserv serves POST /hmac over net/http or fasthttp and supervises the serve loop
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package hserv_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/hserv"
	"github.com/NVIDIA/cryptoserver/sign"
	"github.com/NVIDIA/cryptoserver/stats"
	"github.com/NVIDIA/cryptoserver/tools/tassert"
)

func TestSuperviseRetries(t *testing.T) {
	var (
		ctx, cancel = context.WithCancel(context.Background())
		attempts    int
		started     = time.Now()
		pause       = 20 * time.Millisecond
	)
	defer cancel()
	serve := func(context.Context) error {
		attempts++
		if attempts == 4 {
			cancel()
		}
		return errors.New("bind: address already in use")
	}
	hserv.Supervise(ctx, "test", serve, pause)
	tassert.Errorf(t, attempts == 4, "expected 4 attempts, got %d", attempts)
	tassert.Errorf(t, time.Since(started) >= 3*pause, "expected fixed pause between attempts")
}

func TestSuperviseStopsDuringPause(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	started := time.Now()
	hserv.Supervise(ctx, "test", func(context.Context) error { return errors.New("fail") }, time.Hour)
	tassert.Errorf(t, time.Since(started) < time.Minute, "did not stop on cancel")
}

func TestListenAddrInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	tassert.CheckFatal(t, err)
	defer ln.Close()

	config := cmn.DefaultConfig()
	config.Net.Bind = ln.Addr().String()
	tracker := stats.NewTracker()
	handler := hserv.NewHandler(sign.NewSigner(nil, nil, nil), tracker, config)
	err = hserv.NewService(config, handler).ListenAndServe(context.Background())
	tassert.Fatalf(t, hserv.IsErrTransport(err), "expected transport error, got %v", err)

	var e *hserv.ErrTransport
	tassert.Fatalf(t, errors.As(err, &e), "%T", err)
	tassert.Errorf(t, e.Op == "listen" && e.Addr == config.Net.Bind, "%+v", e)
}
