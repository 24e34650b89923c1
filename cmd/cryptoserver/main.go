// Package main - HMAC-SHA256 signing service over a sharded, file-backed secret store
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/NVIDIA/cryptoserver/api/apc"
	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/cmn/cos"
	"github.com/NVIDIA/cryptoserver/cmn/debug"
	"github.com/NVIDIA/cryptoserver/cmn/nlog"
	"github.com/NVIDIA/cryptoserver/hserv"
	"github.com/NVIDIA/cryptoserver/secret"
	"github.com/NVIDIA/cryptoserver/sign"
	"github.com/NVIDIA/cryptoserver/stats"
	"github.com/NVIDIA/cryptoserver/tracing"
)

const svcName = "cryptoserver"

var (
	version = "1.0"
	build   string
)

var (
	configPath  string
	showVersion bool
)

func initFlags(flset *flag.FlagSet) {
	flset.StringVar(&configPath, "config", "",
		"configuration file (.json, .yaml); environment variables take precedence")
	flset.BoolVar(&showVersion, "version", false, "print version and exit")
	nlog.InitFlags(flset)
}

func initLog(config *cmn.Config) {
	if config.Log.Dir != "" {
		if err := os.MkdirAll(config.Log.Dir, 0o755); err != nil {
			cos.Exitf("failed to create log dir %q: %v", config.Log.Dir, err)
		}
		nlog.SetLogDir(config.Log.Dir)
	}
	if config.Log.ToStderr {
		nlog.SetToStderr(false, true)
	}
	nlog.SetTitle(svcName + " " + version + " (build " + build + ")")
}

func main() {
	flset := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	initFlags(flset)
	flset.Parse(os.Args[1:])
	if showVersion {
		fmt.Printf("version: %s | build: %s\n", version, build)
		return
	}

	config, err := cmn.LoadConfig(configPath)
	if err != nil {
		cos.Exitf("failed to load configuration: %v", err)
	}
	initLog(config)
	nlog.Infof("%s version %s (build %s): %s", svcName, version, build, config)
	if debug.ON() {
		nlog.Warningln("debug build: assertions enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// secret layout must match the mode - otherwise, do not start
	if err := secret.Validate(ctx, config.Mode, config.SecretDir); err != nil {
		if secret.IsErrBadLayout(err) {
			if layout, errV := secret.Inspect(config.SecretDir); errV == nil {
				nlog.Errorln("secret directory:", layout.String())
			}
		}
		cos.ExitLogf("%v", err)
	}
	keyHash, err := sign.ParseKeyHash(config.KeyHash)
	if err != nil {
		cos.ExitLogf("%v", err)
	}
	if err := tracing.Init(&config.Tracing, version); err != nil {
		cos.ExitLogf("failed to initialize tracing: %v", err)
	}

	var (
		tracker = stats.NewTracker()
		store   = secret.NewStore(config.Mode, config.SecretDir)
		signer  = sign.NewSigner(store, keyHash, tracker)
		svc     = hserv.NewService(config, hserv.NewHandler(signer, tracker, config))
		pause   = config.Supervisor.RetryPause.D()
		wg      sync.WaitGroup
	)
	nlog.Infoln(store.String())

	wg.Add(1)
	go func() {
		tracker.Run(ctx, 0)
		wg.Done()
	}()
	if config.Metrics.Bind != "" {
		ms := hserv.NewMetricsServer(config, tracker)
		wg.Add(1)
		go func() {
			hserv.Supervise(ctx, "metrics", ms.ListenAndServe, pause)
			wg.Done()
		}()
	}

	hserv.Supervise(ctx, svcName, svc.ListenAndServe, pause)

	wg.Wait()
	sctx, cancel := context.WithTimeout(context.Background(), apc.ShutdownTimeout)
	if err := tracing.Shutdown(sctx); err != nil {
		nlog.Warningln("tracing shutdown:", err)
	}
	cancel()
	nlog.Infoln(svcName, "stopped")
	nlog.Stop()
}
