// Package nlog - cryptoserver logger: buffering, timestamping, writing, flushing, and rotating
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const flushInterval = 5 * time.Second

var (
	host    = "unknown"
	sevText = [...]string{sevInfo: "INFO", sevWarn: "WARNING", sevErr: "ERROR"}
)

var (
	// info and error files (warnings go to both)
	nlogs [2]*nlog

	logDir string
	arg0   string
	title  string
	pid    int

	alsoToStderr bool

	onceInitFiles sync.Once
	toStderr      atomic.Bool
	stopping      atomic.Bool
)

func init() {
	pid = os.Getpid()
	arg0 = filepath.Base(os.Args[0])
	if h, err := os.Hostname(); err == nil {
		if before, _, ok := strings.Cut(h, "."); ok {
			h = before
		}
		host = h
	}
}

func initFiles() {
	if logDir == "" {
		logDir = filepath.Join(os.TempDir(), "cryptoserver-logs")
	}
	now := time.Now()
	for i, sev := range []severity{sevInfo, sevErr} {
		nlog := &nlog{tag: sevText[sev]}
		if err := nlog.rotate(now); err != nil {
			// fall back to stderr for the remainder of the process lifetime
			fmt.Fprintf(os.Stderr, "nlog: unable to create logs in %q: %v\n", logDir, err)
			toStderr.Store(true)
			return
		}
		nlogs[i] = nlog
	}
	go flusher()
}

func flusher() {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()
	for range ticker.C {
		if stopping.Load() {
			return
		}
		Flush()
	}
}

func sname() string {
	if arg0 == "" {
		return "cryptoserver"
	}
	return arg0
}

func logfname(tag string, t time.Time) (name, link string) {
	s := sname()
	name = fmt.Sprintf("%s.%s.%s.%02d%02d-%02d%02d%02d.%d",
		s, host, tag, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), pid)
	return name, s + "." + tag
}

func fcreate(tag string, t time.Time) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}
	name, link := logfname(tag, t)
	f, err := os.OpenFile(filepath.Join(logDir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return nil, err
	}
	// re-symlink (best effort)
	symlink := filepath.Join(logDir, link)
	os.Remove(symlink)
	os.Symlink(name, symlink)
	return f, nil
}
