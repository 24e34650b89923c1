// Package nlog - cryptoserver logger: buffering, timestamping, writing, flushing, and rotating
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"flag"
	"strconv"
)

var (
	MaxSize int64 = 4 * 1024 * 1024
)

func InitFlags(flset *flag.FlagSet) {
	flset.BoolFunc("logtostderr", "log to standard error instead of files", func(s string) error {
		v, err := strconv.ParseBool(s)
		toStderr.Store(v)
		return err
	})
	flset.BoolVar(&alsoToStderr, "alsologtostderr", false, "log to standard error as well as files")
}

func Infoln(args ...any)                  { log(sevInfo, "", args...) }
func Infof(format string, args ...any)    { log(sevInfo, format, args...) }
func Warningln(args ...any)               { log(sevWarn, "", args...) }
func Warningf(format string, args ...any) { log(sevWarn, format, args...) }
func Errorln(args ...any)                 { log(sevErr, "", args...) }
func Errorf(format string, args ...any)   { log(sevErr, format, args...) }

// must be called prior to the first log line
func SetLogDir(dir string) { logDir = dir }
func SetTitle(s string)    { title = s }
func SetToStderr(also, to bool) {
	alsoToStderr = also
	toStderr.Store(to)
}

func Flush() {
	for _, nlog := range nlogs {
		if nlog != nil {
			nlog.flush()
		}
	}
}

// Stop flushes and closes log files; subsequent logging goes to stderr
func Stop() {
	if !stopping.CompareAndSwap(false, true) {
		return
	}
	for _, nlog := range nlogs {
		if nlog != nil {
			nlog.close()
		}
	}
}
