// Package nlog - cryptoserver logger: buffering, timestamping, writing, flushing, and rotating
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	nlogBufSize  = 64 * 1024
	nlogLineSize = 4 * 1024
)

type severity int

const (
	sevInfo severity = iota
	sevWarn
	sevErr
)

type nlog struct {
	file *os.File
	bw   *bufio.Writer
	tag  string
	size int64
	mw   sync.Mutex
}

var pool = sync.Pool{
	New: func() any {
		return &fixed{buf: make([]byte, nlogLineSize)}
	},
}

// main function
func log(sev severity, format string, args ...any) {
	if !toStderr.Load() && !stopping.Load() {
		onceInitFiles.Do(initFiles)
	}
	fb := pool.Get().(*fixed)
	fb.reset()
	sprintf(sev, format, fb, args...)
	line := fb.buf[:fb.woff]

	switch {
	case toStderr.Load() || stopping.Load():
		os.Stderr.Write(line)
	default:
		nlogs[0].write(line)
		if sev >= sevWarn {
			nlogs[1].write(line)
		}
		if alsoToStderr || sev >= sevErr {
			os.Stderr.Write(line)
		}
	}
	pool.Put(fb)
}

func (nlog *nlog) write(line []byte) {
	nlog.mw.Lock()
	if nlog.bw == nil { // closed
		nlog.mw.Unlock()
		os.Stderr.Write(line)
		return
	}
	n, err := nlog.bw.Write(line)
	if err != nil {
		os.Stderr.WriteString("nlog: " + err.Error() + "\n")
	}
	nlog.size += int64(n)
	if nlog.size >= MaxSize {
		if err := nlog.rotate(time.Now()); err != nil {
			os.Stderr.WriteString("nlog: failed to rotate: " + err.Error() + "\n")
		}
	}
	nlog.mw.Unlock()
}

func (nlog *nlog) flush() {
	nlog.mw.Lock()
	if nlog.bw != nil {
		nlog.bw.Flush()
	}
	nlog.mw.Unlock()
}

func (nlog *nlog) close() {
	nlog.mw.Lock()
	if nlog.bw != nil {
		nlog.bw.Flush()
		nlog.file.Close()
		nlog.bw, nlog.file = nil, nil
	}
	nlog.mw.Unlock()
}

// under mw-lock (or at init time)
func (nlog *nlog) rotate(now time.Time) error {
	if nlog.bw != nil {
		nlog.bw.Flush()
		nlog.file.Close()
	}
	file, err := fcreate(nlog.tag, now)
	if err != nil {
		return err
	}
	nlog.file, nlog.size = file, 0
	nlog.bw = bufio.NewWriterSize(file, nlogBufSize)

	hdr := fmt.Sprintf("Started up at %s, host %s, %s for %s/%s\n",
		now.Format("2006/01/02 15:04:05"), host, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	nlog.bw.WriteString(hdr)
	if title != "" {
		nlog.bw.WriteString(title)
		if !strings.HasSuffix(title, "\n") {
			nlog.bw.WriteByte('\n')
		}
	}
	return nil
}

//
// formatting
//

// e.g.: "E 15:04:05.000123 hserv:97 message"
func formatHdr(s severity, fb *fixed) {
	const char = "IWE"
	fb.writeByte(char[s])
	fb.writeByte(' ')
	fb.writeStamp()
	fb.writeByte(' ')

	// log -> Infof et al. -> caller
	_, fn, ln, ok := runtime.Caller(4)
	if !ok {
		return
	}
	fn = filepath.Base(fn)
	fn = strings.TrimSuffix(fn, ".go")
	fb.writeString(fn)
	fb.writeByte(':')
	fb.writeString(strconv.Itoa(ln))
	fb.writeByte(' ')
}

func sprintf(sev severity, format string, fb *fixed, args ...any) {
	formatHdr(sev, fb)
	if format == "" {
		fmt.Fprintln(fb, args...)
	} else {
		fmt.Fprintf(fb, format, args...)
	}
	fb.eol()
}
