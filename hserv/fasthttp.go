// Package hserv serves POST /hmac over net/http or fasthttp and supervises the serve loop
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package hserv

import (
	"context"
	"io"
	"net"
	"net/http"

	"github.com/NVIDIA/cryptoserver/api/apc"
	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/cmn/cos"
	"github.com/NVIDIA/cryptoserver/cmn/nlog"

	"github.com/valyala/fasthttp"
)

type (
	fastServer struct {
		s *fasthttp.Server
	}
	fastLogger struct{}
)

// interface guard
var _ server = (*fastServer)(nil)

func newFastServer(h *Handler, config *cmn.Config) *fastServer {
	conf := &config.Net
	s := &fasthttp.Server{
		Handler:      h.serveFast,
		ErrorHandler: fastError,
		Name:         "cryptoserver",
		ReadTimeout:  conf.Timeout.Read.D(),
		WriteTimeout: conf.Timeout.Write.D(),
		IdleTimeout:  conf.Timeout.Idle.D(),
		// the body is consumed by the handler, and only after method and path checks
		StreamRequestBody:  true,
		MaxRequestBodySize: int(h.maxBody),
		Logger:             fastLogger{},

		NoDefaultServerHeader: true,
		NoDefaultContentType:  true,
	}
	return &fastServer{s: s}
}

func (fs *fastServer) Serve(ln net.Listener) error { return fs.s.Serve(ln) }

func (fs *fastServer) Shutdown(ctx context.Context) error { return fs.s.ShutdownWithContext(ctx) }

func (*fastServer) String() string { return apc.TransportFastHTTP }

func (h *Handler) serveFast(ctx *fasthttp.RequestCtx) {
	status, digest := h.handle(string(ctx.Method()), string(ctx.URI().PathOriginal()), func() ([]byte, error) {
		if r := ctx.RequestBodyStream(); r != nil {
			b, err := io.ReadAll(io.LimitReader(r, h.maxBody+1))
			if err == nil && int64(len(b)) > h.maxBody {
				err = errBodyTooLarge
			}
			return b, err
		}
		b := ctx.PostBody()
		if int64(len(b)) > h.maxBody {
			return nil, errBodyTooLarge
		}
		return b, nil
	})
	ctx.SetStatusCode(status)
	if status == http.StatusOK {
		ctx.SetContentType(cos.ContentBinary)
		ctx.SetBody(digest[:])
	}
}

// errors that occur before the handler is called (e.g., malformed request, body too large)
// are still 400 with an empty body
func fastError(ctx *fasthttp.RequestCtx, err error) {
	nlog.Warningf("%s: %v", ctx.RemoteAddr(), err)
	ctx.Response.Reset()
	ctx.SetStatusCode(http.StatusBadRequest)
	ctx.SetConnectionClose()
}

func (fastLogger) Printf(format string, args ...any) { nlog.Warningf(format, args...) }
