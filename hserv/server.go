// Package hserv serves POST /hmac over net/http or fasthttp and supervises the serve loop
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package hserv

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/NVIDIA/cryptoserver/api/apc"
	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/cmn/nlog"
	"github.com/NVIDIA/cryptoserver/tracing"

	"golang.org/x/net/netutil"
)

type (
	// net/http or fasthttp
	server interface {
		Serve(ln net.Listener) error
		Shutdown(ctx context.Context) error
		String() string
	}
	netServer struct {
		s    *http.Server
		name string
	}

	// Service runs the service port: one serve attempt per ListenAndServe call.
	Service struct {
		config  *cmn.Config
		handler *Handler
	}
)

// interface guard
var _ server = (*netServer)(nil)

func NewService(config *cmn.Config, handler *Handler) *Service {
	return &Service{config: config, handler: handler}
}

func (svc *Service) newServer() server {
	if svc.config.Net.Transport == apc.TransportFastHTTP {
		if tracing.IsEnabled() {
			nlog.Warningln("tracing is not supported with", apc.TransportFastHTTP, "- ignoring")
		}
		return newFastServer(svc.handler, svc.config)
	}
	handler := tracing.NewTraceableHandler(svc.handler, "hmac")
	return newNetServer(handler, &svc.config.Net, apc.TransportNetHTTP)
}

func newNetServer(handler http.Handler, conf *cmn.NetConf, name string) *netServer {
	return &netServer{
		s: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: conf.Timeout.ReadHeader.D(),
			ReadTimeout:       conf.Timeout.Read.D(),
			WriteTimeout:      conf.Timeout.Write.D(),
			IdleTimeout:       conf.Timeout.Idle.D(),
			// "OPTIONS *" must reach the handler (and get 400) like any other request
			DisableGeneralOptionsHandler: true,
		},
		name: name,
	}
}

func (ns *netServer) Serve(ln net.Listener) error { return ns.s.Serve(ln) }

func (ns *netServer) Shutdown(ctx context.Context) error { return ns.s.Shutdown(ctx) }

func (ns *netServer) String() string { return ns.name }

// ListenAndServe binds the configured address and serves until ctx is done (returns nil)
// or the transport fails (returns *ErrTransport).
func (svc *Service) ListenAndServe(ctx context.Context) error {
	ln, err := listen(svc.config.Net.Bind, svc.config.Net.MaxConns)
	if err != nil {
		return err
	}
	return svc.Serve(ctx, ln)
}

// Serve takes ownership of the listener.
func (svc *Service) Serve(ctx context.Context, ln net.Listener) error {
	return serve(ctx, svc.newServer(), ln)
}

func listen(addr string, maxConns int) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, newErrTransport("listen", addr, err)
	}
	if maxConns > 0 {
		ln = netutil.LimitListener(ln, maxConns)
	}
	return ln, nil
}

func serve(ctx context.Context, srv server, ln net.Listener) error {
	var (
		addr  = ln.Addr().String()
		errCh = make(chan error, 1)
	)
	nlog.Infof("%s: listening on %s", srv, addr)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			err = net.ErrClosed
		}
		return newErrTransport("serve", addr, err)
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), apc.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		nlog.Warningf("%s: shutdown on %s: %v", srv, addr, err)
	}
	<-errCh
	nlog.Infof("%s: stopped listening on %s", srv, addr)
	return nil
}
