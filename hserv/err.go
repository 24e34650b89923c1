// Package hserv serves POST /hmac over net/http or fasthttp and supervises the serve loop
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package hserv

import (
	"errors"
)

var errBodyTooLarge = errors.New("request body too large")

// ErrTransport: bind or serve failure at the network boundary;
// handled by Supervise and never by the request path.
type ErrTransport struct {
	cause error
	Op    string // "listen" | "serve"
	Addr  string
}

func newErrTransport(op, addr string, cause error) *ErrTransport {
	return &ErrTransport{cause: cause, Op: op, Addr: addr}
}

func (e *ErrTransport) Error() string {
	return "failed to " + e.Op + " on " + e.Addr + ": " + e.cause.Error()
}

func (e *ErrTransport) Unwrap() error { return e.cause }

func IsErrTransport(err error) bool {
	var e *ErrTransport
	return errors.As(err, &e)
}
