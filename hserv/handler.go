// Package hserv serves POST /hmac over net/http or fasthttp and supervises the serve loop
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package hserv

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/NVIDIA/cryptoserver/api/apc"
	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/cmn/cos"
	"github.com/NVIDIA/cryptoserver/cmn/nlog"
	"github.com/NVIDIA/cryptoserver/sign"
	"github.com/NVIDIA/cryptoserver/stats"
)

type (
	// implemented by sign.Signer
	Signer interface {
		Sign(payload []byte) (sign.Digest, error)
	}

	// Handler is the transport-agnostic request pipeline; both front-ends
	// (net/http and fasthttp) reduce a request to (method, path, body).
	Handler struct {
		signer  Signer
		tracker *stats.Tracker
		maxBody int64
		verbose bool
	}

	// called at most once, and only after the method and path checks pass
	bodyReader func() ([]byte, error)
)

// interface guard
var _ http.Handler = (*Handler)(nil)

// max_body_size = 0: unlimited
const unlimitedBody = 1 << 62

func NewHandler(signer Signer, tracker *stats.Tracker, config *cmn.Config) *Handler {
	h := &Handler{
		signer:  signer,
		tracker: tracker,
		maxBody: int64(config.Net.MaxBodySize),
		verbose: config.Log.Verbose,
	}
	if h.maxBody <= 0 {
		h.maxBody = unlimitedBody
	}
	return h
}

// handle returns (200, digest) or (400, zero digest); terminal on the first failed check.
// Internal failures are logged server-side only.
func (h *Handler) handle(method, path string, readBody bodyReader) (status int, digest sign.Digest) {
	h.tracker.IncInflight()
	status, digest = h._handle(method, path, readBody)
	h.tracker.DecInflight()
	h.tracker.IncRequest(status)
	return status, digest
}

func (h *Handler) _handle(method, path string, readBody bodyReader) (int, sign.Digest) {
	var digest sign.Digest
	if method != apc.MethodHMAC {
		h.reject("method %s not allowed", method)
		return http.StatusBadRequest, digest
	}
	if path != apc.URLPathHMAC {
		h.reject("path %q not found", path)
		return http.StatusBadRequest, digest
	}
	body, err := readBody()
	if err != nil {
		h.reject("failed to read body: %v", err)
		return http.StatusBadRequest, digest
	}
	if len(body) == 0 {
		h.reject("empty body")
		return http.StatusBadRequest, digest
	}
	digest, err = h.signer.Sign(body)
	if err != nil {
		h.tracker.IncSignError()
		nlog.Errorf("[%s] %v", cmn.GenReqID(), err)
		return http.StatusBadRequest, digest
	}
	if h.verbose {
		nlog.Infof("signed %d bytes", len(body))
	}
	return http.StatusOK, digest
}

// client errors are expected (and can be plentiful) - log only when verbose
func (h *Handler) reject(format string, a ...any) {
	if h.verbose {
		nlog.Warningf("["+cmn.GenReqID()+"] bad request: "+format, a...)
	}
}

//
// net/http front-end
//

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, digest := h.handle(r.Method, r.URL.EscapedPath(), func() ([]byte, error) {
		b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return nil, errBodyTooLarge
			}
		}
		return b, err
	})
	if status != http.StatusOK {
		w.Header().Set(cos.HdrContentLength, "0")
		w.WriteHeader(status)
		return
	}
	hdr := w.Header()
	hdr.Set(cos.HdrContentType, cos.ContentBinary)
	hdr.Set(cos.HdrContentLength, strconv.Itoa(apc.DigestSize))
	w.WriteHeader(status)
	w.Write(digest[:])
}
