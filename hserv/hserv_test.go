// Package hserv serves POST /hmac over net/http or fasthttp and supervises the serve loop
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package hserv_test

import (
	"bufio"
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/NVIDIA/cryptoserver/api/apc"
	"github.com/NVIDIA/cryptoserver/cmn"
	"github.com/NVIDIA/cryptoserver/cmn/cos"
	"github.com/NVIDIA/cryptoserver/hserv"
	"github.com/NVIDIA/cryptoserver/secret"
	"github.com/NVIDIA/cryptoserver/sign"
	"github.com/NVIDIA/cryptoserver/stats"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func hmacOf(key, msg []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}

var _ = Describe("Service", func() {
	for _, transport := range []string{apc.TransportNetHTTP, apc.TransportFastHTTP} {
		Describe(transport, func() {
			var (
				dir     string
				key     []byte
				url     string
				client  *http.Client
				tracker *stats.Tracker
				cancel  context.CancelFunc
				done    chan error
			)

			start := func(mode cmn.Mode) {
				config := cmn.DefaultConfig()
				config.Mode = mode
				config.SecretDir = dir
				config.Net.Transport = transport
				config.Net.MaxBodySize = 4 * cos.KiB

				tracker = stats.NewTracker()
				signer := sign.NewSigner(secret.NewStore(mode, dir), nil, tracker)
				svc := hserv.NewService(config, hserv.NewHandler(signer, tracker, config))

				ln, err := net.Listen("tcp", "127.0.0.1:0")
				Expect(err).NotTo(HaveOccurred())
				url = "http://" + ln.Addr().String()

				var ctx context.Context
				ctx, cancel = context.WithCancel(context.Background())
				done = make(chan error, 1)
				go func() { done <- svc.Serve(ctx, ln) }()
			}

			do := func(method, path string, body []byte) (int, []byte) {
				req, err := http.NewRequest(method, url+path, bytes.NewReader(body))
				Expect(err).NotTo(HaveOccurred())
				resp, err := client.Do(req)
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				b, err := io.ReadAll(resp.Body)
				Expect(err).NotTo(HaveOccurred())
				return resp.StatusCode, b
			}

			BeforeEach(func() {
				dir = GinkgoT().TempDir()
				key = bytes.Repeat([]byte{0x11}, secret.SecretSize)
				Expect(os.WriteFile(filepath.Join(dir, secret.FnameMode0), key, 0o600)).To(Succeed())
				client = &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
			})

			AfterEach(func() {
				cancel()
				Eventually(done).Should(Receive(BeNil()))
			})

			It("should sign the payload with the selected secret", func() {
				start(cmn.Mode0)
				status, body := do(http.MethodPost, apc.URLPathHMAC, []byte("hello"))
				Expect(status).To(Equal(http.StatusOK))
				Expect(body).To(HaveLen(apc.DigestSize))
				Expect(body).To(Equal(hmacOf(key, []byte("hello"))))

				// deterministic
				_, again := do(http.MethodPost, apc.URLPathHMAC, []byte("hello"))
				Expect(again).To(Equal(body))
			})

			It("should reject other methods, paths, and empty bodies with 400 and no body", func() {
				start(cmn.Mode0)
				for _, tc := range []struct {
					method, path string
					body         []byte
				}{
					{http.MethodGet, apc.URLPathHMAC, []byte("hello")},
					{http.MethodPut, apc.URLPathHMAC, []byte("hello")},
					{http.MethodPost, "/other", []byte("hello")},
					{http.MethodPost, "/hmac/", []byte("hello")},
					{http.MethodPost, "/", []byte("hello")},
					{http.MethodPost, apc.URLPathHMAC, nil},
				} {
					status, body := do(tc.method, tc.path, tc.body)
					Expect(status).To(Equal(http.StatusBadRequest), "%s %s", tc.method, tc.path)
					Expect(body).To(BeEmpty(), "%s %s", tc.method, tc.path)
				}
				snap := tracker.Snapshot()
				Expect(snap[stats.ErrReqCount]).To(BeEquivalentTo(6))
				Expect(snap[stats.ErrSignCount]).To(BeZero())
			})

			It("should answer the asterisk-form OPTIONS request with 400", func() {
				start(cmn.Mode0)
				conn, err := net.Dial("tcp", url[len("http://"):])
				Expect(err).NotTo(HaveOccurred())
				defer conn.Close()
				_, err = io.WriteString(conn, "OPTIONS * HTTP/1.1\r\nHost: localhost\r\nConnection: close\r\n\r\n")
				Expect(err).NotTo(HaveOccurred())

				resp, err := http.ReadResponse(bufio.NewReader(conn), nil)
				Expect(err).NotTo(HaveOccurred())
				defer resp.Body.Close()
				b, err := io.ReadAll(resp.Body)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(b).To(BeEmpty())
				Expect(resp.Header.Get(cos.HdrContentLength)).To(Equal("0"))
			})

			It("should reject oversized bodies with 400", func() {
				start(cmn.Mode0)
				status, body := do(http.MethodPost, apc.URLPathHMAC, bytes.Repeat([]byte("x"), 8*cos.KiB))
				Expect(status).To(Equal(http.StatusBadRequest))
				Expect(body).To(BeEmpty())

				status, _ = do(http.MethodPost, apc.URLPathHMAC, bytes.Repeat([]byte("x"), 4*cos.KiB))
				Expect(status).To(Equal(http.StatusOK))
			})

			It("should return 400 (and keep serving) when the secret file disappears", func() {
				sec := bytes.Repeat([]byte{0x42}, secret.SecretSize)
				f, err := os.Create(filepath.Join(dir, secret.FnameMode16))
				Expect(err).NotTo(HaveOccurred())
				Expect(f.Truncate(secret.KeyspaceFileSize)).To(Succeed())
				loc := secret.Locate(cmn.Mode16, sign.DeriveKeyID([]byte("hello")))
				_, err = f.WriteAt(sec, loc.Off)
				Expect(err).NotTo(HaveOccurred())
				Expect(f.Close()).To(Succeed())

				Expect(secret.Validate(context.Background(), cmn.Mode16, dir)).To(Succeed())
				start(cmn.Mode16)

				status, body := do(http.MethodPost, apc.URLPathHMAC, []byte("hello"))
				Expect(status).To(Equal(http.StatusOK))
				Expect(body).To(Equal(hmacOf(sec, []byte("hello"))))

				Expect(os.Remove(filepath.Join(dir, secret.FnameMode16))).To(Succeed())
				status, body = do(http.MethodPost, apc.URLPathHMAC, []byte("hello"))
				Expect(status).To(Equal(http.StatusBadRequest))
				Expect(body).To(BeEmpty())
				Expect(tracker.Snapshot()[stats.ErrSignCount]).To(BeEquivalentTo(1))
			})
		})
	}
})
