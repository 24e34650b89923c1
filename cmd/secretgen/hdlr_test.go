// Package main - secretgen: generate, validate, and inspect cryptoserver secret directories
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NVIDIA/cryptoserver/tools/tassert"

	jsoniter "github.com/json-iterator/go"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var (
		out bytes.Buffer
		app = newApp(&out)
	)
	app.ErrWriter = &out
	err := app.Run(append([]string{appName}, args...))
	return out.String(), err
}

func TestGenValidateInspect(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "secrets")

	out, err := run(t, cmdGen, "--mode", "MODE16", "--dir", dir)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, strings.Contains(out, "generated 1 file"), "%s", out)

	_, err = run(t, cmdValidate, "--mode", "MODE16", "--dir", dir)
	tassert.CheckError(t, err)

	_, err = run(t, cmdValidate, "--mode", "MODE0", "--dir", dir)
	tassert.Errorf(t, err != nil, "expected MODE0 validation to fail")

	out, err = run(t, cmdInspect, "--dir", dir, "--json")
	tassert.CheckFatal(t, err)
	var parsed struct {
		Modes  []string `json:"modes"`
		Shards int      `json:"shards"`
	}
	tassert.CheckFatal(t, jsoniter.Unmarshal([]byte(out), &parsed))
	tassert.Errorf(t, parsed.Shards == 1, "%s", out)
	tassert.Errorf(t, len(parsed.Modes) == 1 && parsed.Modes[0] == "MODE16", "%s", out)
}

func TestGenInvalidMode(t *testing.T) {
	_, err := run(t, cmdGen, "--mode", "MODE64", "--dir", t.TempDir())
	tassert.Errorf(t, err != nil, "expected invalid-mode error")
}

func TestKeyID(t *testing.T) {
	out, err := run(t, cmdKeyID, "hello")
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, strings.Contains(out, "0x248bfa47"), "%s", out)
	tassert.Errorf(t, strings.Contains(out, "file:   secret"), "%s", out)

	out, err = run(t, cmdKeyID, "--mode", "MODE32", "hello")
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, strings.Contains(out, "file:   248b"), "%s", out)
	tassert.Errorf(t, strings.Contains(out, "offset: 2050272"), "%s", out) // 0xfa47 * 32

	fqn := filepath.Join(t.TempDir(), "payload")
	tassert.CheckFatal(t, os.WriteFile(fqn, []byte("hello"), 0o600))
	out, err = run(t, cmdKeyID, "--mode", "MODE16", "@"+fqn)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, strings.Contains(out, "0x248bfa47") && strings.Contains(out, "file:   0000"), "%s", out)

	_, err = run(t, cmdKeyID)
	tassert.Errorf(t, err != nil, "expected missing-argument error")
}
