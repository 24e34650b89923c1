// Package cos provides common low-level types and utilities
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos_test

import (
	"testing"
	"time"

	"github.com/NVIDIA/cryptoserver/cmn/cos"
	"github.com/NVIDIA/cryptoserver/tools/tassert"

	jsoniter "github.com/json-iterator/go"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in  string
		out int64
		err bool
	}{
		{"", 0, false},
		{"0", 0, false},
		{"100", 100, false},
		{"100B", 100, false},
		{"4K", 4096, false},
		{"4KiB", 4096, false},
		{"64mib", 64 * cos.MiB, false},
		{" 1 GiB ", cos.GiB, false},
		{"1.5M", 3 * cos.MiB / 2, false},
		{"-1", 0, true},
		{"ten", 0, true},
		{"4KB", 0, true},
	}
	for _, test := range tests {
		n, err := cos.ParseSize(test.in)
		if test.err {
			tassert.Errorf(t, err != nil, "%q: expected error, got %d", test.in, n)
			continue
		}
		tassert.CheckError(t, err)
		tassert.Errorf(t, n == test.out, "%q: expected %d, got %d", test.in, test.out, n)
	}
}

func TestSizeDurationJSON(t *testing.T) {
	var v struct {
		Size cos.SizeIEC  `json:"size"`
		Num  cos.SizeIEC  `json:"num"`
		Dur  cos.Duration `json:"dur"`
	}
	err := jsoniter.Unmarshal([]byte(`{"size": "64MiB", "num": 1024, "dur": "1m30s"}`), &v)
	tassert.CheckFatal(t, err)
	tassert.Errorf(t, v.Size == 64*cos.MiB, "size %d", v.Size)
	tassert.Errorf(t, v.Num == cos.KiB, "num %d", v.Num)
	tassert.Errorf(t, v.Dur.D() == 90*time.Second, "dur %v", v.Dur)
	tassert.Errorf(t, v.Size.String() == "64MiB", "size %s", v.Size)
	tassert.Errorf(t, cos.Duration(2*time.Minute).String() == "2m", "dur %s", cos.Duration(2*time.Minute))
}
