// Package cos provides common low-level types and utilities
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// IEC (binary) units
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
)

/////////////
// SizeIEC //
/////////////

// is used in cmn/config (compare w/ duration.go)
type SizeIEC int64

func (siz SizeIEC) String() string               { return ToSizeIEC(int64(siz), 0) }
func (siz SizeIEC) MarshalJSON() ([]byte, error) { return jsoniter.Marshal(siz.String()) }
func (siz SizeIEC) MarshalText() ([]byte, error) { return []byte(siz.String()), nil }

// accepts both "64MiB" and 67108864
func (siz *SizeIEC) UnmarshalJSON(b []byte) error {
	var val any
	if err := jsoniter.Unmarshal(b, &val); err != nil {
		return err
	}
	switch v := val.(type) {
	case string:
		return siz.UnmarshalText([]byte(v))
	case float64:
		*siz = SizeIEC(v)
		return nil
	default:
		return fmt.Errorf("invalid size %s", string(b))
	}
}

func (siz *SizeIEC) UnmarshalText(b []byte) error {
	n, err := ParseSize(string(b))
	if err != nil {
		return err
	}
	*siz = SizeIEC(n)
	return nil
}

func ToSizeIEC(b int64, digits int) string {
	switch {
	case b >= TiB:
		return fmt.Sprintf("%.*f%s", digits, float64(b)/float64(TiB), "TiB")
	case b >= GiB:
		return fmt.Sprintf("%.*f%s", digits, float64(b)/float64(GiB), "GiB")
	case b >= MiB:
		return fmt.Sprintf("%.*f%s", digits, float64(b)/float64(MiB), "MiB")
	case b >= KiB:
		return fmt.Sprintf("%.*f%s", digits, float64(b)/float64(KiB), "KiB")
	default:
		return fmt.Sprintf("%dB", b)
	}
}

// binary units only: "KiB" and "K" both mean 1024, etc.
func ParseSize(size string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(size))
	if s == "" {
		return 0, nil
	}
	var mult int64 = 1
	for _, sfx := range []struct {
		s    string
		mult int64
	}{
		{"TIB", TiB}, {"GIB", GiB}, {"MIB", MiB}, {"KIB", KiB},
		{"T", TiB}, {"G", GiB}, {"M", MiB}, {"K", KiB}, {"B", 1},
	} {
		if strings.HasSuffix(s, sfx.s) {
			s, mult = strings.TrimSpace(strings.TrimSuffix(s, sfx.s)), sfx.mult
			break
		}
	}
	if strings.IndexByte(s, '.') >= 0 {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("invalid size %q", size)
		}
		return int64(f * float64(mult)), nil
	}
	val, err := strconv.ParseInt(s, 10, 64)
	if err != nil || val < 0 {
		return 0, fmt.Errorf("invalid size %q", size)
	}
	return val * mult, nil
}
