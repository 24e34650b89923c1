// Package cmn provides common types, configuration, and utilities for the signing service
/*
 * Copyright (c) 2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/teris-io/shortid"
)

// NOTE: `shortid` uses hardcoded 01/2016 as a starting timestamp
const (
	// similar to shortid.DEFAULT_ABC
	uuidABC = "-5nZJDft6LuzsjGNpPwY7rQa39vehq4i1cV2FROo8yHSlC0BUEdWbIxMmTgKXAk_"
)

var (
	sid     *shortid.Shortid
	sidOnce sync.Once
)

func initShortid() {
	sid = shortid.MustNew(1 /*worker*/, uuidABC, rand.Uint64())
}

// GenReqID returns a short unique id to correlate log lines of a given request
func GenReqID() string {
	sidOnce.Do(initShortid)
	if id, err := sid.Generate(); err == nil {
		return id
	}
	return strconv.FormatUint(rand.Uint64(), 36)
}
