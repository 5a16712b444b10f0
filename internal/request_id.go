// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package internal is for internal use only: it is subject to breaking
// changes at any time.
package internal

import "sync/atomic"

var globalRequestID int64

// NextRequestID returns the next request id, used to correlate started and
// finished command events.
func NextRequestID() int64 {
	return atomic.AddInt64(&globalRequestID, 1)
}
