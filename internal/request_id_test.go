// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package internal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRequestID(t *testing.T) {
	t.Parallel()

	first := NextRequestID()
	second := NextRequestID()
	assert.Greater(t, second, first)
}

func TestNextRequestID_concurrent(t *testing.T) {
	t.Parallel()

	const n = 64

	ids := make([]int64, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			ids[i] = NextRequestID()
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]struct{}, n)
	for _, id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate request id %d", id)
		seen[id] = struct{}{}
	}
}
