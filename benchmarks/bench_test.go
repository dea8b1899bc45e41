// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmarks compares the cost of logging through slog with
// other structured loggers, on a fixed workload: one int field, one
// string field and a short message per call, written to a discarding
// sink. The absolute numbers only matter relative to each other.
package benchmarks_test

import "sync"

const (
	aName = "aCount"
	aMsg  = "a"
	bName = "bName"
	bMsg  = "b"
)

var (
	aValues = []int{0, 1, 22, 333, 4444, 55555, 666666, 7777777}
	bValues = []string{
		"a", "b", "c", "d", "e", "f", "g", "h",
	}
)

// syncDiscardWriter is a goroutine-safe io.Writer that throws
// everything away.
type syncDiscardWriter struct {
	mu sync.Mutex
}

func (w *syncDiscardWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(p), nil
}
