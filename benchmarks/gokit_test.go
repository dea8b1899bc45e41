// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmarks_test

import (
	"io"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

func BenchmarkGokit(b *testing.B) {
	b.ReportAllocs()
	logger := log.With(log.NewLogfmtLogger(io.Discard), "app", "bench")
	for i := 0; i < b.N; i++ {
		_ = level.Info(logger).Log("msg", aMsg, aName, aValues[i%len(aValues)])
		_ = level.Info(logger).Log("msg", bMsg, bName, bValues[i%len(bValues)])
	}
}

func BenchmarkGokitFilteredOut(b *testing.B) {
	b.ReportAllocs()
	logger := level.NewFilter(log.NewLogfmtLogger(io.Discard), level.AllowInfo())
	for i := 0; i < b.N; i++ {
		_ = level.Debug(logger).Log(aName, i)
	}
}
