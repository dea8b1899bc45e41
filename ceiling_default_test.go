// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !slog_max_level_debug && !slog_max_level_info && !slog_max_level_warning && !slog_max_level_error && !slog_max_level_off

package slog

import "testing"

func TestDefaultCeiling(t *testing.T) {
	if got, want := MaxLevel(), FilterTrace; got != want {
		t.Errorf("default ceiling: got %s, want %s", got, want)
	}
	for _, l := range allLevels {
		if !Enabled(l) {
			t.Errorf("default build should enable %s", l)
		}
	}
}
