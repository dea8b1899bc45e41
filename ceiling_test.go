// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import "testing"

// Holds under every ceiling tag.
func TestEnabledMatchesMaxLevel(t *testing.T) {
	for _, l := range allLevels {
		want := l.AsOrdinal() <= MaxLevel().AsOrdinal()
		if got := Enabled(l); got != want {
			t.Errorf("Enabled(%s): got %t, want %t under ceiling %s",
				l, got, want, MaxLevel())
		}
	}
}
