// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

// The compile-time severity ceiling is selected with build tags:
//
//	slog_max_level_off
//	slog_max_level_error
//	slog_max_level_warning
//	slog_max_level_info
//	slog_max_level_debug
//	slog_max_level_trace
//
// When several tags are set the strictest wins. Without any tag the
// ceiling is trace, i.e. everything is enabled. Because maxLevel is an
// untyped constant, the Enabled check in the leveled Logger methods
// folds to false at compile time for rejected levels and the call
// bodies are eliminated from the build.

// MaxLevel returns the compile-time severity ceiling the package was
// built with. Records whose level does not pass the ceiling are never
// constructed or dispatched.
func MaxLevel() FilterLevel { return maxLevel }

// Enabled reports whether records at level l pass the compile-time
// ceiling. Callers can use it to guard construction of expensive
// arguments, though values built with Lazy or Defer are never computed
// for rejected records anyway.
func Enabled(l Level) bool {
	return l.AsOrdinal() <= maxLevel.AsOrdinal()
}
