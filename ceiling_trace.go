// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The slog_max_level_trace tag is accepted for symmetry; it selects
// the same ceiling as the default build.

//go:build !slog_max_level_debug && !slog_max_level_info && !slog_max_level_warning && !slog_max_level_error && !slog_max_level_off

package slog

const maxLevel = FilterTrace
