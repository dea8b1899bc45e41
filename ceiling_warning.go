// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build slog_max_level_warning && !slog_max_level_error && !slog_max_level_off

package slog

const maxLevel = FilterWarning
