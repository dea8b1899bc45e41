// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import "context"

type contextKey struct{}

// NewContext returns a context that carries the given Logger.
// Use FromContext to retrieve it.
func NewContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext retrieves the Logger stored in ctx by NewContext.
// If there is none, it returns a Logger that discards everything.
func FromContext(ctx context.Context) Logger {
	l, ok := ctx.Value(contextKey{}).(Logger)
	if !ok {
		return Root(Discard)
	}
	return l
}
