// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import "sync/atomic"

// An atomicValue holds a T that can be read and replaced atomically.
// The value is boxed so that interface types with varying dynamic
// types can be stored; atomic.Value alone would panic on an
// inconsistently typed store.
type atomicValue[T any] struct {
	a atomic.Value
}

type boxed[T any] struct {
	val T
}

func (av *atomicValue[T]) get() (z T) {
	v := av.a.Load()
	if v == nil {
		return z
	}
	return v.(boxed[T]).val
}

func (av *atomicValue[T]) set(x T) {
	av.a.Store(boxed[T]{x})
}
