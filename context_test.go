// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import (
	"context"
	"testing"
)

func TestContext(t *testing.T) {
	// Without a Logger in the context, FromContext returns one that
	// discards.
	ctx := context.Background()
	got := FromContext(ctx)
	if got.Drain() != Discard {
		t.Error("did not get the discarding Logger")
	}
	got.Info("dropped") // must not panic

	// With one, FromContext returns it.
	drain := &captureDrain{}
	l := Root(drain, String("app", "test"))
	ctx = NewContext(ctx, l)
	got = FromContext(ctx)
	got.Info("hello")
	if r, ok := drain.last(); !ok || r.Message != "hello" {
		t.Errorf("did not log through the context Logger: %+v", r)
	}
}
