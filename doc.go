// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package slog provides structured, hierarchical, composable logging.

A [Logger] pairs a [Drain] with an owned key/value context. Loggers form
a tree: a child created with [Logger.New] inherits its parent's context
without copying it, and extends it with its own key/value group. Every
logging call produces a [Record] that is handed, together with the
logger's full context chain, to the logger's Drain.

	root := slog.Root(slog.Discard, slog.String("version", "1.0"))
	server := root.New(slog.String("component", "server"))
	server.Info("listening", slog.Int("port", 8080))

A Drain is any sink of records. Drains compose: [LevelFilter], [Filter],
[Duplicate], [MapErr] and friends each wrap inner drains, so output can
be filtered, duplicated and rerouted without the call sites knowing.
The drain handed to [Root] must be one that cannot fail; [IgnoreErr] and
[Fuse] convert a fallible drain into one, each with a different error
strategy. [NewAtomicSwitch] allows the behavior of a running tree to be
swapped atomically, for example from a signal handler.

Values attached to records and contexts are rendered through the
[Serializer] interface, so the core never commits to an output format.
Concrete formats and sinks (text, JSON, files, sockets) live outside
this package; they only implement Drain and consume Serializer.

Expensive values can be deferred with [Lazy] or [Defer]; they are only
computed once a record has survived all filtering.

A compile-time severity ceiling can be selected with build tags (see
[MaxLevel]), removing rejected call sites from the build entirely.
*/
package slog
