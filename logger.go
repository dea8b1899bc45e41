// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import "fmt"

// A Logger pairs a Drain with a context chain. It is an immutable
// value: "changing" a logger means deriving a child with New, never
// mutating the original. Loggers are cheap to copy and safe for
// concurrent use.
//
// The zero Logger discards everything.
type Logger struct {
	drain Drain
	list  *OwnedKVList
}

// Root builds a top-level Logger writing to drain, with kvs as its
// initial context.
//
// The drain must be one that cannot fail: pick an error strategy with
// IgnoreErr or Fuse (or use a drain that never errors) before calling
// Root. Logging through a Logger is fire-and-forget, so a failure
// reaching the root would be silently lost; handing Root a fallible
// drain is a usage error that cannot be detected at runtime.
//
// Every value in kvs must implement SyncValue; Root panics otherwise.
func Root(drain Drain, kvs ...KV) Logger {
	return Logger{
		drain: drain,
		list:  RootOwnedKVList(O(kvs...)),
	}
}

// New returns a child Logger that shares l's Drain and extends l's
// context with kvs. The parent's context is aliased, not copied, so
// New is O(1) in the amount of inherited context, and the parent is
// unaffected.
//
// Every value in kvs must implement SyncValue; New panics otherwise.
func (l Logger) New(kvs ...KV) Logger {
	return Logger{
		drain: l.drain,
		list:  NewOwnedKVList(O(kvs...), l.list),
	}
}

// Drain returns the Logger's drain.
func (l Logger) Drain() Drain { return l.drain }

// List returns the Logger's context chain.
func (l Logger) List() *OwnedKVList { return l.list }

// Log forwards a Record, together with the Logger's context chain, to
// the Logger's Drain. The Drain's result is discarded: by the Root
// contract the drain cannot fail.
func (l Logger) Log(r Record) {
	if l.drain == nil {
		return
	}
	_ = l.drain.Log(r, l.list)
}

// LogAt logs msg with the given level and call-site pairs. It is the
// generic form of the leveled shorthands.
func (l Logger) LogAt(level Level, msg string, kvs ...KV) {
	l.logAt(level, msg, kvs)
}

// Critical logs at the Critical level.
func (l Logger) Critical(msg string, kvs ...KV) { l.logAt(CriticalLevel, msg, kvs) }

// Error logs at the Error level.
func (l Logger) Error(msg string, kvs ...KV) { l.logAt(ErrorLevel, msg, kvs) }

// Warning logs at the Warning level.
func (l Logger) Warning(msg string, kvs ...KV) { l.logAt(WarningLevel, msg, kvs) }

// Info logs at the Info level.
func (l Logger) Info(msg string, kvs ...KV) { l.logAt(InfoLevel, msg, kvs) }

// Debug logs at the Debug level.
func (l Logger) Debug(msg string, kvs ...KV) { l.logAt(DebugLevel, msg, kvs) }

// Trace logs at the Trace level.
func (l Logger) Trace(msg string, kvs ...KV) { l.logAt(TraceLevel, msg, kvs) }

// Criticalf logs a formatted message at the Critical level.
func (l Logger) Criticalf(format string, args ...interface{}) {
	l.logAtf(CriticalLevel, format, args)
}

// Errorf logs a formatted message at the Error level.
func (l Logger) Errorf(format string, args ...interface{}) {
	l.logAtf(ErrorLevel, format, args)
}

// Warningf logs a formatted message at the Warning level.
func (l Logger) Warningf(format string, args ...interface{}) {
	l.logAtf(WarningLevel, format, args)
}

// Infof logs a formatted message at the Info level.
func (l Logger) Infof(format string, args ...interface{}) {
	l.logAtf(InfoLevel, format, args)
}

// Debugf logs a formatted message at the Debug level.
func (l Logger) Debugf(format string, args ...interface{}) {
	l.logAtf(DebugLevel, format, args)
}

// Tracef logs a formatted message at the Trace level.
func (l Logger) Tracef(format string, args ...interface{}) {
	l.logAtf(TraceLevel, format, args)
}

// logAt must be called exactly one frame below the exported entry
// point, so the recorded call site is the entry point's caller.
func (l Logger) logAt(level Level, msg string, kvs []KV) {
	if !Enabled(level) {
		return
	}
	if l.drain == nil {
		return
	}
	_ = l.drain.Log(NewRecord(level, msg, 3, kvs), l.list)
}

// logAtf formats only after the ceiling check, so rejected call sites
// pay nothing for the message either.
func (l Logger) logAtf(level Level, format string, args []interface{}) {
	if !Enabled(level) {
		return
	}
	if l.drain == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	_ = l.drain.Log(NewRecord(level, msg, 3, nil), l.list)
}
