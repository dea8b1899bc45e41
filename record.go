// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import (
	"runtime"
	"strings"
)

// A Record describes one logging event: its level, message, call site
// and the key/values supplied at the call. Records are ephemeral: a
// Record is built only after the static ceiling check passes, lives
// for a single Drain dispatch, and owns none of its values. Drains
// must not retain a Record or its KVs past the Log call that
// delivered them; that restriction is what lets call-site values
// reference caller-local data safely.
type Record struct {
	level  Level
	msg    string
	pc     uintptr
	target string
	kvs    []KV
}

// NewRecord creates a Record from the given arguments. If calldepth is
// greater than zero, the call-site accessors report the stack frame
// that many calls above NewRecord; 1 is NewRecord's direct caller.
//
// NewRecord is intended for code that builds its own logging surface
// on top of a Drain. Most callers use the Logger methods instead.
func NewRecord(level Level, msg string, calldepth int, kvs []KV) Record {
	var p uintptr
	if calldepth > 0 {
		p = pc(calldepth + 2)
	}
	return Record{
		level: level,
		msg:   msg,
		pc:    p,
		kvs:   kvs,
	}
}

func pc(depth int) uintptr {
	var pcs [1]uintptr
	runtime.Callers(depth, pcs[:])
	return pcs[0]
}

// Level returns the severity of the event.
func (r Record) Level() Level { return r.level }

// Message returns the log message, formatted by the caller.
func (r Record) Message() string { return r.msg }

// SourceLine returns the file and line of the call site.
// If the Record was created without call-site information,
// or if the location is unavailable, it returns ("", 0).
func (r Record) SourceLine() (file string, line int) {
	if r.pc == 0 {
		return "", 0
	}
	fs := runtime.CallersFrames([]uintptr{r.pc})
	f, _ := fs.Next()
	return f.File, f.Line
}

// Function returns the fully qualified name of the function containing
// the call site, or "" if unavailable.
func (r Record) Function() string {
	if r.pc == 0 {
		return ""
	}
	fs := runtime.CallersFrames([]uintptr{r.pc})
	f, _ := fs.Next()
	return f.Function
}

// Module returns the import path of the package containing the call
// site, or "" if unavailable.
func (r Record) Module() string {
	pkg, _ := splitFuncName(r.Function())
	return pkg
}

// Target returns the record's routing target. It defaults to the call
// site's package path; WithTarget overrides it.
func (r Record) Target() string {
	if r.target != "" {
		return r.target
	}
	return r.Module()
}

// WithTarget returns a copy of the record with its target set to t.
func (r Record) WithTarget(t string) Record {
	r.target = t
	return r
}

// KVs returns the pairs supplied at the call site, in argument order.
// The caller must not modify or retain the returned slice.
func (r Record) KVs() []KV { return r.kvs }

// NumKVs returns the number of pairs supplied at the call site.
func (r Record) NumKVs() int { return len(r.kvs) }

// KV returns the i'th call-site pair.
func (r Record) KV(i int) KV { return r.kvs[i] }

// splitFuncName splits a runtime function name like
// "github.com/user/pkg.(*T).Method" into package path and local name.
func splitFuncName(fn string) (pkg, name string) {
	if fn == "" {
		return "", ""
	}
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return "", fn
	}
	dot += slash + 1
	return fn[:dot], fn[dot+1:]
}
