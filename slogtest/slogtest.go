// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slogtest supports testing code that logs through slog.
//
// A [Capture] drain snapshots every dispatched record, with its
// call-site pairs and full context chain flattened into plain fields,
// so tests can assert on exactly what would have been emitted. [New]
// returns a drain that renders records to a testing.TB instead, for
// tests that just want log output interleaved with test output.
package slogtest

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/fulara/slog"
)

// A Field is one fully serialized key/value.
//
// Value holds the Go value handed to the Serializer: bool, int64,
// uint64, float64 or string. An absent value (EmitNone) is nil and a
// value-less marker (EmitUnit) is [Unit].
type Field struct {
	Key   string
	Value interface{}
}

// Unit is the Value of a field emitted with EmitUnit.
var Unit = struct{ unit string }{"unit"}

// A Recorder is a slog.Serializer that collects emitted fields in
// memory. The zero value is ready to use. It is not safe for
// concurrent use; use one per dispatch.
type Recorder struct {
	fields []Field
}

// Fields returns the fields emitted so far, in emission order.
func (r *Recorder) Fields() []Field { return r.fields }

func (r *Recorder) emit(key string, val interface{}) error {
	r.fields = append(r.fields, Field{Key: key, Value: val})
	return nil
}

func (r *Recorder) EmitBool(key string, val bool) error       { return r.emit(key, val) }
func (r *Recorder) EmitInt64(key string, val int64) error     { return r.emit(key, val) }
func (r *Recorder) EmitUint64(key string, val uint64) error   { return r.emit(key, val) }
func (r *Recorder) EmitFloat64(key string, val float64) error { return r.emit(key, val) }
func (r *Recorder) EmitString(key string, val string) error   { return r.emit(key, val) }
func (r *Recorder) EmitNone(key string) error                 { return r.emit(key, nil) }
func (r *Recorder) EmitUnit(key string) error                 { return r.emit(key, Unit) }

// An Entry is one captured record: the record's own fields first, then
// the context chain flattened most-specific first.
type Entry struct {
	Level   slog.Level
	Message string
	Target  string
	File    string
	Line    int
	Fields  []Field
}

// A Capture is a drain that remembers everything dispatched through
// it. It never fails and is safe for concurrent use, so it is a valid
// root drain.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
}

// Log implements slog.Drain.
func (c *Capture) Log(r slog.Record, kvs *slog.OwnedKVList) error {
	e, err := flatten(r, kvs)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, e)
	return nil
}

// Entries returns a copy of everything captured so far, in dispatch
// order.
func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry(nil), c.entries...)
}

// Last returns the most recently captured entry.
func (c *Capture) Last() (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) == 0 {
		return Entry{}, false
	}
	return c.entries[len(c.entries)-1], true
}

// Reset discards everything captured so far.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// New returns a drain that renders every record on a single line and
// logs it to tb. It never fails, so it is a valid root drain.
func New(tb testing.TB) slog.Drain {
	return slog.DrainFunc(func(r slog.Record, kvs *slog.OwnedKVList) error {
		e, err := flatten(r, kvs)
		if err != nil {
			tb.Logf("%s %s !SERIALIZATION(%v)", r.Level().ShortString(), r.Message(), err)
			return nil
		}
		var b strings.Builder
		b.WriteString(e.Level.ShortString())
		b.WriteByte(' ')
		b.WriteString(e.Message)
		for _, f := range e.Fields {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
		tb.Log(b.String())
		return nil
	})
}

func flatten(r slog.Record, kvs *slog.OwnedKVList) (Entry, error) {
	rec := &Recorder{}
	for _, kv := range r.KVs() {
		if err := kv.Value.Serialize(rec, kv.Key); err != nil {
			return Entry{}, err
		}
	}
	it := kvs.Iter()
	for {
		kv, ok := it.Next()
		if !ok {
			break
		}
		if err := kv.Value.Serialize(rec, kv.Key); err != nil {
			return Entry{}, err
		}
	}
	file, line := r.SourceLine()
	return Entry{
		Level:   r.Level(),
		Message: r.Message(),
		Target:  r.Target(),
		File:    file,
		Line:    line,
		Fields:  rec.Fields(),
	}, nil
}
