// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import (
	"errors"
	"sync"
	"sync/atomic"
)

var errTest = errors.New("test error")

// field is a fully serialized key/value, as a concrete drain
// would see it.
type field struct {
	Key string
	Val interface{}
}

// unit is how memSerializer represents EmitUnit.
type unit struct{}

// memSerializer collects emitted fields in memory.
type memSerializer struct {
	fields []field
}

func (s *memSerializer) EmitBool(key string, val bool) error {
	s.fields = append(s.fields, field{key, val})
	return nil
}

func (s *memSerializer) EmitInt64(key string, val int64) error {
	s.fields = append(s.fields, field{key, val})
	return nil
}

func (s *memSerializer) EmitUint64(key string, val uint64) error {
	s.fields = append(s.fields, field{key, val})
	return nil
}

func (s *memSerializer) EmitFloat64(key string, val float64) error {
	s.fields = append(s.fields, field{key, val})
	return nil
}

func (s *memSerializer) EmitString(key string, val string) error {
	s.fields = append(s.fields, field{key, val})
	return nil
}

func (s *memSerializer) EmitNone(key string) error {
	s.fields = append(s.fields, field{key, nil})
	return nil
}

func (s *memSerializer) EmitUnit(key string) error {
	s.fields = append(s.fields, field{key, unit{}})
	return nil
}

// captured is one record as seen by captureDrain: call-site pairs
// first, then the context chain child-to-root, all serialized.
type captured struct {
	Level   Level
	Message string
	File    string
	Line    int
	Fields  []field
}

// captureDrain serializes everything it receives and remembers it.
type captureDrain struct {
	mu      sync.Mutex
	records []captured
}

func (c *captureDrain) Log(r Record, kvs *OwnedKVList) error {
	ser := &memSerializer{}
	for _, kv := range r.KVs() {
		if err := kv.Value.Serialize(ser, kv.Key); err != nil {
			return err
		}
	}
	it := kvs.Iter()
	for {
		kv, ok := it.Next()
		if !ok {
			break
		}
		if err := kv.Value.Serialize(ser, kv.Key); err != nil {
			return err
		}
	}
	file, line := r.SourceLine()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, captured{
		Level:   r.Level(),
		Message: r.Message(),
		File:    file,
		Line:    line,
		Fields:  ser.fields,
	})
	return nil
}

func (c *captureDrain) all() []captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]captured(nil), c.records...)
}

func (c *captureDrain) last() (captured, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.records) == 0 {
		return captured{}, false
	}
	return c.records[len(c.records)-1], true
}

// countDrain counts invocations and succeeds.
type countDrain struct {
	n int32
}

func (c *countDrain) Log(Record, *OwnedKVList) error {
	atomic.AddInt32(&c.n, 1)
	return nil
}

func (c *countDrain) count() int32 { return atomic.LoadInt32(&c.n) }

// errDrain counts invocations and always fails with err.
type errDrain struct {
	err error
	n   int32
}

func (e *errDrain) Log(Record, *OwnedKVList) error {
	atomic.AddInt32(&e.n, 1)
	return e.err
}

func (e *errDrain) count() int32 { return atomic.LoadInt32(&e.n) }

// collectOwned drains an iterator into a slice.
func collectOwned(it Iter[OwnedKV]) []OwnedKV {
	var out []OwnedKV
	for {
		kv, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, kv)
	}
}
