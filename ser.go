// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

// A Serializer receives the primitive values a Drain pulls out of a
// record and its context chain. Concrete output formats (text, JSON,
// syslog, ...) implement it; the core never inspects what a
// Serializer produces.
//
// A Value's Serialize method must call exactly one Emit method per
// invocation. Calling more than one for the same key is undefined;
// a Serializer is free to ignore the extras or report an error.
type Serializer interface {
	// EmitBool emits a boolean under key.
	EmitBool(key string, val bool) error
	// EmitInt64 emits a signed integer under key.
	EmitInt64(key string, val int64) error
	// EmitUint64 emits an unsigned integer under key.
	EmitUint64(key string, val uint64) error
	// EmitFloat64 emits a floating-point number under key.
	EmitFloat64(key string, val float64) error
	// EmitString emits a string under key.
	EmitString(key string, val string) error
	// EmitNone emits an absent value under key.
	EmitNone(key string) error
	// EmitUnit emits a value-less marker under key.
	EmitUnit(key string) error
}

// A Value can emit itself into a Serializer under a key.
// It may fail with whatever error the Serializer reports.
type Value interface {
	Serialize(s Serializer, key string) error
}

// A SyncValue is a Value that is safe to serialize concurrently from
// multiple goroutines without synchronization. Context chains are read
// by every goroutine logging through a descendant logger, so only
// SyncValues may be attached to a logger's context.
//
// SyncValue is a marker method; implementations leave it empty.
type SyncValue interface {
	Value
	SyncValue()
}

type (
	boolValue    bool
	int64Value   int64
	uint64Value  uint64
	float64Value float64
	stringValue  string
	noneValue    struct{}
	unitValue    struct{}
)

func (v boolValue) Serialize(s Serializer, key string) error    { return s.EmitBool(key, bool(v)) }
func (v int64Value) Serialize(s Serializer, key string) error   { return s.EmitInt64(key, int64(v)) }
func (v uint64Value) Serialize(s Serializer, key string) error  { return s.EmitUint64(key, uint64(v)) }
func (v float64Value) Serialize(s Serializer, key string) error { return s.EmitFloat64(key, float64(v)) }
func (v stringValue) Serialize(s Serializer, key string) error  { return s.EmitString(key, string(v)) }
func (noneValue) Serialize(s Serializer, key string) error      { return s.EmitNone(key) }
func (unitValue) Serialize(s Serializer, key string) error      { return s.EmitUnit(key) }

func (boolValue) SyncValue()    {}
func (int64Value) SyncValue()   {}
func (uint64Value) SyncValue()  {}
func (float64Value) SyncValue() {}
func (stringValue) SyncValue()  {}
func (noneValue) SyncValue()    {}
func (unitValue) SyncValue()    {}

// BoolValue returns a Value holding a bool.
func BoolValue(v bool) SyncValue { return boolValue(v) }

// Int64Value returns a Value holding an int64.
func Int64Value(v int64) SyncValue { return int64Value(v) }

// Uint64Value returns a Value holding a uint64.
func Uint64Value(v uint64) SyncValue { return uint64Value(v) }

// Float64Value returns a Value holding a float64.
func Float64Value(v float64) SyncValue { return float64Value(v) }

// StringValue returns a Value holding a string.
func StringValue(v string) SyncValue { return stringValue(v) }

// NoneValue returns the absent Value.
func NoneValue() SyncValue { return noneValue{} }

// UnitValue returns the value-less marker Value.
func UnitValue() SyncValue { return unitValue{} }

// A ValueFunc defers computing a value until a record has survived all
// filtering. The function is invoked once per serialization, never for
// records that are filtered out.
//
// ValueFunc satisfies SyncValue; when a ValueFunc is attached to a
// logger's context, any state it closes over must itself be safe for
// concurrent use.
type ValueFunc func() Value

// Serialize computes the value and serializes it.
func (f ValueFunc) Serialize(s Serializer, key string) error {
	return f().Serialize(s, key)
}

// SyncValue implements the SyncValue marker.
func (f ValueFunc) SyncValue() {}

// A SerializeFunc defers serialization entirely: it writes straight
// into the Serializer without materializing an intermediate value.
//
// The same concurrency caveat as for ValueFunc applies.
type SerializeFunc func(s Serializer, key string) error

// Serialize invokes the function.
func (f SerializeFunc) Serialize(s Serializer, key string) error {
	return f(s, key)
}

// SyncValue implements the SyncValue marker.
func (f SerializeFunc) SyncValue() {}
