// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import "fmt"

// A KV is a key/value pair supplied at a logging call site. Its value
// may reference data that only lives for the duration of the call; a
// Drain must not retain it past the Log invocation that delivered it.
type KV struct {
	Key   string
	Value Value
}

// An OwnedKV is a key/value pair owned by a logger's context. Its
// value must be safe for concurrent serialization, because the context
// chain is shared by every descendant logger.
type OwnedKV struct {
	Key   string
	Value SyncValue
}

// String returns a string pair.
func String(key, val string) KV { return KV{key, stringValue(val)} }

// Bool returns a bool pair.
func Bool(key string, val bool) KV { return KV{key, boolValue(val)} }

// Int returns an int pair.
func Int(key string, val int) KV { return KV{key, int64Value(val)} }

// Int64 returns an int64 pair.
func Int64(key string, val int64) KV { return KV{key, int64Value(val)} }

// Uint64 returns a uint64 pair.
func Uint64(key string, val uint64) KV { return KV{key, uint64Value(val)} }

// Float64 returns a float64 pair.
func Float64(key string, val float64) KV { return KV{key, float64Value(val)} }

// None returns a pair with an absent value.
func None(key string) KV { return KV{key, noneValue{}} }

// Unit returns a pair with a value-less marker.
func Unit(key string) KV { return KV{key, unitValue{}} }

// Lazy returns a pair whose value is computed by f only once the
// record carrying it has survived all filtering.
func Lazy(key string, f func() Value) KV { return KV{key, ValueFunc(f)} }

// Defer returns a pair that serializes by calling f directly with the
// Serializer, skipping any intermediate representation. Like Lazy, f
// runs only for records that survive filtering.
func Defer(key string, f func(s Serializer, key string) error) KV {
	return KV{key, SerializeFunc(f)}
}

// Any returns a pair for an arbitrary Go value, mapping it onto the
// closest primitive kind. A nil value becomes None; a Value is used
// as-is; anything without a primitive mapping is formatted with
// fmt.Sprint.
func Any(key string, val interface{}) KV {
	switch v := val.(type) {
	case nil:
		return None(key)
	case Value:
		return KV{key, v}
	case bool:
		return Bool(key, v)
	case int:
		return Int(key, v)
	case int8:
		return Int64(key, int64(v))
	case int16:
		return Int64(key, int64(v))
	case int32:
		return Int64(key, int64(v))
	case int64:
		return Int64(key, v)
	case uint:
		return Uint64(key, uint64(v))
	case uint8:
		return Uint64(key, uint64(v))
	case uint16:
		return Uint64(key, uint64(v))
	case uint32:
		return Uint64(key, uint64(v))
	case uint64:
		return Uint64(key, v)
	case float32:
		return Float64(key, float64(v))
	case float64:
		return Float64(key, v)
	case string:
		return String(key, v)
	case fmt.Stringer:
		return String(key, v.String())
	case error:
		return String(key, v.Error())
	default:
		return String(key, fmt.Sprint(v))
	}
}

// O converts call-site pairs into an owned group suitable for a
// logger's context. Every value must implement SyncValue; O panics
// otherwise, since a non-sync value in a shared context is
// unconditionally a bug in the caller.
func O(kvs ...KV) []OwnedKV {
	if len(kvs) == 0 {
		return nil
	}
	owned := make([]OwnedKV, len(kvs))
	for i, kv := range kvs {
		sv, ok := kv.Value.(SyncValue)
		if !ok {
			panic(fmt.Sprintf("slog: value for key %q is not a SyncValue", kv.Key))
		}
		owned[i] = OwnedKV{Key: kv.Key, Value: sv}
	}
	return owned
}
