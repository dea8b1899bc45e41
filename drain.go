// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

import (
	"sync"

	"github.com/pkg/errors"
)

// A Drain consumes log records. It is handed each Record together with
// the dispatching Logger's context chain, and reports success or a
// sink-defined failure. The core never interprets a drain's error
// beyond noticing that one occurred.
//
// A Drain's Log method may be called concurrently from multiple
// goroutines. A drain needing exclusive access to an underlying
// resource must serialize internally; see Locked.
//
// Drains must not panic on well-formed input. Records whose values
// violate their own Serialize preconditions are outside the core's
// authority to detect.
type Drain interface {
	Log(r Record, kvs *OwnedKVList) error
}

// DrainFunc adapts a function to the Drain interface.
type DrainFunc func(r Record, kvs *OwnedKVList) error

// Log calls f.
func (f DrainFunc) Log(r Record, kvs *OwnedKVList) error { return f(r, kvs) }

// Discard is the null sink: it succeeds unconditionally and does no
// work. It is a valid root drain.
var Discard Drain = discard{}

type discard struct{}

func (discard) Log(Record, *OwnedKVList) error { return nil }

// LevelFilter returns a drain that forwards to d only those records
// whose level passes the threshold, and trivially succeeds for the
// rest. This is the dynamic counterpart of the compile-time ceiling.
func LevelFilter(d Drain, level FilterLevel) Drain {
	return &levelFilter{d: d, level: level}
}

type levelFilter struct {
	d     Drain
	level FilterLevel
}

func (f *levelFilter) Log(r Record, kvs *OwnedKVList) error {
	if r.Level().AsOrdinal() <= f.level.AsOrdinal() {
		return f.d.Log(r, kvs)
	}
	return nil
}

// Filter returns a drain that forwards to d only those records for
// which pred returns true, and trivially succeeds for the rest. The
// predicate sees both the record and the dispatching logger's context
// chain.
func Filter(d Drain, pred func(r Record, kvs *OwnedKVList) bool) Drain {
	return &filter{d: d, pred: pred}
}

type filter struct {
	d    Drain
	pred func(Record, *OwnedKVList) bool
}

func (f *filter) Log(r Record, kvs *OwnedKVList) error {
	if f.pred(r, kvs) {
		return f.d.Log(r, kvs)
	}
	return nil
}

// MapErr returns a drain that forwards to d and, on failure,
// transforms the error with f before returning it. Successes pass
// through untouched.
func MapErr(d Drain, f func(error) error) Drain {
	return &mapErr{d: d, f: f}
}

type mapErr struct {
	d Drain
	f func(error) error
}

func (m *mapErr) Log(r Record, kvs *OwnedKVList) error {
	if err := m.d.Log(r, kvs); err != nil {
		return m.f(err)
	}
	return nil
}

// IgnoreErr returns a drain that forwards to d and converts any
// failure into success. The result is legal as a root drain.
func IgnoreErr(d Drain) Drain {
	return &ignoreErr{d: d}
}

type ignoreErr struct {
	d Drain
}

func (i *ignoreErr) Log(r Record, kvs *OwnedKVList) error {
	_ = i.d.Log(r, kvs)
	return nil
}

// Fuse returns a drain that forwards to d and treats any failure as
// unrecoverable, panicking rather than letting it be silently
// swallowed. The result is legal as a root drain for programs that
// consider a logging failure fatal.
func Fuse(d Drain) Drain {
	return &fuse{d: d}
}

type fuse struct {
	d Drain
}

func (f *fuse) Log(r Record, kvs *OwnedKVList) error {
	if err := f.d.Log(r, kvs); err != nil {
		panic(errors.Wrap(err, "slog: fused drain failed"))
	}
	return nil
}

// Duplicate returns a drain that forwards every record to both first
// and second, in that order. Both are always invoked, even if the
// first fails, so side effects stay consistent; the first failure
// encountered is returned. Nest Duplicate for wider fan-out.
func Duplicate(first, second Drain) Drain {
	return &duplicate{first: first, second: second}
}

type duplicate struct {
	first, second Drain
}

func (d *duplicate) Log(r Record, kvs *OwnedKVList) error {
	err1 := d.first.Log(r, kvs)
	err2 := d.second.Log(r, kvs)
	if err1 != nil {
		return err1
	}
	return err2
}

// An AtomicSwitch is a drain holding a replaceable inner drain. Each
// dispatch reads the current inner drain; Swap installs a new one with
// a single atomic store. A dispatch that begins strictly after Swap
// returns observes the new drain; dispatches already in flight may
// still use the old one. This is the mechanism for adjusting logging
// behavior at runtime, for example from a signal handler, without
// restarting the process.
//
// Use NewAtomicSwitch to create one.
type AtomicSwitch struct {
	d atomicValue[Drain]
}

// NewAtomicSwitch returns an AtomicSwitch initially forwarding to d.
func NewAtomicSwitch(d Drain) *AtomicSwitch {
	s := &AtomicSwitch{}
	s.Swap(d)
	return s
}

// Log forwards to the currently installed drain.
func (s *AtomicSwitch) Log(r Record, kvs *OwnedKVList) error {
	d := s.d.get()
	if d == nil {
		return nil
	}
	return d.Log(r, kvs)
}

// Swap atomically installs d as the inner drain. A nil d makes the
// switch discard until the next Swap.
func (s *AtomicSwitch) Swap(d Drain) {
	s.d.set(d)
}

// Current returns the currently installed drain.
func (s *AtomicSwitch) Current() Drain {
	return s.d.get()
}

// Locked adapts a drain that requires exclusive access, such as one
// wrapping a buffered writer, to the shared-access contract every
// other drain assumes. Dispatches through the returned drain are
// serialized with a mutex, held across the inner call and released on
// every exit path.
func Locked(d Drain) Drain {
	return &locked{d: d}
}

type locked struct {
	mu sync.Mutex
	d  Drain
}

func (l *locked) Log(r Record, kvs *OwnedKVList) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.d.Log(r, kvs)
}
