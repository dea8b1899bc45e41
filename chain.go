// Copyright 2023 The slog Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slog

// An OwnedKVList is one node of a logger's context chain: the group of
// owned key/values added by a single child creation, plus a link to
// the parent node.
//
// The chain is persistent. A node's group and parent link never change
// after construction, so building a child can never invalidate a
// sibling or an ancestor, and a node may be read concurrently by every
// goroutine logging through a logger that references it. Nodes are
// reclaimed by the garbage collector once the last chain referencing
// them is dropped.
//
// Keys need not be unique, within a group or across the chain.
// Duplicates are all preserved and all emitted; any precedence among
// them is the consuming drain's choice, not the core's.
type OwnedKVList struct {
	parent *OwnedKVList
	kvs    []OwnedKV
}

// RootOwnedKVList returns a chain node with no parent. It anchors the
// context of a top-level logger.
func RootOwnedKVList(kvs []OwnedKV) *OwnedKVList {
	return &OwnedKVList{kvs: kvs}
}

// NewOwnedKVList returns a chain node holding kvs as its own group,
// as a child of parent. The parent is aliased, not copied: creating a
// child is O(1) regardless of how much context the ancestors carry.
func NewOwnedKVList(kvs []OwnedKV, parent *OwnedKVList) *OwnedKVList {
	return &OwnedKVList{parent: parent, kvs: kvs}
}

// Parent returns the parent node, or nil for a root.
// A nil receiver has no parent.
func (l *OwnedKVList) Parent() *OwnedKVList {
	if l == nil {
		return nil
	}
	return l.parent
}

// Values returns the group owned directly by this node, excluding the
// ancestors'. The caller must not modify the returned slice.
// A nil receiver has no values.
func (l *OwnedKVList) Values() []OwnedKV {
	if l == nil {
		return nil
	}
	return l.kvs
}

// Len returns the total number of pairs reachable from this node,
// including every ancestor's.
func (l *OwnedKVList) Len() int {
	n := 0
	for node := l; node != nil; node = node.parent {
		n += len(node.kvs)
	}
	return n
}

// Iter returns an iterator over every pair reachable from this node:
// this node's own group first, in insertion order, then the parent's,
// and so on up to the root. Most-specific context therefore comes
// first. Each call returns a fresh iteration from the start.
func (l *OwnedKVList) Iter() Iter[OwnedKV] {
	return &ownedKVIter{node: l}
}

type ownedKVIter struct {
	node *OwnedKVList
	i    int
}

func (it *ownedKVIter) Next() (OwnedKV, bool) {
	for it.node != nil {
		if it.i < len(it.node.kvs) {
			kv := it.node.kvs[it.i]
			it.i++
			return kv, true
		}
		it.node = it.node.parent
		it.i = 0
	}
	return OwnedKV{}, false
}
