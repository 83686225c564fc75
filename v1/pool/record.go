// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pool

import (
	"strings"
	"sync/atomic"
)

// record is the unique, immutable allocation backing one distinct content
// string. The live-count tracks outstanding handles; the content never
// changes while the count is positive.
type record struct {
	content string
	hash    uint64 // content hash, computed once at creation
	live    atomic.Int64
}

func newRecord(content string, hash uint64) *record {
	// Clone so the record never pins a larger backing array the caller
	// sliced the content out of.
	r := &record{content: strings.Clone(content), hash: hash}
	r.live.Store(1)
	return r
}

// retain increments the live-count unless the record is already dying
// (count at zero). A dying record must never be handed out again; the
// caller allocates a fresh one instead.
func (r *record) retain() bool {
	for {
		n := r.live.Load()
		if n == 0 {
			return false
		}
		if r.live.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

// Handle is a shared-ownership reference to an intern record. Handles are
// created only by Pool.Acquire and Handle.Clone, and every handle must be
// released exactly once. Copying a Handle value aliases the same reference;
// Clone is the operation that buys an independent lifetime.
type Handle struct {
	rec  *record
	pool *Pool
}

// String returns the interned content. The returned string is immutable
// for as long as any handle to the record is live.
func (h *Handle) String() string {
	return h.rec.content
}

// Len returns the content length in bytes.
func (h *Handle) Len() int {
	return len(h.rec.content)
}

// Hash64 returns the record's cached content hash.
func (h *Handle) Hash64() uint64 {
	return h.rec.hash
}

// Same reports whether both handles reference the same record. The pool
// holds at most one live record per content, so this is equivalent to
// content equality and independent of string length.
func (h *Handle) Same(other *Handle) bool {
	return h.rec == other.rec
}

// Compare orders handles by content bytes. Identity makes equality cheap;
// ordering still needs the bytes.
func (h *Handle) Compare(other *Handle) int {
	if h.rec == other.rec {
		return 0
	}
	return strings.Compare(h.rec.content, other.rec.content)
}

// Clone returns a new handle to the same record, incrementing its
// live-count.
func (h *Handle) Clone() *Handle {
	h.rec.live.Add(1)
	return &Handle{rec: h.rec, pool: h.pool}
}

// Release drops this handle's reference. Releasing the last handle removes
// the record from the pool, or tombstones it for a later sweep when the
// pool was built with WithDeferredSweep. Using the handle after Release is
// a caller bug; a second Release through the same handle is a no-op.
func (h *Handle) Release() {
	rec := h.rec
	if rec == nil {
		return
	}
	h.rec = nil
	if rec.live.Add(-1) == 0 {
		h.pool.onZero(rec)
	}
}
