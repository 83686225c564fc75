// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package pool implements a process-wide, concurrency-safe string intern
// pool: a content-keyed map that deduplicates equal strings into a single
// reference-counted allocation.
//
// The pool provides:
//   - Linearizable get-or-create per content key
//   - Reference-counted record lifetimes with eager or deferred reclamation
//   - Key-sharded locking so unrelated content never contends
//   - An optional LRU retention cache for churn-heavy workloads
//
// Records leave the pool when their last handle is released. A pool built
// with WithDeferredSweep keeps zero-count records around as tombstones
// until Sweep (or the background scavenger) reclaims them, which avoids
// create/remove churn for short-lived values at the cost of temporary
// over-retention.
package pool

import (
	"strconv"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

const (
	// numShards partitions the keyspace by content hash. Power of two so
	// shard selection is a mask, not a modulo.
	numShards = 64
	shardMask = numShards - 1
)

type shard struct {
	mu sync.RWMutex
	m  map[string]*record
}

// Pool is a deduplicating map from string content to its unique intern
// record. The zero value is not usable; call New.
type Pool struct {
	shards [numShards]shard

	maxRecords int64 // 0 = unbounded
	deferred   bool  // tombstone on zero instead of removing eagerly

	live       atomic.Int64
	tombstones atomic.Int64
	hits       atomic.Uint64
	misses     atomic.Uint64
	removals   atomic.Uint64
	sweeps     atomic.Uint64

	ret *retention // nil unless WithRetention

	scavengerStop chan struct{}
}

// Opt is a configuration option for a pool.
type Opt func(*Pool)

// WithMaxRecords caps the number of records the pool will hold. Acquire
// returns a CapacityErr error when a miss would exceed the cap; hits are
// unaffected. The default is unbounded.
func WithMaxRecords(n int) Opt {
	return func(p *Pool) {
		if n > 0 {
			p.maxRecords = int64(n)
		}
	}
}

// WithDeferredSweep keeps zero-count records in the pool as tombstones
// until Sweep reclaims them. A tombstone revived by a concurrent Acquire
// counts as a hit. The default is eager removal on the last release.
func WithDeferredSweep() Opt {
	return func(p *Pool) {
		p.deferred = true
	}
}

// WithRetention keeps a private reference to the n most recently acquired
// records so hot short-lived strings are not repeatedly created and
// removed. Evicted entries release their reference; Flush empties the
// cache.
func WithRetention(n int) Opt {
	return func(p *Pool) {
		if n > 0 {
			p.ret = newRetention(n)
		}
	}
}

// New creates an empty pool.
func New(opts ...Opt) *Pool {
	p := &Pool{scavengerStop: make(chan struct{})}
	for i := range p.shards {
		p.shards[i].m = make(map[string]*record)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns the process-wide pool, creating it on first use. It is
// unbounded and uses eager removal, so its Acquire never fails.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = New()
	})
	return defaultPool
}

// Acquire returns a handle to the unique record for s. If a live record
// exists its live-count is incremented (hit, no allocation); otherwise a
// fresh record is created with live-count 1 (miss). Concurrent acquires
// for the same content observe a single winner and all reference the same
// record. The error is non-nil only for pools built with WithMaxRecords.
func (p *Pool) Acquire(s string) (*Handle, error) {
	hash := xxhash.Sum64String(s)
	sh := &p.shards[hash&shardMask]

	// Fast path: existing record under the read lock.
	sh.mu.RLock()
	rec := sh.m[s]
	if rec != nil && p.retainLocked(rec) {
		sh.mu.RUnlock()
		return p.acquired(s, rec, true), nil
	}
	sh.mu.RUnlock()

	// Slow path: create under the write lock. Re-check first; another
	// goroutine may have won the race while we were unlocked.
	sh.mu.Lock()
	rec = sh.m[s]
	if rec != nil && p.retainLocked(rec) {
		sh.mu.Unlock()
		return p.acquired(s, rec, true), nil
	}
	if p.maxRecords > 0 && p.live.Load() >= p.maxRecords {
		sh.mu.Unlock()
		return nil, &Error{
			Code:    CapacityErr,
			Message: "pool is at capacity (" + strconv.FormatInt(p.maxRecords, 10) + " records)",
		}
	}
	fresh := newRecord(s, hash)
	if rec != nil {
		// The entry maps to a dying record whose retain failed. Overwrite
		// it; the loser's pending removal no-ops on its identity re-check.
		p.removals.Add(1)
	} else {
		p.live.Add(1)
	}
	sh.m[fresh.content] = fresh
	sh.mu.Unlock()
	return p.acquired(fresh.content, fresh, false), nil
}

// AcquireBytes validates that b is UTF-8 text and interns it. It fails
// with an InvalidEncodingErr error for non-text input; the pool is never
// consulted for invalid bytes.
func (p *Pool) AcquireBytes(b []byte) (*Handle, error) {
	if !utf8.Valid(b) {
		return nil, &Error{
			Code:    InvalidEncodingErr,
			Message: "content is not valid UTF-8",
		}
	}
	return p.Acquire(string(b))
}

// retainLocked increments rec's live-count on the hit path. The caller
// holds the owning shard lock (read or write).
//
// In eager mode a zero count means the record is past the point of no
// return: its last release is about to remove it, so retain fails and the
// caller creates a fresh record. In deferred mode zero-count records are
// tombstones that have not been swept yet; reviving one is safe because
// Sweep requires the shard write lock, which the caller's lock excludes.
func (p *Pool) retainLocked(rec *record) bool {
	if p.deferred {
		if rec.live.Add(1) == 1 {
			p.tombstones.Add(-1)
		}
		return true
	}
	return rec.retain()
}

// acquired finishes an acquire: stats, retention touch, handle.
func (p *Pool) acquired(key string, rec *record, hit bool) *Handle {
	if hit {
		p.hits.Add(1)
	} else {
		p.misses.Add(1)
	}
	h := &Handle{rec: rec, pool: p}
	if p.ret != nil {
		p.ret.touch(key, h)
	}
	return h
}

// onZero runs when a record's live-count reaches zero. Eager mode removes
// the entry, unless a racing Acquire already replaced it with a fresh
// record for the same content. Deferred mode only marks the tombstone.
func (p *Pool) onZero(rec *record) {
	if p.deferred {
		p.tombstones.Add(1)
		return
	}
	sh := &p.shards[rec.hash&shardMask]
	sh.mu.Lock()
	if sh.m[rec.content] == rec {
		delete(sh.m, rec.content)
		p.live.Add(-1)
		p.removals.Add(1)
	}
	sh.mu.Unlock()
}

// Contains reports whether a record for s is currently present, live or
// tombstoned.
func (p *Pool) Contains(s string) bool {
	sh := &p.shards[xxhash.Sum64String(s)&shardMask]
	sh.mu.RLock()
	_, ok := sh.m[s]
	sh.mu.RUnlock()
	return ok
}

// Len returns the number of records currently present, live or tombstoned.
func (p *Pool) Len() int {
	n := 0
	for i := range p.shards {
		sh := &p.shards[i]
		sh.mu.RLock()
		n += len(sh.m)
		sh.mu.RUnlock()
	}
	return n
}

// Flush releases every handle held by the retention cache. No-op for pools
// without WithRetention.
func (p *Pool) Flush() {
	if p.ret != nil {
		p.ret.flush()
	}
}
