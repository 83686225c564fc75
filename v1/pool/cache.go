// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pool

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// retention pins the most recently acquired records with a private handle
// clone per content, so hot short-lived strings survive their last outside
// release instead of churning through create/remove cycles. Eviction and
// flush release the clone, which lets normal reclamation take over.
type retention struct {
	lru *lru.Cache[string, *Handle]
}

func newRetention(n int) *retention {
	c, err := lru.NewWithEvict(n, func(_ string, h *Handle) {
		h.Release()
	})
	if err != nil {
		panic("pool: retention size must be positive")
	}
	return &retention{lru: c}
}

// touch records key as recently used. The first touch for a key stores a
// clone of h; later touches only refresh recency.
func (r *retention) touch(key string, h *Handle) {
	if _, ok := r.lru.Get(key); ok {
		return
	}
	c := h.Clone()
	// ContainsOrAdd never replaces: if a concurrent touch stored a clone
	// first, ours must be released or its record would leak.
	if found, _ := r.lru.ContainsOrAdd(key, c); found {
		c.Release()
	}
}

func (r *retention) flush() {
	r.lru.Purge()
}

func (r *retention) len() int {
	return r.lru.Len()
}
