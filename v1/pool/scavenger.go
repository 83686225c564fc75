// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pool

import (
	"time"
)

// Sweep reclaims tombstoned records: entries whose live-count is still
// zero are removed under their shard's write lock, so a sweep can never
// race a revive (which holds the read lock). Returns the number of
// reclaimed records. A no-op for pools without tombstones.
func (p *Pool) Sweep() int {
	p.sweeps.Add(1)
	if p.tombstones.Load() == 0 {
		return 0
	}

	reclaimed := 0
	for i := range p.shards {
		sh := &p.shards[i]
		sh.mu.Lock()
		for k, rec := range sh.m {
			if rec.live.Load() == 0 {
				delete(sh.m, k)
				reclaimed++
			}
		}
		sh.mu.Unlock()
	}

	if reclaimed > 0 {
		p.live.Add(int64(-reclaimed))
		p.tombstones.Add(int64(-reclaimed))
		p.removals.Add(uint64(reclaimed))
	}
	return reclaimed
}

// StartScavenger starts a background goroutine that sweeps tombstoned
// records at the given interval. Only meaningful for pools built with
// WithDeferredSweep.
func (p *Pool) StartScavenger(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.Sweep()
			case <-p.scavengerStop:
				return
			}
		}
	}()
}

// StopScavenger stops the background scavenger.
func (p *Pool) StopScavenger() {
	close(p.scavengerStop)
}
