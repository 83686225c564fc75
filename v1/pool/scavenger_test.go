// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pool

import (
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
)

func TestDeferredSweep(t *testing.T) {
	p := New(WithDeferredSweep())

	h, err := p.Acquire("x")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	h.Release()

	if !p.Contains("x") {
		t.Fatal("tombstone should remain in the pool until swept")
	}

	// A tombstone that has not been swept is revived, not recreated.
	h2, err := p.Acquire("x")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if got := p.Stats().Hits; got != 1 {
		t.Fatalf("revive should count as a hit, got %d hits", got)
	}
	h2.Release()

	if got := p.Sweep(); got != 1 {
		t.Fatalf("Sweep reclaimed %d records, want 1", got)
	}
	if p.Contains("x") {
		t.Fatal("swept record still present")
	}
	if got := p.Sweep(); got != 0 {
		t.Fatalf("second Sweep reclaimed %d records, want 0", got)
	}
}

func TestSweepSkipsLive(t *testing.T) {
	p := New(WithDeferredSweep())

	keep, err := p.Acquire("keep")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	drop, err := p.Acquire("drop")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	drop.Release()

	if got := p.Sweep(); got != 1 {
		t.Fatalf("Sweep reclaimed %d records, want 1", got)
	}
	if !p.Contains("keep") {
		t.Fatal("Sweep removed a record with a live handle")
	}
	if keep.String() != "keep" {
		t.Fatalf("live handle content = %q after sweep", keep.String())
	}
	keep.Release()
}

func TestScavenger(t *testing.T) {
	defer leaktest.Check(t)()

	p := New(WithDeferredSweep())
	p.StartScavenger(5 * time.Millisecond)

	h, err := p.Acquire("x")
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	h.Release()

	deadline := time.Now().Add(2 * time.Second)
	for p.Contains("x") {
		if time.Now().After(deadline) {
			t.Fatal("scavenger did not reclaim the tombstone")
		}
		time.Sleep(time.Millisecond)
	}

	p.StopScavenger()
}
