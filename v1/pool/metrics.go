// Copyright 2026 The pstr Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Stats is a point-in-time snapshot of pool activity.
type Stats struct {
	Hits       uint64 // acquires that found a live record
	Misses     uint64 // acquires that created a record
	Removals   uint64 // records removed from the pool
	Sweeps     uint64 // Sweep invocations
	Live       int64  // records currently present (incl. tombstones)
	Tombstones int64  // zero-count records awaiting a sweep
	Retained   int    // handles pinned by the retention cache
}

// Stats returns a snapshot of the pool's counters. The fields are read
// individually without a lock, so a snapshot taken under concurrent load
// is internally approximate.
func (p *Pool) Stats() Stats {
	s := Stats{
		Hits:       p.hits.Load(),
		Misses:     p.misses.Load(),
		Removals:   p.removals.Load(),
		Sweeps:     p.sweeps.Load(),
		Live:       p.live.Load(),
		Tombstones: p.tombstones.Load(),
	}
	if p.ret != nil {
		s.Retained = p.ret.len()
	}
	return s
}

// Collector exports pool statistics in prometheus format.
type Collector struct {
	pool *Pool

	hits       *prometheus.Desc
	misses     *prometheus.Desc
	removals   *prometheus.Desc
	sweeps     *prometheus.Desc
	live       *prometheus.Desc
	tombstones *prometheus.Desc
	retained   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a prometheus collector reporting on p.
func NewCollector(p *Pool) *Collector {
	return &Collector{
		pool: p,
		hits: prometheus.NewDesc("pstr_pool_hits_total",
			"Acquires that found a live record.", nil, nil),
		misses: prometheus.NewDesc("pstr_pool_misses_total",
			"Acquires that created a record.", nil, nil),
		removals: prometheus.NewDesc("pstr_pool_removals_total",
			"Records removed from the pool.", nil, nil),
		sweeps: prometheus.NewDesc("pstr_pool_sweeps_total",
			"Sweep invocations.", nil, nil),
		live: prometheus.NewDesc("pstr_pool_records",
			"Records currently present, including tombstones.", nil, nil),
		tombstones: prometheus.NewDesc("pstr_pool_tombstones",
			"Zero-count records awaiting a sweep.", nil, nil),
		retained: prometheus.NewDesc("pstr_pool_retained_handles",
			"Handles pinned by the retention cache.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.removals
	ch <- c.sweeps
	ch <- c.live
	ch <- c.tombstones
	ch <- c.retained
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.removals, prometheus.CounterValue, float64(s.Removals))
	ch <- prometheus.MustNewConstMetric(c.sweeps, prometheus.CounterValue, float64(s.Sweeps))
	ch <- prometheus.MustNewConstMetric(c.live, prometheus.GaugeValue, float64(s.Live))
	ch <- prometheus.MustNewConstMetric(c.tombstones, prometheus.GaugeValue, float64(s.Tombstones))
	ch <- prometheus.MustNewConstMetric(c.retained, prometheus.GaugeValue, float64(s.Retained))
}
