// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package metrics exports array runtime statistics to Prometheus.
//
// Example:
//
//	prometheus.MustRegister(metrics.NewCollector(nil))
//	http.Handle("/metrics", promhttp.Handler())
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gogpu/blend"
	"github.com/gogpu/blend/arraycore"
)

const (
	namespace = "blend"
	subsystem = "array"
)

var (
	allocationsDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "allocations_total"),
		"Storage blocks allocated by the runtime.",
		nil, nil,
	)
	releasesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "releases_total"),
		"Storage records freed by their last release.",
		nil, nil,
	)
	detachesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "detaches_total"),
		"Copy-on-write detachments of shared storage.",
		nil, nil,
	)
	failuresDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "allocation_failures_total"),
		"Allocations refused by the runtime.",
		nil, nil,
	)
	bytesDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, subsystem, "allocated_bytes_total"),
		"Bytes of storage allocated by the runtime.",
		nil, nil,
	)
)

// Collector reads runtime counters at scrape time.
type Collector struct {
	src arraycore.StatsSource
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a collector over src. When src is nil the collector
// follows whatever runtime blend.CurrentRuntime returns at scrape time, and
// emits nothing while that runtime keeps no counters.
func NewCollector(src arraycore.StatsSource) *Collector {
	return &Collector{src: src}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- allocationsDesc
	ch <- releasesDesc
	ch <- detachesDesc
	ch <- failuresDesc
	ch <- bytesDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st, ok := c.stats()
	if !ok {
		return
	}
	counter := func(d *prometheus.Desc, v uint64) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, float64(v))
	}
	counter(allocationsDesc, st.Allocations)
	counter(releasesDesc, st.Releases)
	counter(detachesDesc, st.Detaches)
	counter(failuresDesc, st.AllocFailures)
	counter(bytesDesc, st.BytesAllocated)
}

func (c *Collector) stats() (arraycore.Stats, bool) {
	if c.src != nil {
		return c.src.Stats(), true
	}
	return blend.RuntimeStats()
}
