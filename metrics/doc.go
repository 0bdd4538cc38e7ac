// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus counters for token issue and
// revocation, authorization rejections, votes and member lookups, plus
// gauges for the revocation list and ballot count.
package metrics
