/*
 * ptracstat.go, part of ptrac.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 */

// Package ptracstat bins decoded PTRAC event data into histograms, the
// same two-step divider-then-stat.Histogram shape as histo.Data.ReHisto,
// adapted from a generic 2D histogram matrix to the one-dimensional case
// PTRAC's scalar fields (energy, weight, time, ...) actually need.
package ptracstat

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/rmera/ptrac"
)

// Histogram bins a fixed set of samples into evenly-spaced buckets
// between its dividers.
type Histogram struct {
	dividers []float64
	counts   []float64
	total    int
}

// NewHistogram bins samples into nbins equal-width buckets spanning
// [min, max). Samples outside that range are omitted and not counted in
// Total.
func NewHistogram(samples []float64, nbins int, min, max float64) *Histogram {
	dividers := make([]float64, nbins+1)
	floats.Span(dividers, min, max)

	// stat.Histogram panics on samples outside the dividers, so they are
	// dropped before binning.
	lo, hi := dividers[0], dividers[len(dividers)-1]
	sorted := make([]float64, 0, len(samples))
	for _, s := range samples {
		if s >= lo && s < hi {
			sorted = append(sorted, s)
		}
	}
	sort.Float64s(sorted)

	counts := stat.Histogram(nil, dividers, sorted, nil)
	return &Histogram{dividers: dividers, counts: counts, total: len(sorted)}
}

// Dividers returns a copy of the histogram's bin edges, len(Counts)+1
// values.
func (h *Histogram) Dividers() []float64 { return append([]float64(nil), h.dividers...) }

// Counts returns a copy of the per-bin sample counts.
func (h *Histogram) Counts() []float64 { return append([]float64(nil), h.counts...) }

// Total is the number of samples the histogram was built from.
func (h *Histogram) Total() int { return h.total }

// Normalize rescales Counts in place so they sum to 1, dividing by the
// total sample count exactly as histo.Data.Normalize does.
func (h *Histogram) Normalize() {
	if h.total == 0 {
		return
	}
	floats.Scale(1/float64(h.total), h.counts)
}

// CollectField gathers every occurrence of field across every event in
// histories into a flat sample slice suitable for NewHistogram. The NPS
// line's own VALUE field, if present, is included alongside event data
// when field is ptrac.Value.
func CollectField(histories []ptrac.PtracHistory, field ptrac.FieldID) []float64 {
	var samples []float64
	for _, h := range histories {
		if field == ptrac.Value && h.NPS.Value != nil {
			samples = append(samples, *h.NPS.Value)
		}
		for _, ev := range h.Events {
			if v, ok := ev.Data[field]; ok {
				samples = append(samples, v)
			}
		}
	}
	return samples
}
