/*
 * plot.go, part of ptrac.
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

package ptracstat

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot renders the histogram as a bar chart PNG, the same
// plot.New/p.Add/p.Save shape chemplot's RamaPlotParts uses for scatter
// plots, adapted to a bar chart over pre-bucketed counts instead of a
// scatter over raw (phi, psi) pairs.
func (h *Histogram) Plot(title, field, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = field
	p.Y.Label.Text = "count"
	p.Add(plotter.NewGrid())

	values := make(plotter.Values, len(h.counts))
	copy(values, h.counts)

	bars, err := plotter.NewBarChart(values, vg.Points(6))
	if err != nil {
		return fmt.Errorf("ptracstat: building bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(bars)

	labels := make([]string, len(h.counts))
	for i := range labels {
		labels[i] = fmt.Sprintf("%.3g", h.dividers[i])
	}
	p.NominalX(labels...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("ptracstat: saving %s: %w", filename, err)
	}
	return nil
}
