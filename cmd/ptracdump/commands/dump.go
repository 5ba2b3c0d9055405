/*
 * dump.go, part of ptrac.
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

package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmera/ptrac"
	"github.com/rmera/ptrac/ptracstat"
)

var (
	dumpLimit       uint32
	dumpHistField   string
	dumpHistBins    int
	dumpHistMin     float64
	dumpHistMax     float64
	dumpHistOutFile string
)

// histFieldNames maps the --histogram-field flag's accepted values to the
// FieldID they select. Only the scalar fields a histogram over raw counts
// is actually useful for are listed.
var histFieldNames = map[string]ptrac.FieldID{
	"energy": ptrac.Energy,
	"weight": ptrac.Weight,
	"time":   ptrac.Time,
	"value":  ptrac.Value,
	"angle":  ptrac.Angle,
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Decode and print a PTRAC file's histories",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().Uint32VarP(&dumpLimit, "limit", "n", 0, "stop after this many histories (0 means all)")
	dumpCmd.Flags().StringVar(&dumpHistField, "histogram-field", "", "bin this field's values across every history and render a PNG (energy|weight|time|value|angle)")
	dumpCmd.Flags().IntVar(&dumpHistBins, "histogram-bins", 20, "number of histogram bins")
	dumpCmd.Flags().Float64Var(&dumpHistMin, "histogram-min", 0, "histogram lower bound")
	dumpCmd.Flags().Float64Var(&dumpHistMax, "histogram-max", 1, "histogram upper bound")
	dumpCmd.Flags().StringVar(&dumpHistOutFile, "histogram-out", "histogram.png", "PNG file the histogram is rendered to")
}

func runDump(cmd *cobra.Command, args []string) error {
	filename := args[0]
	r, err := ptrac.Open(filename)
	if err != nil {
		return err
	}
	defer r.Close()

	out := cmd.OutOrStdout()
	var histories []ptrac.PtracHistory

	var count uint32
	for dumpLimit == 0 || count < dumpLimit {
		h, err := r.ReadHistory()
		if err != nil {
			if ptrac.IsEndOfStream(err) {
				break
			}
			return err
		}
		count++
		if dumpHistField != "" {
			histories = append(histories, h)
		}
		printHistory(out, h)
	}

	if dumpHistField == "" {
		return nil
	}
	field, ok := histFieldNames[dumpHistField]
	if !ok {
		return fmt.Errorf("ptracdump: unknown --histogram-field %q", dumpHistField)
	}
	samples := ptracstat.CollectField(histories, field)
	hist := ptracstat.NewHistogram(samples, dumpHistBins, dumpHistMin, dumpHistMax)
	if err := hist.Plot(dumpHistField, dumpHistField, dumpHistOutFile); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %d-sample histogram of %s to %s\n", hist.Total(), dumpHistField, dumpHistOutFile)
	return nil
}

func printHistory(out io.Writer, h ptrac.PtracHistory) {
	fmt.Fprintf(out, "nps=%d", h.NPS.NPS)
	if h.NPS.Cell != nil {
		fmt.Fprintf(out, " cell=%d", *h.NPS.Cell)
	}
	if h.NPS.Surface != nil {
		fmt.Fprintf(out, " surface=%d", *h.NPS.Surface)
	}
	if h.NPS.Tally != nil {
		fmt.Fprintf(out, " tally=%d", *h.NPS.Tally)
	}
	if h.NPS.Value != nil {
		fmt.Fprintf(out, " value=%g", *h.NPS.Value)
	}
	fmt.Fprintln(out)
	for _, ev := range h.Events {
		fmt.Fprintf(out, "  %s data=%v\n", ev.Type, ev.Data)
	}
}
