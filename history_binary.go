/*
 * history_binary.go, part of ptrac.
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

package ptrac

import (
	"errors"
	"io"

	"github.com/rmera/ptrac/internal/fortran"
)

// decodeHistoryBinary reads one full history from a sequential-binary
// PTRAC body. The NPS line is one Fortran record, and each event's two
// line kinds ({t}1 followed by {t}2) together form one record: the NPS
// record uses i64 for integer fields (matching the
// data-types record's own width for the nps tag) and f64 for fields named
// by isFloatField; event records read every field as f64 unconditionally,
// for fidelity with the reference reader's uniform double read.
func decodeHistoryBinary(fr *fortran.Reader, hd *HeaderDescriptor, filename string) (PtracHistory, error) {
	var hist PtracHistory

	npsLayout := hd.Layout[TagNPS]
	npsValues, err := readFieldsBinary(fr, npsLayout, true)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return hist, newLastFrameError(filename)
		}
		return hist, newError(Truncated, filename, "reading nps record: %v", err)
	}
	nps, raw := decodeNPSFields(npsLayout, npsValues)
	hist.NPS = nps

	for {
		primary, subtype, isTerm := decodeNextEvent(raw)
		if isTerm {
			break
		}
		first, second, ok := eventLineTags(primary)
		if !ok {
			return hist, newError(MalformedRecord, filename, "unrecognized event primary type from code %d", raw)
		}
		layout := concatLayout(hd, first, second)
		values, err := readFieldsBinary(fr, layout, false)
		if err != nil {
			return hist, newError(Truncated, filename, "reading %s event record: %v", primary, err)
		}
		data, nextRaw, haveNext := decodeEventFields(layout, values)
		hist.Events = append(hist.Events, PtracEvent{Type: primary, BnkSubtype: subtype, Data: data})
		if !haveNext {
			break
		}
		raw = nextRaw
	}
	return hist, nil
}

// readFieldsBinary reads one field group's worth of values from the next
// Fortran record. npsLine selects the NPS record's int64-vs-float64 split
// via isFloatField; event records read every field as f64 unconditionally.
func readFieldsBinary(fr *fortran.Reader, layout []FieldID, npsLine bool) ([]float64, error) {
	if _, err := fr.BeginRecord(); err != nil {
		return nil, err
	}
	values := make([]float64, 0, len(layout))
	for _, id := range layout {
		if npsLine && !isFloatField(id) {
			var v int64
			if err := fr.ReadValue(&v); err != nil {
				return nil, err
			}
			values = append(values, float64(v))
		} else {
			var v float64
			if err := fr.ReadValue(&v); err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	if err := fr.EndRecord(); err != nil {
		return nil, err
	}
	return values, nil
}
