/*
 * history_ascii.go, part of ptrac.
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

	"github.com/rmera/ptrac/internal/asciiscan"
)

// decodeHistoryASCII reads one full history (an NPS line plus its event
// chain through the LST sentinel) from an ASCII PTRAC body, per spec
// section 4.4. The NPS line and every event line can pack more than one
// field group onto a shared physical line, so only the very last line of
// the history is trimmed of its unread remainder, via a single sc.SkipLine
// call after the event chain terminates — mirroring the reference reader's
// single getline placed after its event while loop.
func decodeHistoryASCII(sc *asciiscan.Scanner, hd *HeaderDescriptor, filename string) (PtracHistory, error) {
	var hist PtracHistory

	npsLayout := hd.Layout[TagNPS]
	npsValues, err := readFieldsASCII(sc, npsLayout, true)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return hist, newLastFrameError(filename)
		}
		return hist, newError(Truncated, filename, "reading nps line: %v", err)
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
		values, err := readFieldsASCII(sc, layout, false)
		if err != nil {
			return hist, newError(Truncated, filename, "reading %s event line: %v", primary, err)
		}
		data, nextRaw, haveNext := decodeEventFields(layout, values)
		hist.Events = append(hist.Events, PtracEvent{Type: primary, BnkSubtype: subtype, Data: data})
		if !haveNext {
			break
		}
		raw = nextRaw
	}
	sc.SkipLine()
	return hist, nil
}

// readFieldsASCII reads one field group's worth of tokens. npsLine selects
// the NPS line's int64-vs-float64 split via isFloatField; event lines read
// every field as f64 unconditionally, matching the reference reader's
// uniform double read inside its event loop.
func readFieldsASCII(sc *asciiscan.Scanner, layout []FieldID, npsLine bool) ([]float64, error) {
	values := make([]float64, 0, len(layout))
	for _, id := range layout {
		if npsLine && !isFloatField(id) {
			v, err := sc.NextInt()
			if err != nil {
				return nil, err
			}
			values = append(values, float64(v))
		} else {
			v, err := sc.NextFloat()
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
	}
	return values, nil
}
