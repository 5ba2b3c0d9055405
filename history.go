/*
 * history.go, part of ptrac.
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

// isFloatField reports whether id's on-disk and in-memory representation
// is a double, per the field table in spec section 6. This split only
// applies to the NPS line: event lines read every field as f64 regardless
// of this function's answer, for fidelity with the reference reader. An
// NPS-line field this reports false for is an i64 on disk; it is carried
// as a float64 until decodeNPSFields converts it back to int64 for
// PtracNps.
func isFloatField(id FieldID) bool {
	switch id {
	case Value, X, Y, Z, U, V, W, Energy, Weight, Time, Angle:
		return true
	default:
		return false
	}
}

// decodeNPSFields maps a flat sequence of NPS-line values, in the order
// named by layout, onto a PtracNps and returns the raw FIRST_EVENT_TYPE
// code that seeds the event-decoding loop.
func decodeNPSFields(layout []FieldID, values []float64) (PtracNps, int64) {
	var nps PtracNps
	var firstEventRaw int64
	for i, id := range layout {
		if i >= len(values) {
			break
		}
		v := values[i]
		switch id {
		case NPS:
			nps.NPS = int64(v)
		case FirstEventType:
			firstEventRaw = int64(v)
		case NPSCell:
			c := int64(v)
			nps.Cell = &c
		case NPSSurface:
			s := int64(v)
			nps.Surface = &s
		case Tally:
			t := int64(v)
			nps.Tally = &t
		case Value:
			val := v
			nps.Value = &val
		}
	}
	return nps, firstEventRaw
}

// decodeEventFields maps a flat sequence of event-line values onto a
// PtracEvent's Data map and returns the raw NEXT_EVENT_TYPE code carried
// by the layout, if any. The NEXT_EVENT_TYPE value is returned rather
// than stored in Data.
func decodeEventFields(layout []FieldID, values []float64) (data map[FieldID]float64, nextRaw int64, haveNext bool) {
	data = make(map[FieldID]float64, len(layout))
	for i, id := range layout {
		if i >= len(values) {
			break
		}
		if id == NextEventType {
			nextRaw = int64(values[i])
			haveNext = true
			continue
		}
		data[id] = values[i]
	}
	return data, nextRaw, haveNext
}

// concatLayout returns the field ids of a two-line event group in read
// order: the type-specific line followed by the common physical-state
// line that always carries NEXT_EVENT_TYPE.
func concatLayout(hd *HeaderDescriptor, first, second LineTag) []FieldID {
	layout := make([]FieldID, 0, len(hd.Layout[first])+len(hd.Layout[second]))
	layout = append(layout, hd.Layout[first]...)
	layout = append(layout, hd.Layout[second]...)
	return layout
}
