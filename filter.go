/*
 * filter.go, part of ptrac.
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

// inferFilterASCII classifies an ASCII PTRAC file's filter keyword usage
// from the flat, ungrouped keyword-entry values that follow the leading
// nkw token on the first keyword-entry line (line 4) and on any further
// lines read to complete nkw groups. kw must have at least
// len(kw) entries available at the indices this function reads; shorter
// slices are treated as having zero at the missing positions.
//
// The rule freezes the positional heuristic documented (and exercised) in
// the reference reader: event/type/filter detection from kw[1]/kw[4], and
// tally detection from kw[3] or, for the filter_all two-line layout, from
// a negative marker at kw[9].
func inferFilterASCII(kw []float64) FilterClass {
	at := func(i int) float64 {
		if i < len(kw) {
			return kw[i]
		}
		return 0
	}

	hasEventOrFilter := at(1) > 100.0 || at(4) > 0.0
	hasTally := at(3) != 0.0 || (len(kw) >= 10 && at(9) < 0.0)

	switch {
	case hasTally && hasEventOrFilter:
		return FilterAllCombined
	case hasTally:
		return TallyOnly
	case hasEventOrFilter:
		return EventOrTypeOrFilter
	default:
		return Unfiltered
	}
}

// skipExtraASCIILine reports whether the ASCII header must skip one line
// of 10 floats between the keyword entries and the numbers line, for the
// given filter class, MCNP code banner, and keyword-group count.
func skipExtraASCIILine(fc FilterClass, code string, nkw int) bool {
	switch fc {
	case EventOrTypeOrFilter:
		return true
	case FilterAllCombined:
		return false
	case TallyOnly:
		// MCNP 6.3 tally-only files carry an extra filter-parameter line
		// that MCNP 6.2 does not.
		return code == "mcnp6" && nkw < 3
	default:
		return false
	}
}

// inferFilterBinary is disabled by default: the reference heuristic
// (nbnk2>0) || (nter1<100) || (unused[2]>0) false-positives on ordinary
// unfiltered binary files, so Auto always resolves to Unfiltered here.
// Filtered-binary support requires an explicit FilterForceFiltered
// override at Open time.
func inferFilterBinary(mode FilterMode) FilterClass {
	switch mode {
	case FilterForceFiltered:
		return FilterAllCombined
	default:
		return Unfiltered
	}
}

// injectTallyFields inserts the (TALLY, VALUE) pair into the NPS layout
// immediately after FIRST_EVENT_TYPE when fc calls for synthesized tally
// fields and the header didn't already declare TALLY on its own.
func injectTallyFields(hd *HeaderDescriptor) {
	if hd.FilterClass != TallyOnly && hd.FilterClass != FilterAllCombined {
		return
	}
	layout := hd.Layout[TagNPS]
	for _, f := range layout {
		if f == Tally {
			return
		}
	}
	pos := -1
	for i, f := range layout {
		if f == FirstEventType {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}
	newLayout := make([]FieldID, 0, len(layout)+2)
	newLayout = append(newLayout, layout[:pos+1]...)
	newLayout = append(newLayout, Tally, Value)
	newLayout = append(newLayout, layout[pos+1:]...)
	hd.Layout[TagNPS] = newLayout
	hd.Counts[TagNPS] += 2
}
