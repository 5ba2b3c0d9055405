/*
 * header_common.go, part of ptrac.
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

// keywordGroupCount walks the flat, ungrouped keyword-entry stream and
// counts how many (count, params...) groups are fully addressable so far,
// mirroring the reference reader's rescan-from-zero loop: a group is
// counted as soon as its own length slot is seen, even if not all of its
// parameter slots have arrived yet. Header-phase record/line reading
// loops on this count until it reaches the target nkw.
func keywordGroupCount(kwent []float64) int {
	count := 0
	i := 0
	for i < len(kwent) {
		n := int(kwent[i])
		count++
		i += n + 1
	}
	return count
}

// carveKeywordGroups splits the flat keyword-entry stream into up to want
// groups of (count, params...), in file order. The record boundary and
// the group boundary are independent: a group may straddle two records or
// two lines, which is why carving only ever runs against the fully
// accumulated flat stream, never against one record/line at a time.
func carveKeywordGroups(kwent []float64, want int) []KeywordEntry {
	groups := make([]KeywordEntry, 0, want)
	i := 0
	for i < len(kwent) && len(groups) < want {
		n := int(kwent[i])
		end := i + 1 + n
		if end > len(kwent) {
			end = len(kwent)
		}
		params := append([]float64(nil), kwent[i+1:end]...)
		groups = append(groups, KeywordEntry{Params: params})
		i = end
	}
	return groups
}

// numbersLine is the fixed-shape record/line declaring how many field ids
// appear on each of the eleven line kinds.
type numbersLine struct {
	nnps                                                             int32
	nsrc1, nsrc2, nbnk1, nbnk2, nsur1, nsur2, ncol1, ncol2, nter1, nter2 int64
	ipt, singleDouble                                                int32
	unused                                                            [7]int32
}

func (n *numbersLine) apply(hd *HeaderDescriptor) {
	hd.Counts[TagNPS] = int(n.nnps)
	hd.Counts[TagSrc1] = int(n.nsrc1)
	hd.Counts[TagSrc2] = int(n.nsrc2)
	hd.Counts[TagBnk1] = int(n.nbnk1)
	hd.Counts[TagBnk2] = int(n.nbnk2)
	hd.Counts[TagSur1] = int(n.nsur1)
	hd.Counts[TagSur2] = int(n.nsur2)
	hd.Counts[TagCol1] = int(n.ncol1)
	hd.Counts[TagCol2] = int(n.ncol2)
	hd.Counts[TagTer1] = int(n.nter1)
	hd.Counts[TagTer2] = int(n.nter2)
}
