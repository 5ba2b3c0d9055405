/*
 * header_ascii.go, part of ptrac.
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
	"strings"

	"github.com/rmera/ptrac/internal/asciiscan"
)

// parseHeaderASCII decodes the ASCII header prologue, keyword-entry
// block, numbers line and data-type descriptor list described in
// spec section 4.2, tokenizing with the whitespace scanner in
// internal/asciiscan.
func parseHeaderASCII(sc *asciiscan.Scanner, filename string) (*HeaderDescriptor, error) {
	hd := &HeaderDescriptor{}

	verFloat, err := sc.NextFloat()
	if err != nil {
		return nil, newError(Truncated, filename, "reading version: %v", err)
	}
	hd.Version = int32(verFloat)
	if hd.Version != -1 {
		return nil, newError(UnsupportedVersion, filename, "got version %d, want -1", hd.Version)
	}
	sc.SkipLine()

	banner, err := sc.ReadLine()
	if err != nil {
		return nil, newError(Truncated, filename, "reading code banner: %v", err)
	}
	if strings.TrimSpace(banner) != "" {
		fields := strings.Fields(banner)
		if len(fields) > 0 {
			hd.Code = fields[0]
		}
		if len(fields) > 1 {
			hd.CodeVersion = fields[1]
		}
		if len(fields) > 2 {
			hd.LoadDate = fields[2]
		}
		if len(fields) > 4 {
			hd.IDTimestamp = strings.TrimSpace(fields[3] + " " + fields[4])
		} else if len(fields) > 3 {
			hd.IDTimestamp = strings.TrimSpace(fields[3])
		}
	}

	comment, err := sc.ReadLine()
	if err != nil {
		return nil, newError(Truncated, filename, "reading comment line: %v", err)
	}
	hd.Comment = comment

	nkwFloat, err := sc.NextFloat()
	if err != nil {
		return nil, newError(Truncated, filename, "reading keyword-entry count: %v", err)
	}
	nkw := int(nkwFloat)

	var kwent []float64
	for i := 0; i < 9; i++ {
		v, err := sc.NextFloat()
		if err != nil {
			return nil, newError(Truncated, filename, "reading keyword entries: %v", err)
		}
		kwent = append(kwent, v)
	}
	for keywordGroupCount(kwent) < nkw {
		for i := 0; i < 10; i++ {
			v, err := sc.NextFloat()
			if err != nil {
				return nil, newError(Truncated, filename, "reading keyword entries: %v", err)
			}
			kwent = append(kwent, v)
		}
	}
	hd.KeywordEntries = carveKeywordGroups(kwent, nkw)
	hd.FilterClass = inferFilterASCII(kwent)

	if skipExtraASCIILine(hd.FilterClass, hd.Code, nkw) {
		for i := 0; i < 10; i++ {
			if _, err := sc.NextFloat(); err != nil {
				return nil, newError(Truncated, filename, "skipping filter-parameters line: %v", err)
			}
		}
	}

	var nl numbersLine
	ints := make([]int64, 0, 20)
	for i := 0; i < 13; i++ {
		v, err := sc.NextInt()
		if err != nil {
			return nil, newError(Truncated, filename, "reading numbers line: %v", err)
		}
		ints = append(ints, v)
	}
	for i := 0; i < 7; i++ {
		if _, err := sc.NextInt(); err != nil {
			return nil, newError(Truncated, filename, "reading numbers line: %v", err)
		}
	}
	nl.nnps = int32(ints[0])
	nl.nsrc1, nl.nsrc2 = ints[1], ints[2]
	nl.nbnk1, nl.nbnk2 = ints[3], ints[4]
	nl.nsur1, nl.nsur2 = ints[5], ints[6]
	nl.ncol1, nl.ncol2 = ints[7], ints[8]
	nl.nter1, nl.nter2 = ints[9], ints[10]
	nl.ipt = int32(ints[11])
	nl.singleDouble = int32(ints[12])
	nl.apply(hd)

	if err := readDataTypesASCII(sc, hd, filename); err != nil {
		return nil, err
	}

	injectTallyFields(hd)
	return hd, nil
}

func readDataTypesASCII(sc *asciiscan.Scanner, hd *HeaderDescriptor, filename string) error {
	order := []LineTag{TagNPS, TagSrc1, TagSrc2, TagBnk1, TagBnk2, TagSur1, TagSur2, TagCol1, TagCol2, TagTer1, TagTer2}
	for _, tag := range order {
		n := hd.Counts[tag]
		ids := make([]FieldID, 0, n)
		for i := 0; i < n; i++ {
			v, err := sc.NextInt()
			if err != nil {
				return newError(Truncated, filename, "reading data types for %s: %v", tag, err)
			}
			ids = append(ids, FieldID(v))
		}
		hd.Layout[tag] = ids
	}
	if len(hd.Layout[TagNPS]) < 2 || hd.Layout[TagNPS][0] != NPS || hd.Layout[TagNPS][1] != FirstEventType {
		return newError(MalformedRecord, filename, "nps layout does not begin with NPS, FIRST_EVENT_TYPE: %v", hd.Layout[TagNPS])
	}
	return nil
}
