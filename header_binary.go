/*
 * header_binary.go, part of ptrac.
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
	"encoding/binary"
	"io"
	"strings"

	"github.com/rmera/ptrac/internal/fortran"
)

var binaryLineOrder = []LineTag{
	TagNPS, TagSrc1, TagSrc2, TagBnk1, TagBnk2, TagSur1, TagSur2, TagCol1, TagCol2, TagTer1, TagTer2,
}

// parseHeaderBinary decodes the sequential-binary header described in
// spec section 4.2 (version, code-identification, comment, keyword
// entries, numbers, optional filter-parameters, data types), each
// bracketed by a Fortran unformatted record.
// knownSize is the uncompressed file's byte length, used only for the
// version record's sanity check, or -1 if the byte source is compressed
// or otherwise of unknown length (the check is then skipped).
func parseHeaderBinary(r io.Reader, order binary.ByteOrder, filterMode FilterMode, knownSize int64, filename string) (*HeaderDescriptor, error) {
	fr := fortran.NewReader(r, order)
	hd := &HeaderDescriptor{}

	// 1. Version record: exactly one i32, which must be -1. The leading
	// byte count is sanity-checked against sizeof(i32) and file length
	// because this is the only record whose shape is known before any
	// other header bytes have been read.
	n, err := fr.BeginRecord()
	if err != nil {
		return nil, newError(Truncated, filename, "reading version record: %v", err)
	}
	if n != 4 || (knownSize > 0 && int64(n) >= knownSize) {
		return nil, newError(MalformedRecord, filename, "version record size %d is invalid for a %d-byte file", n, knownSize)
	}
	var version int32
	if err := fr.ReadValue(&version); err != nil {
		return nil, newError(Truncated, filename, "reading version value: %v", err)
	}
	if err := fr.EndRecord(); err != nil {
		return nil, newError(MalformedRecord, filename, "%v", err)
	}
	if version != -1 {
		return nil, newError(UnsupportedVersion, filename, "got version %d, want -1", version)
	}
	hd.Version = version

	// 2. Code-identification record.
	if _, err := fr.BeginRecord(); err != nil {
		return nil, newError(Truncated, filename, "reading code-identification record: %v", err)
	}
	code := make([]byte, 8)
	codever := make([]byte, 5)
	loaddate := make([]byte, 8)
	idtm := make([]byte, 19)
	for _, b := range [][]byte{code, codever, loaddate, idtm} {
		if err := fr.ReadBytes(b); err != nil {
			return nil, newError(Truncated, filename, "reading code-identification fields: %v", err)
		}
	}
	if err := fr.EndRecord(); err != nil {
		return nil, newError(MalformedRecord, filename, "%v", err)
	}
	hd.Code = string(code)
	hd.CodeVersion = string(codever)
	hd.LoadDate = string(loaddate)
	hd.IDTimestamp = strings.TrimSpace(string(idtm))

	// 3. Comment record: 80 or 128 bytes.
	commentLen, err := fr.BeginRecord()
	if err != nil {
		return nil, newError(Truncated, filename, "reading comment record: %v", err)
	}
	if commentLen != 80 && commentLen != 128 {
		return nil, newError(MalformedRecord, filename, "comment record has %d bytes, want 80 or 128", commentLen)
	}
	comment := make([]byte, commentLen)
	if err := fr.ReadBytes(comment); err != nil {
		return nil, newError(Truncated, filename, "reading comment: %v", err)
	}
	if err := fr.EndRecord(); err != nil {
		return nil, newError(MalformedRecord, filename, "%v", err)
	}
	hd.Comment = string(comment)

	// 4. Keyword-entry records: 10 float64 each, straddling record
	// boundaries as needed.
	var kwent []float64
	nkw := -1
	for nkw == -1 || keywordGroupCount(kwent) < nkw {
		if _, err := fr.BeginRecord(); err != nil {
			return nil, newError(Truncated, filename, "reading keyword-entry record: %v", err)
		}
		var block [10]float64
		for i := range block {
			if err := fr.ReadValue(&block[i]); err != nil {
				return nil, newError(Truncated, filename, "reading keyword entries: %v", err)
			}
		}
		if err := fr.EndRecord(); err != nil {
			return nil, newError(MalformedRecord, filename, "%v", err)
		}
		if nkw == -1 {
			nkw = int(block[0])
			kwent = append(kwent, block[1:]...)
		} else {
			kwent = append(kwent, block[:]...)
		}
	}
	hd.KeywordEntries = carveKeywordGroups(kwent, nkw)

	// 5. Numbers record.
	if _, err := fr.BeginRecord(); err != nil {
		return nil, newError(Truncated, filename, "reading numbers record: %v", err)
	}
	var nl numbersLine
	fields := []interface{}{
		&nl.nnps,
		&nl.nsrc1, &nl.nsrc2, &nl.nbnk1, &nl.nbnk2,
		&nl.nsur1, &nl.nsur2, &nl.ncol1, &nl.ncol2,
		&nl.nter1, &nl.nter2,
		&nl.ipt, &nl.singleDouble, &nl.unused,
	}
	for _, f := range fields {
		if err := fr.ReadValue(f); err != nil {
			return nil, newError(Truncated, filename, "reading numbers record: %v", err)
		}
	}
	if err := fr.EndRecord(); err != nil {
		return nil, newError(MalformedRecord, filename, "%v", err)
	}
	nl.apply(hd)

	// 6. Filter inference (binary): disabled by default, see filter.go.
	hd.FilterClass = inferFilterBinary(filterMode)
	if hd.FilterClass != Unfiltered {
		if _, err := fr.BeginRecord(); err != nil {
			return nil, newError(Truncated, filename, "reading filter-parameters record: %v", err)
		}
		var discard [10]float64
		for i := range discard {
			if err := fr.ReadValue(&discard[i]); err != nil {
				return nil, newError(Truncated, filename, "reading filter-parameters record: %v", err)
			}
		}
		if err := fr.EndRecord(); err != nil {
			return nil, newError(MalformedRecord, filename, "%v", err)
		}
	}

	// 7. Data-types record.
	if _, err := fr.BeginRecord(); err != nil {
		return nil, newError(Truncated, filename, "reading data-types record: %v", err)
	}
	for _, tag := range binaryLineOrder {
		count := hd.Counts[tag]
		ids := make([]FieldID, count)
		for i := 0; i < count; i++ {
			if tag == TagNPS {
				var v int64
				if err := fr.ReadValue(&v); err != nil {
					return nil, newError(Truncated, filename, "reading data types for %s: %v", tag, err)
				}
				ids[i] = FieldID(v)
			} else {
				var v int32
				if err := fr.ReadValue(&v); err != nil {
					return nil, newError(Truncated, filename, "reading data types for %s: %v", tag, err)
				}
				ids[i] = FieldID(v)
			}
		}
		hd.Layout[tag] = ids
	}
	if err := fr.EndRecord(); err != nil {
		return nil, newError(MalformedRecord, filename, "%v", err)
	}

	if len(hd.Layout[TagNPS]) < 2 || hd.Layout[TagNPS][0] != NPS || hd.Layout[TagNPS][1] != FirstEventType {
		return nil, newError(MalformedRecord, filename, "nps layout does not begin with NPS, FIRST_EVENT_TYPE: %v", hd.Layout[TagNPS])
	}

	injectTallyFields(hd)
	return hd, nil
}
