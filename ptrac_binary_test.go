/*
 * ptrac_binary_test.go, part of ptrac.
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
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func binRecord(buf *bytes.Buffer, payload []byte) {
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
}

func fixedBytes(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	for i := len(s); i < n; i++ {
		b[i] = ' '
	}
	return b
}

// buildMinimalBinaryFixture mirrors minimalASCIIFixture field for field: one
// history, a SRC event followed by a TER event whose next-event code is the
// LST terminator.
func buildMinimalBinaryFixture() []byte {
	var buf bytes.Buffer

	var version bytes.Buffer
	binary.Write(&version, binary.LittleEndian, int32(-1))
	binRecord(&buf, version.Bytes())

	var codeID bytes.Buffer
	codeID.Write(fixedBytes("mcnp6", 8))
	codeID.Write(fixedBytes("6.20", 5))
	codeID.Write(fixedBytes("01/01/16", 8))
	codeID.Write(fixedBytes("12:00:00", 19))
	binRecord(&buf, codeID.Bytes())

	binRecord(&buf, fixedBytes("test file", 80))

	var kwent bytes.Buffer
	var block [10]float64 // nkw=0, nine unused parameter slots
	for _, v := range block {
		binary.Write(&kwent, binary.LittleEndian, v)
	}
	binRecord(&buf, kwent.Bytes())

	var numbers bytes.Buffer
	binary.Write(&numbers, binary.LittleEndian, int32(2))  // nnps
	binary.Write(&numbers, binary.LittleEndian, int64(0))  // nsrc1
	binary.Write(&numbers, binary.LittleEndian, int64(1))  // nsrc2
	binary.Write(&numbers, binary.LittleEndian, int64(0))  // nbnk1
	binary.Write(&numbers, binary.LittleEndian, int64(0))  // nbnk2
	binary.Write(&numbers, binary.LittleEndian, int64(0))  // nsur1
	binary.Write(&numbers, binary.LittleEndian, int64(0))  // nsur2
	binary.Write(&numbers, binary.LittleEndian, int64(0))  // ncol1
	binary.Write(&numbers, binary.LittleEndian, int64(0))  // ncol2
	binary.Write(&numbers, binary.LittleEndian, int64(0))  // nter1
	binary.Write(&numbers, binary.LittleEndian, int64(1))  // nter2
	binary.Write(&numbers, binary.LittleEndian, int32(1))  // ipt
	binary.Write(&numbers, binary.LittleEndian, int32(0))  // single/double
	for i := 0; i < 7; i++ {
		binary.Write(&numbers, binary.LittleEndian, int32(0))
	}
	binRecord(&buf, numbers.Bytes())

	var dtypes bytes.Buffer
	binary.Write(&dtypes, binary.LittleEndian, int64(NPS))
	binary.Write(&dtypes, binary.LittleEndian, int64(FirstEventType))
	binary.Write(&dtypes, binary.LittleEndian, int32(NextEventType)) // src2
	binary.Write(&dtypes, binary.LittleEndian, int32(NextEventType)) // ter2
	binRecord(&buf, dtypes.Bytes())

	var nps bytes.Buffer
	binary.Write(&nps, binary.LittleEndian, int64(1))    // NPS
	binary.Write(&nps, binary.LittleEndian, int64(1000)) // FIRST_EVENT_TYPE (SRC)
	binRecord(&buf, nps.Bytes())

	var srcEvt bytes.Buffer
	binary.Write(&srcEvt, binary.LittleEndian, float64(5000)) // NEXT_EVENT_TYPE (TER)
	binRecord(&buf, srcEvt.Bytes())

	var terEvt bytes.Buffer
	binary.Write(&terEvt, binary.LittleEndian, float64(9000)) // NEXT_EVENT_TYPE (LST)
	binRecord(&buf, terEvt.Bytes())

	return buf.Bytes()
}

func TestOpenBinaryMinimal(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "min.bptrac")
	if err := os.WriteFile(path, buildMinimalBinaryFixture(), 0o644); err != nil {
		Te.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()

	// The binary code field is kept verbatim, trailing padding included.
	if r.Header().Code != "mcnp6   " {
		Te.Fatalf("code = %q, want %q", r.Header().Code, "mcnp6   ")
	}

	hist, err := r.ReadHistory()
	if err != nil {
		Te.Fatal(err)
	}
	if hist.NPS.NPS != 1 || len(hist.Events) != 2 {
		Te.Fatalf("nps=%d events=%d, want nps=1 events=2", hist.NPS.NPS, len(hist.Events))
	}
	if hist.Events[0].Type != SRC || hist.Events[1].Type != TER {
		Te.Fatalf("event types = %v, %v", hist.Events[0].Type, hist.Events[1].Type)
	}

	if _, err := r.ReadHistory(); !IsEndOfStream(err) {
		Te.Fatalf("second read: err = %v, want end of stream", err)
	}
}

func TestDetectFormatBinary(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "min.bptrac")
	if err := os.WriteFile(path, buildMinimalBinaryFixture(), 0o644); err != nil {
		Te.Fatal(err)
	}

	format, err := DetectFormat(path)
	if err != nil {
		Te.Fatal(err)
	}
	if format != BinPtrac {
		Te.Fatalf("format = %v, want BinPtrac", format)
	}
}

func TestBinaryTruncatedVersionRecord(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "bad.bptrac")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		Te.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		Te.Fatal("expected a truncated-version-record error, got nil")
	}
}
