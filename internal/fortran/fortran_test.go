/*
 * fortran_test.go, part of ptrac.
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

package fortran

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
)

func writeRecord(buf *bytes.Buffer, payload []byte) {
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	binary.Write(buf, binary.LittleEndian, uint32(len(payload)))
}

func TestReadValueRoundTrip(Te *testing.T) {
	var payload bytes.Buffer
	binary.Write(&payload, binary.LittleEndian, int32(-1))

	var buf bytes.Buffer
	writeRecord(&buf, payload.Bytes())

	r := NewReader(&buf, binary.LittleEndian)
	n, err := r.BeginRecord()
	if err != nil {
		Te.Fatal(err)
	}
	if n != 4 {
		Te.Fatalf("leading count = %d, want 4", n)
	}
	var v int32
	if err := r.ReadValue(&v); err != nil {
		Te.Fatal(err)
	}
	if v != -1 {
		Te.Fatalf("value = %d, want -1", v)
	}
	if err := r.EndRecord(); err != nil {
		Te.Fatal(err)
	}
}

func TestEndRecordMismatch(Te *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(4))
	binary.Write(&buf, binary.LittleEndian, int32(7))
	binary.Write(&buf, binary.LittleEndian, uint32(8))

	r := NewReader(&buf, binary.LittleEndian)
	if _, err := r.BeginRecord(); err != nil {
		Te.Fatal(err)
	}
	var v int32
	if err := r.ReadValue(&v); err != nil {
		Te.Fatal(err)
	}
	if err := r.EndRecord(); err == nil {
		Te.Fatal("expected byte-count mismatch error, got nil")
	}
}

func TestReadValueExceedsRemaining(Te *testing.T) {
	var buf bytes.Buffer
	writeRecord(&buf, []byte{1, 2, 3, 4})

	r := NewReader(&buf, binary.LittleEndian)
	if _, err := r.BeginRecord(); err != nil {
		Te.Fatal(err)
	}
	var v int64
	if err := r.ReadValue(&v); err == nil {
		Te.Fatal("expected an over-read error, got nil")
	}
}

func TestReadBytes(Te *testing.T) {
	var buf bytes.Buffer
	writeRecord(&buf, []byte("abcdefgh"))

	r := NewReader(&buf, binary.LittleEndian)
	if _, err := r.BeginRecord(); err != nil {
		Te.Fatal(err)
	}
	got := make([]byte, 8)
	if err := r.ReadBytes(got); err != nil {
		Te.Fatal(err)
	}
	if string(got) != "abcdefgh" {
		Te.Fatalf("got %q, want %q", got, "abcdefgh")
	}
	if r.Remaining() != 0 {
		Te.Fatalf("remaining = %d, want 0", r.Remaining())
	}
	if err := r.EndRecord(); err != nil {
		Te.Fatal(err)
	}
}

func TestBeginRecordEOF(Te *testing.T) {
	r := NewReader(bytes.NewReader(nil), binary.LittleEndian)
	if _, err := r.BeginRecord(); err != io.EOF {
		Te.Fatalf("err = %v, want io.EOF", err)
	}
}
