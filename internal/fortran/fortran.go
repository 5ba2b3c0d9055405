/*
 * fortran.go, part of ptrac.
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

// Package fortran frames Fortran unformatted sequential records: a
// variable-length payload bracketed by a leading and a trailing 32-bit
// byte count. It is adapted from the leading/trailing-count dance in
// gochem's dcd.go initRead/nextRaw and the Gadget-2 header framing in
// guppy's snapio/gadget2.go readRawGadgetHeader, generalized from a
// single fixed-shape header record to an arbitrary sequence of records.
package fortran

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader frames one Fortran unformatted record at a time off of an
// underlying stream. It is not safe for concurrent use; callers own a
// single cursor, as described by the PTRAC parser's concurrency model.
type Reader struct {
	r         io.Reader
	order     binary.ByteOrder
	leading   uint32
	remaining uint32
	open      bool
}

// NewReader returns a Reader framing records off r in the given byte
// order.
func NewReader(r io.Reader, order binary.ByteOrder) *Reader {
	return &Reader{r: r, order: order}
}

// BeginRecord reads the leading byte count and returns it. It must be
// paired with a later EndRecord once the payload has been consumed.
func (f *Reader) BeginRecord() (uint32, error) {
	if f.open {
		return 0, fmt.Errorf("fortran: BeginRecord called while a record is already open")
	}
	var n uint32
	if err := binary.Read(f.r, f.order, &n); err != nil {
		return 0, err
	}
	f.leading = n
	f.remaining = n
	f.open = true
	return n, nil
}

// EndRecord reads the trailing byte count and fails if it disagrees with
// the leading count read by BeginRecord.
func (f *Reader) EndRecord() error {
	if !f.open {
		return fmt.Errorf("fortran: EndRecord called with no open record")
	}
	var n uint32
	if err := binary.Read(f.r, f.order, &n); err != nil {
		f.open = false
		return err
	}
	f.open = false
	if n != f.leading {
		return fmt.Errorf("fortran: record byte counts disagree: leading %d, trailing %d", f.leading, n)
	}
	return nil
}

// ReadValue reads a fixed-size value (via encoding/binary) out of the
// currently open record, tracking how many payload bytes remain.
func (f *Reader) ReadValue(v interface{}) error {
	if !f.open {
		return fmt.Errorf("fortran: ReadValue called with no open record")
	}
	n := binary.Size(v)
	if n < 0 {
		return fmt.Errorf("fortran: value of unknown size %T", v)
	}
	if uint32(n) > f.remaining {
		return fmt.Errorf("fortran: read of %d bytes exceeds %d remaining in record", n, f.remaining)
	}
	if err := binary.Read(f.r, f.order, v); err != nil {
		return err
	}
	f.remaining -= uint32(n)
	return nil
}

// ReadBytes fills buf from the currently open record.
func (f *Reader) ReadBytes(buf []byte) error {
	if !f.open {
		return fmt.Errorf("fortran: ReadBytes called with no open record")
	}
	if uint32(len(buf)) > f.remaining {
		return fmt.Errorf("fortran: read of %d bytes exceeds %d remaining in record", len(buf), f.remaining)
	}
	if _, err := io.ReadFull(f.r, buf); err != nil {
		return err
	}
	f.remaining -= uint32(len(buf))
	return nil
}

// Remaining returns the number of payload bytes not yet consumed from the
// currently open record.
func (f *Reader) Remaining() uint32 {
	return f.remaining
}
