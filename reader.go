/*
 * reader.go, part of ptrac.
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
	"bufio"
	"encoding/binary"
	"io"
	"log"
	"os"
	"strings"

	"github.com/rmera/ptrac/internal/asciiscan"
	"github.com/rmera/ptrac/internal/fortran"
)

// OpenOptions configures a Reader beyond what the file itself declares.
// The zero value auto-detects format, reads binary files as
// little-endian, and uses the conservative filter default described in
// filter.go.
type OpenOptions struct {
	Format     Format           // FormatAuto (the zero value) sniffs via DetectFormat
	ByteOrder  binary.ByteOrder // binary mode only; defaults to little-endian
	FilterMode FilterMode
}

// Reader decodes the histories of one PTRAC file, having already parsed
// its header at Open. It is not safe for concurrent use.
type Reader struct {
	f        *os.File
	decomp   io.Closer
	filename string
	format   Format
	header   *HeaderDescriptor

	asc *asciiscan.Scanner
	fr  *fortran.Reader
}

// Open parses filename's PTRAC header and returns a Reader positioned at
// the first history. The file is transparently decompressed if its name
// ends in .gz or .zst (see compress.go); format sniffing and header
// parsing both happen after decompression.
func Open(filename string, opts ...OpenOptions) (*Reader, error) {
	var opt OpenOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	order := opt.ByteOrder
	if order == nil {
		order = binary.LittleEndian
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, newError(OpenFailed, filename, "%v", err)
	}

	compressed := strings.HasSuffix(filename, ".gz") || strings.HasSuffix(filename, ".zst")
	knownSize := int64(-1)
	if !compressed {
		if st, err := f.Stat(); err == nil {
			knownSize = st.Size()
		}
	}

	decompressed, decomp, err := openByteSource(f, filename)
	if err != nil {
		f.Close()
		return nil, err
	}
	src := bufio.NewReaderSize(decompressed, 64)

	r := &Reader{f: f, decomp: decomp, filename: filename}

	format := opt.Format
	if format == FormatAuto {
		detected, err := sniffFormat(src, filename)
		if err != nil {
			r.Close()
			return nil, err
		}
		format = detected
	}
	r.format = format

	switch format {
	case ASCPtrac:
		r.asc = asciiscan.New(src)
		hd, err := parseHeaderASCII(r.asc, filename)
		if err != nil {
			r.Close()
			return nil, err
		}
		r.header = hd
	case BinPtrac:
		hd, err := parseHeaderBinary(src, order, opt.FilterMode, knownSize, filename)
		if err != nil {
			r.Close()
			return nil, err
		}
		r.header = hd
		r.fr = fortran.NewReader(src, order)
	default:
		r.Close()
		return nil, newError(UnsupportedVersion, filename, "HDF5 PTRAC files are not supported")
	}

	return r, nil
}

// Header returns the parsed header. It is valid for the Reader's
// lifetime.
func (r *Reader) Header() *HeaderDescriptor { return r.header }

// Close releases the underlying file handle and any decompressor opened
// for it.
func (r *Reader) Close() error {
	var err error
	if r.decomp != nil {
		err = r.decomp.Close()
		r.decomp = nil
	}
	if r.f != nil {
		if ferr := r.f.Close(); err == nil {
			err = ferr
		}
		r.f = nil
	}
	return err
}

// ReadHistory decodes and returns the next history. It returns an error
// satisfying IsEndOfStream when the file has no more histories.
func (r *Reader) ReadHistory() (PtracHistory, error) {
	switch r.format {
	case ASCPtrac:
		return decodeHistoryASCII(r.asc, r.header, r.filename)
	case BinPtrac:
		return decodeHistoryBinary(r.fr, r.header, r.filename)
	default:
		return PtracHistory{}, newError(UnsupportedVersion, r.filename, "HDF5 PTRAC files are not supported")
	}
}

// ReadHistories decodes up to n histories, stopping early without error
// when the file ends at a history boundary. A history cut off mid-way is
// not returned: the batch ends with that history's error, alongside the
// histories decoded before it.
func (r *Reader) ReadHistories(n uint32) ([]PtracHistory, error) {
	out := make([]PtracHistory, 0, n)
	for i := uint32(0); i < n; i++ {
		h, err := r.ReadHistory()
		if err != nil {
			if IsEndOfStream(err) {
				return out, nil
			}
			return out, err
		}
		out = append(out, h)
	}
	return out, nil
}

// DetectFormat sniffs filename's PTRAC encoding without fully parsing its
// header, the way tools/sandbox.py's detect_ptrac_mode() does: an ASCII
// PTRAC file's first non-blank token is the literal "-1" followed by
// whitespace, while a binary file's first four bytes are a little-endian
// Fortran record count equal to 4 (sizeof a single i32 payload). A
// compressed file is decompressed first so the sniff sees real PTRAC
// bytes rather than the codec's own framing.
func DetectFormat(filename string) (Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, newError(OpenFailed, filename, "%v", err)
	}
	defer f.Close()

	decompressed, decomp, err := openByteSource(f, filename)
	if err != nil {
		return 0, err
	}
	if decomp != nil {
		defer decomp.Close()
	}
	return sniffFormat(bufio.NewReaderSize(decompressed, 64), filename)
}

func sniffFormat(src *bufio.Reader, filename string) (Format, error) {
	peek, err := src.Peek(16)
	if len(peek) == 0 {
		if err != nil {
			return 0, newError(Truncated, filename, "file is empty")
		}
	}

	if looksLikeASCIIVersionLine(peek) {
		return ASCPtrac, nil
	}
	if len(peek) >= 4 && binary.LittleEndian.Uint32(peek[:4]) == 4 {
		return BinPtrac, nil
	}
	log.Printf("ptrac: %s: format sniff inconclusive, defaulting to ASCII", filename)
	return ASCPtrac, nil
}

func looksLikeASCIIVersionLine(peek []byte) bool {
	sc := bufio.NewScanner(strings.NewReader(string(peek)))
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		return false
	}
	return sc.Text() == "-1"
}
