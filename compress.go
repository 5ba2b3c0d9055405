/*
 * compress.go, part of ptrac.
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
	"compress/gzip"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// openByteSource wraps r in a transparent decompressor chosen by the
// filename's suffix, the same dispatch-by-suffix idiom traj/stf/stf.go
// uses for .stl/.stf/.stz/.str, adapted to the .gz/.zst suffixes PTRAC
// files are actually shipped under. Unrecognized suffixes pass r through
// unmodified: PTRAC files are commonly left uncompressed. The returned
// io.Closer is nil when no decompressor was opened.
func openByteSource(r io.Reader, filename string) (io.Reader, io.Closer, error) {
	buffered := bufio.NewReader(r)
	switch {
	case strings.HasSuffix(filename, ".gz"):
		gz, err := gzip.NewReader(buffered)
		if err != nil {
			return nil, nil, newError(OpenFailed, filename, "opening gzip stream: %v", err)
		}
		return gz, gz, nil
	case strings.HasSuffix(filename, ".zst"):
		zr, err := zstd.NewReader(buffered)
		if err != nil {
			return nil, nil, newError(OpenFailed, filename, "opening zstd stream: %v", err)
		}
		rc := zr.IOReadCloser()
		return rc, rc, nil
	default:
		return buffered, nil, nil
	}
}
