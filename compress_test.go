/*
 * compress_test.go, part of ptrac.
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
	"compress/gzip"
	"io"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestOpenByteSourcePassthrough(Te *testing.T) {
	r, closer, err := openByteSource(bytes.NewReader([]byte("-1\n")), "plain.ptrac")
	if err != nil {
		Te.Fatal(err)
	}
	if closer != nil {
		Te.Fatal("passthrough source should not return a Closer")
	}
	got, err := io.ReadAll(r)
	if err != nil {
		Te.Fatal(err)
	}
	if string(got) != "-1\n" {
		Te.Fatalf("got %q", got)
	}
}

func TestOpenByteSourceGzip(Te *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte("-1\nmcnp6\n"))
	gz.Close()

	r, closer, err := openByteSource(&buf, "file.ptrac.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if closer == nil {
		Te.Fatal("gzip source should return a Closer")
	}
	defer closer.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		Te.Fatal(err)
	}
	if string(got) != "-1\nmcnp6\n" {
		Te.Fatalf("got %q", got)
	}
}

func TestOpenByteSourceZstd(Te *testing.T) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		Te.Fatal(err)
	}
	compressed := enc.EncodeAll([]byte("-1\nmcnp6\n"), nil)
	enc.Close()

	r, closer, err := openByteSource(bytes.NewReader(compressed), "file.ptrac.zst")
	if err != nil {
		Te.Fatal(err)
	}
	if closer == nil {
		Te.Fatal("zstd source should return a Closer")
	}
	defer closer.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		Te.Fatal(err)
	}
	if string(got) != "-1\nmcnp6\n" {
		Te.Fatalf("got %q", got)
	}
}
