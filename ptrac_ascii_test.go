/*
 * ptrac_ascii_test.go, part of ptrac.
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
	"os"
	"path/filepath"
	"testing"
)

// minimalASCIIFixture is a hand-built, unfiltered, single-history ASCII
// PTRAC file: one particle that undergoes a SRC event followed by a TER
// event, matching the two-line-per-event layout the header itself declares.
const minimalASCIIFixture = `-1
mcnp6 6.20 01/01/16 12:00:00
test file
0 0 0 0 0 0 0 0 0 0
2 0 1 0 0 0 0 0 0 0 1 1 0 0 0 0 0 0 0 0
1 2 7 7
1 1000 5000 9000
`

func writeFixture(Te *testing.T, name, content string) string {
	dir := Te.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestOpenASCIIMinimal(Te *testing.T) {
	path := writeFixture(Te, "min.ptrac", minimalASCIIFixture)

	r, err := Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()

	hd := r.Header()
	if hd.Code != "mcnp6" || hd.CodeVersion != "6.20" {
		Te.Fatalf("got code %q %q", hd.Code, hd.CodeVersion)
	}
	if hd.Comment != "test file" {
		Te.Fatalf("comment = %q", hd.Comment)
	}
	if hd.FilterClass != Unfiltered {
		Te.Fatalf("filter class = %v, want Unfiltered", hd.FilterClass)
	}

	hist, err := r.ReadHistory()
	if err != nil {
		Te.Fatal(err)
	}
	if hist.NPS.NPS != 1 {
		Te.Fatalf("nps = %d, want 1", hist.NPS.NPS)
	}
	if len(hist.Events) != 2 {
		Te.Fatalf("got %d events, want 2", len(hist.Events))
	}
	if hist.Events[0].Type != SRC || hist.Events[1].Type != TER {
		Te.Fatalf("event types = %v, %v", hist.Events[0].Type, hist.Events[1].Type)
	}
	if v, ok := hist.Events[1].Data[NextEventType]; ok {
		Te.Fatalf("terminal event's Data holds next-event code %v, want it consumed by the decoder", v)
	}

	if _, err := r.ReadHistory(); !IsEndOfStream(err) {
		Te.Fatalf("second read: err = %v, want end of stream", err)
	}
}

func TestOpenAutoDetectsASCII(Te *testing.T) {
	path := writeFixture(Te, "auto.ptrac", minimalASCIIFixture)
	format, err := DetectFormat(path)
	if err != nil {
		Te.Fatal(err)
	}
	if format != ASCPtrac {
		Te.Fatalf("format = %v, want ASCPtrac", format)
	}
}

func TestReadHistoriesStopsAtEOF(Te *testing.T) {
	path := writeFixture(Te, "min.ptrac", minimalASCIIFixture)
	r, err := Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()

	histories, err := r.ReadHistories(5)
	if err != nil {
		Te.Fatal(err)
	}
	if len(histories) != 1 {
		Te.Fatalf("got %d histories, want 1", len(histories))
	}
}

func TestTruncatedHeaderFails(Te *testing.T) {
	path := writeFixture(Te, "trunc.ptrac", "-1\nmcnp6 6.20\n")
	if _, err := Open(path); err == nil {
		Te.Fatal("expected a truncated-header error, got nil")
	}
}

func TestTruncatedBodyFails(Te *testing.T) {
	truncated := minimalASCIIFixture[:len(minimalASCIIFixture)-len("5000 9000\n")] + "5000"
	path := writeFixture(Te, "trunc_body.ptrac", truncated)
	r, err := Open(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()

	if _, err := r.ReadHistory(); err == nil {
		Te.Fatal("expected a truncated-body error, got nil")
	} else if IsEndOfStream(err) {
		Te.Fatal("truncation mid-history must not read as a clean end of stream")
	}
}

func TestBadVersionRejected(Te *testing.T) {
	path := writeFixture(Te, "badver.ptrac", "3\nmcnp6 6.20\ncomment\n")
	if _, err := Open(path); err == nil {
		Te.Fatal("expected an unsupported-version error, got nil")
	}
}
