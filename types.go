/*
 * types.go, part of ptrac.
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

// Package ptrac reads MCNP PTRAC particle-track files: a self-describing
// header declares which data fields appear on each event kind, and the
// body is a dense stream of per-particle histories whose layout is driven
// entirely by that header.
package ptrac

// FieldID names a single scalar slot that can appear on an NPS line or an
// event line, per the header's data-type descriptor lists.
type FieldID int

const (
	NPS              FieldID = 1
	FirstEventType   FieldID = 2
	NPSCell          FieldID = 3
	NPSSurface       FieldID = 4
	Tally            FieldID = 5
	Value            FieldID = 6
	NextEventType    FieldID = 7
	Node             FieldID = 10
	NSR              FieldID = 11
	ZAID             FieldID = 12
	RXN              FieldID = 13
	Surface          FieldID = 14
	Angle            FieldID = 15
	TerminationType  FieldID = 16
	Branch           FieldID = 17
	Particle         FieldID = 18
	Cell             FieldID = 19
	Material         FieldID = 20
	CollisionNumber  FieldID = 21
	X                FieldID = 22
	Y                FieldID = 23
	Z                FieldID = 24
	U                FieldID = 25
	V                FieldID = 26
	W                FieldID = 27
	Energy           FieldID = 28
	Weight           FieldID = 29
	Time             FieldID = 30
)

// EventType is the primary event class recorded on an NPS or event line.
type EventType int

const (
	SRC EventType = 1000
	BNK EventType = 2000
	SUR EventType = 3000
	COL EventType = 4000
	TER EventType = 5000
	LST EventType = 9000
)

func (e EventType) String() string {
	switch e {
	case SRC:
		return "src"
	case BNK:
		return "bnk"
	case SUR:
		return "sur"
	case COL:
		return "col"
	case TER:
		return "ter"
	case LST:
		return "lst"
	default:
		return "unknown"
	}
}

// LineTag indexes the eleven fixed per-history line kinds a PTRAC header
// can describe. Representing counts/layout as arrays indexed by LineTag
// instead of a string-keyed map makes both total (every tag always has a
// slot) and immune to typo'd keys.
type LineTag int

const (
	TagNPS LineTag = iota
	TagSrc1
	TagSrc2
	TagBnk1
	TagBnk2
	TagSur1
	TagSur2
	TagCol1
	TagCol2
	TagTer1
	TagTer2
	numLineTags
)

func (t LineTag) String() string {
	return lineTagNames[t]
}

var lineTagNames = [numLineTags]string{
	TagNPS:  "nps",
	TagSrc1: "src1",
	TagSrc2: "src2",
	TagBnk1: "bnk1",
	TagBnk2: "bnk2",
	TagSur1: "sur1",
	TagSur2: "sur2",
	TagCol1: "col1",
	TagCol2: "col2",
	TagTer1: "ter1",
	TagTer2: "ter2",
}

// eventLineTags returns the {t}1, {t}2 line tags that hold the field
// layout for events of the given primary type, in the order they must be
// concatenated when decoding an event of that type.
func eventLineTags(e EventType) (first, second LineTag, ok bool) {
	switch e {
	case SRC:
		return TagSrc1, TagSrc2, true
	case BNK:
		return TagBnk1, TagBnk2, true
	case SUR:
		return TagSur1, TagSur2, true
	case COL:
		return TagCol1, TagCol2, true
	case TER:
		return TagTer1, TagTer2, true
	default:
		return 0, 0, false
	}
}

// FilterClass classifies which, if any, of MCNP's PTRAC filtering
// keywords (event=, type=, filter=, tally=) were active when the file was
// written. It drives both whether an extra header record is skipped and
// whether TALLY/VALUE fields are synthesized onto the NPS layout.
type FilterClass int

const (
	Unfiltered FilterClass = iota
	EventOrTypeOrFilter
	TallyOnly
	FilterAllCombined
)

func (f FilterClass) String() string {
	switch f {
	case Unfiltered:
		return "unfiltered"
	case EventOrTypeOrFilter:
		return "event_or_type_or_filter"
	case TallyOnly:
		return "tally_only"
	case FilterAllCombined:
		return "filter_all_combined"
	default:
		return "unknown"
	}
}

// Format selects the on-disk encoding a Reader was opened against. The
// zero value, FormatAuto, tells Open to sniff it via DetectFormat.
type Format int

const (
	FormatAuto Format = iota
	ASCPtrac
	BinPtrac
	HDF5Ptrac
)

// FilterMode overrides (or leaves automatic) the binary-mode filter
// detection described in filter.go. Auto is presently equivalent to
// Unfiltered for binary files: the reference heuristic for binary filter
// detection is known to false-positive on ordinary unfiltered files, so
// it is disabled by default (see DESIGN.md).
type FilterMode int

const (
	FilterAuto FilterMode = iota
	FilterForceUnfiltered
	FilterForceFiltered
)

// KeywordEntry is one (nkw_i, params...) group carved from the header's
// keyword-entry stream; it records which MCNP PTRAC card option produced
// it and with what parameters.
type KeywordEntry struct {
	Params []float64
}

// HeaderDescriptor is the fully parsed PTRAC header. It is built once at
// Open and is read-only thereafter.
type HeaderDescriptor struct {
	Version      int32
	Code         string
	CodeVersion  string
	LoadDate     string
	IDTimestamp  string
	Comment      string
	KeywordEntries []KeywordEntry

	Counts [numLineTags]int
	Layout [numLineTags][]FieldID

	FilterClass FilterClass
}

// PtracNps is the per-history header line: the source-particle index plus
// whichever optional identifiers the header's NPS layout declares.
type PtracNps struct {
	NPS     int64
	Cell    *int64
	Surface *int64
	Tally   *int64
	Value   *float64
}

// PtracEvent is one recorded event in a history's life.
type PtracEvent struct {
	Type       EventType
	BnkSubtype int
	Data       map[FieldID]float64
}

// PtracHistory is the full recorded life of one source particle: an NPS
// header plus the ordered chain of events it underwent. The final event's
// next-event code (not retained) was LST.
type PtracHistory struct {
	NPS    PtracNps
	Events []PtracEvent
}

// decodeNextEvent splits a raw next-event code into its primary event
// type and bank subtype. FIRST_EVENT_TYPE on the NPS line and
// NEXT_EVENT_TYPE on every event line share this same bit layout:
// sign x (primary + subtype), subtype in [0,999], sign discarded.
func decodeNextEvent(raw int64) (primary EventType, subtype int, isTerminator bool) {
	mag := raw
	if mag < 0 {
		mag = -mag
	}
	subtype = int(mag % 1000)
	primary = EventType(mag - int64(subtype))
	return primary, subtype, primary == LST
}
