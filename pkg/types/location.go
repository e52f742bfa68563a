// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the rna-check pipeline:
// genomes and their features, genomic locations, homology hits, and the
// stage configuration structs.
package types

import (
	"fmt"
	"strings"
)

// Strand identifies which DNA strand a location lies on.
type Strand string

const (
	StrandPlus  Strand = "+"
	StrandMinus Strand = "-"
)

// Valid reports whether the strand is one of the two known values.
func (s Strand) Valid() bool {
	return s == StrandPlus || s == StrandMinus
}

// Location is a contiguous region on one strand of one contig. Coordinates
// are 1-based and inclusive at both ends, so a single base has Begin == End.
type Location struct {
	Contig string `json:"contig" yaml:"contig"`
	Begin  int    `json:"begin" yaml:"begin"`
	End    int    `json:"end" yaml:"end"`
	Strand Strand `json:"strand" yaml:"strand"`
}

// NewLocation validates and builds a Location. Begin must not exceed End,
// coordinates must be positive, and the strand must be "+" or "-".
func NewLocation(contig string, begin, end int, strand Strand) (Location, error) {
	loc := Location{Contig: contig, Begin: begin, End: end, Strand: strand}
	if err := loc.Validate(); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Validate checks the Location invariants without coercing anything.
func (l Location) Validate() error {
	if l.Contig == "" {
		return fmt.Errorf("location has no contig")
	}
	if l.Begin < 1 || l.End < 1 {
		return fmt.Errorf("location %s[%d,%d] has non-positive coordinates", l.Contig, l.Begin, l.End)
	}
	if l.Begin > l.End {
		return fmt.Errorf("location %s[%d,%d] begins after it ends", l.Contig, l.Begin, l.End)
	}
	if !l.Strand.Valid() {
		return fmt.Errorf("location %s[%d,%d] has invalid strand %q", l.Contig, l.Begin, l.End, l.Strand)
	}
	return nil
}

// Length returns the number of bases covered, inclusive of both ends.
func (l Location) Length() int {
	return l.End - l.Begin + 1
}

// SameStrand reports whether both locations are on the same strand of the
// same contig. Only same-strand locations can overlap or merge.
func (l Location) SameStrand(o Location) bool {
	return l.Contig == o.Contig && l.Strand == o.Strand
}

// Overlaps reports whether the two locations share at least one base.
// Locations on different contigs or strands never overlap; adjacent
// locations (End+1 == other.Begin) do not overlap.
func (l Location) Overlaps(o Location) bool {
	return l.SameStrand(o) && l.Begin <= o.End && o.Begin <= l.End
}

// Merge returns the coordinate union of two same-strand locations.
func (l Location) Merge(o Location) (Location, error) {
	if !l.SameStrand(o) {
		return Location{}, fmt.Errorf("cannot merge %s with %s: different contig or strand", l, o)
	}
	ret := l
	if o.Begin < ret.Begin {
		ret.Begin = o.Begin
	}
	if o.End > ret.End {
		ret.End = o.End
	}
	return ret, nil
}

// Reverse returns the same region on the opposite strand.
func (l Location) Reverse() Location {
	ret := l
	if l.Strand == StrandPlus {
		ret.Strand = StrandMinus
	} else {
		ret.Strand = StrandPlus
	}
	return ret
}

// Compare orders locations by contig, then begin, then end, with the forward
// strand before the reverse strand as the final tie-break. It returns a
// negative number, zero, or a positive number in the usual comparator style.
func (l Location) Compare(o Location) int {
	if c := strings.Compare(l.Contig, o.Contig); c != 0 {
		return c
	}
	if l.Begin != o.Begin {
		return l.Begin - o.Begin
	}
	if l.End != o.End {
		return l.End - o.End
	}
	return strandRank(l.Strand) - strandRank(o.Strand)
}

func strandRank(s Strand) int {
	if s == StrandPlus {
		return 0
	}
	return 1
}

// String renders the location in the compact contig_begin±end form used in
// reports, e.g. "contig.1_100+1600".
func (l Location) String() string {
	return fmt.Sprintf("%s_%d%s%d", l.Contig, l.Begin, l.Strand, l.End)
}
