// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locus holds the candidate reconciliation core: the locus
// Descriptor, the canonical ordering over descriptors, and the per-genome
// working Set that folds overlapping candidates together.
package locus

import (
	"github.com/pdiddy/rna-check/internal/natsort"
	"github.com/pdiddy/rna-check/pkg/types"
)

// Evidence says how a locus was found. The set of variants is closed: every
// locus is either a homology search hit or an existing annotation.
type Evidence int

const (
	// EvidenceBlast marks a locus found by the homology search.
	EvidenceBlast Evidence = iota

	// EvidenceAnnotation marks a locus taken from the genome's own
	// structural annotations.
	EvidenceAnnotation
)

// Description returns the human-readable evidence label used in reports.
func (e Evidence) Description() string {
	switch e {
	case EvidenceBlast:
		return "Blast Hit"
	case EvidenceAnnotation:
		return "RNA Annotation"
	default:
		return "Unknown"
	}
}

// Descriptor describes one candidate SSU rRNA locus: the owning genome, the
// location in the genome, the evidence for it, and a free-text description.
// Within a genome, descriptors order by location so overlapping candidates
// from the two detection methods land next to each other in the report.
type Descriptor struct {
	GenomeID    string
	GenomeName  string
	Loc         types.Location
	Evidence    Evidence
	Description string
}

// FromHit builds a descriptor for a homology hit. The stored location is the
// hit's query location, reversed when the query and subject strands disagree
// so that the orientation always reflects the sense in which the genome
// sequence aligned to the reference.
func FromHit(genome *types.Genome, hit types.Hit) Descriptor {
	loc := hit.Query
	if loc.Strand != hit.Subject.Strand {
		loc = loc.Reverse()
	}
	return Descriptor{
		GenomeID:    genome.ID,
		GenomeName:  genome.Name,
		Loc:         loc,
		Evidence:    EvidenceBlast,
		Description: hit.SubjectDef,
	}
}

// FromFeature builds a descriptor for an annotated RNA feature. The feature
// must have a location; the annotation scanner filters out those that don't.
func FromFeature(genome *types.Genome, feat types.Feature) Descriptor {
	return Descriptor{
		GenomeID:    genome.ID,
		GenomeName:  genome.Name,
		Loc:         *feat.Location,
		Evidence:    EvidenceAnnotation,
		Description: feat.ID,
	}
}

// TryMerge checks other against this descriptor. If both come from the same
// genome, carry the same evidence, and their locations overlap on the same
// contig and strand, this descriptor's location grows to the coordinate
// union and TryMerge returns true. Otherwise nothing changes and it returns
// false.
//
// Mergeability is deliberately not the same relation as Compare == 0:
// ordering is a total order for the report, merging is interval overlap.
func (d *Descriptor) TryMerge(other Descriptor) bool {
	if d.GenomeID != other.GenomeID || d.Evidence != other.Evidence {
		return false
	}
	if !d.Loc.Overlaps(other.Loc) {
		return false
	}
	merged, err := d.Loc.Merge(other.Loc)
	if err != nil {
		// Overlaps already guaranteed same contig and strand.
		return false
	}
	d.Loc = merged
	return true
}

// Compare is the canonical total order over descriptors: genome ID in
// natural alphanumeric order, then location (contig, coordinates, forward
// strand first), then evidence (blast hits before annotations), then
// description. Genuinely distinct loci never compare equal, so the order is
// stable no matter what order the evidence arrived in.
func (d Descriptor) Compare(o Descriptor) int {
	if c := natsort.Compare(d.GenomeID, o.GenomeID); c != 0 {
		return c
	}
	if c := d.Loc.Compare(o.Loc); c != 0 {
		return c
	}
	if d.Evidence != o.Evidence {
		return int(d.Evidence) - int(o.Evidence)
	}
	if d.Description < o.Description {
		return -1
	}
	if d.Description > o.Description {
		return 1
	}
	return 0
}
