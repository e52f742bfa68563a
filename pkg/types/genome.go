// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Contig is one DNA sequence of a genome.
type Contig struct {
	// ID is the contig identifier, unique within the genome.
	ID string `json:"id" yaml:"id"`

	// DNA is the nucleotide sequence.
	DNA string `json:"dna" yaml:"dna"`
}

// Feature is one structural annotation record from a genome. Only RNA
// features matter to rna-check, but the source files carry all of them.
type Feature struct {
	// ID is the stable feature identifier (e.g. "fig|511145.12.rna.4").
	ID string `json:"id" yaml:"id"`

	// Type is the feature type tag ("rna", "peg", ...).
	Type string `json:"type" yaml:"type"`

	// Function is the functional assignment text.
	Function string `json:"function" yaml:"function"`

	// Location places the feature on a contig. A nil location marks an
	// unplaced feature; the annotation scanner skips those with a warning.
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// Genome is one genome record loaded from a genome source.
type Genome struct {
	// ID is the genome identifier (e.g. "511145.12").
	ID string `json:"id" yaml:"id"`

	// Name is the descriptive genome name.
	Name string `json:"name" yaml:"name"`

	// Contigs holds the genome's DNA sequences.
	Contigs []Contig `json:"contigs" yaml:"contigs"`

	// Features holds the genome's structural annotations.
	Features []Feature `json:"features" yaml:"features"`
}

// String renders the genome as "id (name)" for progress messages.
func (g *Genome) String() string {
	if g.Name == "" {
		return g.ID
	}
	return g.ID + " (" + g.Name + ")"
}
