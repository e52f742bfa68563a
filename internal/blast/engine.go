// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package blast runs nucleotide homology searches against a reference RNA
// database. The Blastn engine shells out to the NCBI blast+ toolchain;
// callers see only the Engine interface, so tests and alternative search
// tools plug in the same way.
package blast

import (
	"context"
	"fmt"

	"github.com/pdiddy/rna-check/pkg/types"
)

// Sequence is one named nucleotide query sequence.
type Sequence struct {
	ID  string
	DNA string
}

// Parms holds the search parameter set. Zero values fall back to the
// standard defaults via Normalize.
type Parms struct {
	// MaxEValue is the maximum permissible expectation value.
	MaxEValue float64

	// MinSubjectCoverage is the minimum percentage of the subject sequence
	// the alignment must cover.
	MinSubjectCoverage float64
}

// Normalize fills unset parameters with the standard defaults.
func (p Parms) Normalize() Parms {
	if p.MaxEValue <= 0 {
		p.MaxEValue = 1e-10
	}
	if p.MinSubjectCoverage <= 0 {
		p.MinSubjectCoverage = 95.0
	}
	return p
}

// Validate rejects parameter values outside their legal ranges.
func (p Parms) Validate() error {
	if p.MinSubjectCoverage < 0 || p.MinSubjectCoverage > 100 {
		return fmt.Errorf("minimum subject coverage must be between 0 and 100, got %g", p.MinSubjectCoverage)
	}
	if p.MaxEValue < 0 {
		return fmt.Errorf("maximum e-value cannot be negative, got %g", p.MaxEValue)
	}
	return nil
}

// Engine searches a batch of query sequences against a reference database.
// Searches are read-only, so callers may run batches concurrently.
type Engine interface {
	Name() string
	Search(ctx context.Context, seqs []Sequence, parms Parms) ([]types.Hit, error)
}
