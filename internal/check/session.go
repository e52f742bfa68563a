// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check reconciles the two evidence streams for each genome: the
// annotation scanner walks the genome's own features, the batch driver
// searches the contigs against the reference database, and the session
// folds everything into one working set per genome and hands the merged,
// ordered result to the reporter.
package check

import (
	"fmt"
	"sync"

	"github.com/pdiddy/rna-check/internal/locus"
	"github.com/pdiddy/rna-check/internal/report"
	"github.com/pdiddy/rna-check/pkg/types"
)

// sessionState tracks the per-run lifecycle. Transitions only move forward:
// a session processes genomes one at a time and can never reopen after
// Finish.
type sessionState int

const (
	stateNew sessionState = iota
	stateReady
	stateGenomeOpen
	stateFinished
)

func (s sessionState) String() string {
	switch s {
	case stateNew:
		return "new"
	case stateReady:
		return "ready"
	case stateGenomeOpen:
		return "genome open"
	case stateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Session owns the working set of the genome currently being processed. At
// most one genome is open at a time; calls in the wrong state are
// programming errors and come back as errors rather than being papered
// over.
type Session struct {
	reporter report.Reporter
	state    sessionState

	mu     sync.Mutex
	genome *types.Genome
	set    *locus.Set
}

// NewSession builds a session reporting to r.
func NewSession(r report.Reporter) *Session {
	return &Session{reporter: r, state: stateNew}
}

// OpenReport performs the one-time report setup. It must be called before
// the first OpenGenome.
func (s *Session) OpenReport() error {
	if s.state != stateNew {
		return fmt.Errorf("OpenReport called in state %q", s.state)
	}
	if err := s.reporter.OpenReport(); err != nil {
		return fmt.Errorf("opening report: %w", err)
	}
	s.state = stateReady
	return nil
}

// OpenGenome allocates a fresh working set for g.
func (s *Session) OpenGenome(g *types.Genome) error {
	if s.state != stateReady {
		return fmt.Errorf("OpenGenome(%s) called in state %q", g.ID, s.state)
	}
	s.genome = g
	s.set = locus.NewSet()
	s.state = stateGenomeOpen
	return nil
}

// Insert folds a descriptor into the open genome's working set. It is safe
// to call from concurrent search batches. Descriptors for a different
// genome indicate a broken caller and are rejected outright.
func (s *Session) Insert(d locus.Descriptor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateGenomeOpen {
		return fmt.Errorf("Insert called in state %q", s.state)
	}
	if d.GenomeID != s.genome.ID {
		return fmt.Errorf("descriptor for genome %s inserted while %s is open", d.GenomeID, s.genome.ID)
	}
	s.set.Insert(d)
	return nil
}

// Len returns the current size of the open working set.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set == nil {
		return 0
	}
	return s.set.Len()
}

// CloseGenome freezes the working set, hands the sorted descriptors to the
// reporter, and discards the set.
func (s *Session) CloseGenome() error {
	if s.state != stateGenomeOpen {
		return fmt.Errorf("CloseGenome called in state %q", s.state)
	}
	if err := s.reporter.OpenGenome(s.genome.ID, s.genome.Name); err != nil {
		return fmt.Errorf("reporting genome %s: %w", s.genome.ID, err)
	}
	for _, d := range s.set.Final() {
		if err := s.reporter.Record(d); err != nil {
			return fmt.Errorf("recording locus for %s: %w", s.genome.ID, err)
		}
	}
	if err := s.reporter.CloseGenome(); err != nil {
		return fmt.Errorf("closing genome %s in report: %w", s.genome.ID, err)
	}
	s.genome = nil
	s.set = nil
	s.state = stateReady
	return nil
}

// AbortGenome discards the open working set without reporting anything, for
// the skip-and-continue failure mode. The failed genome leaves no partial
// record behind.
func (s *Session) AbortGenome() error {
	if s.state != stateGenomeOpen {
		return fmt.Errorf("AbortGenome called in state %q", s.state)
	}
	s.genome = nil
	s.set = nil
	s.state = stateReady
	return nil
}

// Finish completes the report. No further genomes may be opened.
func (s *Session) Finish() error {
	if s.state != stateReady {
		return fmt.Errorf("Finish called in state %q", s.state)
	}
	if err := s.reporter.Finish(); err != nil {
		return fmt.Errorf("finishing report: %w", err)
	}
	s.state = stateFinished
	return nil
}
