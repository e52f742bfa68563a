// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package check

import (
	"context"
	"fmt"
	"sync"

	"github.com/pdiddy/rna-check/internal/blast"
	"github.com/pdiddy/rna-check/internal/locus"
	"github.com/pdiddy/rna-check/pkg/types"
)

// Driver submits a genome's contigs to the homology search engine in
// batches and folds the hits into the session's working set. Batching only
// bounds the size of each engine call; the merged result is the same as if
// every contig went out in one request.
type Driver struct {
	engine    blast.Engine
	parms     blast.Parms
	batchSize int
	workers   int
}

// NewDriver builds a driver for the given engine and configuration.
func NewDriver(engine blast.Engine, cfg types.BlastConfig) *Driver {
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 20
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Driver{
		engine: engine,
		parms: blast.Parms{
			MaxEValue:          cfg.MaxEValue,
			MinSubjectCoverage: cfg.MinSubjectCoverage,
		}.Normalize(),
		batchSize: batchSize,
		workers:   workers,
	}
}

// SearchGenome searches all of g's contigs and inserts one descriptor per
// accepted hit. A failed batch fails the whole genome: the caller decides
// whether that aborts the run or skips the genome. The count of distinct
// blast loci added to the working set is returned on success.
func (d *Driver) SearchGenome(ctx context.Context, g *types.Genome, session *Session) (int, error) {
	before := session.Len()
	batches := d.partition(g)

	var err error
	if d.workers > 1 && len(batches) > 1 {
		err = d.searchParallel(ctx, g, session, batches)
	} else {
		err = d.searchSequential(ctx, g, session, batches)
	}
	if err != nil {
		return 0, err
	}
	return session.Len() - before, nil
}

// partition cuts the contig set into consecutive batches of at most
// batchSize sequences.
func (d *Driver) partition(g *types.Genome) [][]blast.Sequence {
	seqs := make([]blast.Sequence, len(g.Contigs))
	for i, c := range g.Contigs {
		seqs[i] = blast.Sequence{ID: c.ID, DNA: c.DNA}
	}
	var batches [][]blast.Sequence
	for len(seqs) > 0 {
		n := d.batchSize
		if n > len(seqs) {
			n = len(seqs)
		}
		batches = append(batches, seqs[:n])
		seqs = seqs[n:]
	}
	return batches
}

func (d *Driver) searchSequential(ctx context.Context, g *types.Genome, session *Session, batches [][]blast.Sequence) error {
	for _, batch := range batches {
		if err := d.searchBatch(ctx, g, session, batch); err != nil {
			return err
		}
	}
	return nil
}

// searchParallel fans the batches out over a bounded number of workers.
// Engine calls are read-only queries and run without coordination; the
// session serializes the inserts itself.
func (d *Driver) searchParallel(ctx context.Context, g *types.Genome, session *Session, batches [][]blast.Sequence) error {
	work := make(chan []blast.Sequence)
	errs := make(chan error, d.workers)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range work {
				if err := d.searchBatch(ctx, g, session, batch); err != nil {
					errs <- err
					cancel()
					return
				}
			}
		}()
	}

	for _, batch := range batches {
		select {
		case work <- batch:
		case <-ctx.Done():
		}
	}
	close(work)
	wg.Wait()

	select {
	case err := <-errs:
		return err
	default:
		return ctx.Err()
	}
}

func (d *Driver) searchBatch(ctx context.Context, g *types.Genome, session *Session, batch []blast.Sequence) error {
	hits, err := d.engine.Search(ctx, batch, d.parms)
	if err != nil {
		return fmt.Errorf("%s search for genome %s: %w", d.engine.Name(), g.ID, err)
	}
	for _, hit := range hits {
		if err := session.Insert(locus.FromHit(g, hit)); err != nil {
			return err
		}
	}
	return nil
}
