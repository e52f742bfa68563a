// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package check

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/rna-check/internal/blast"
	"github.com/pdiddy/rna-check/internal/genome"
	"github.com/pdiddy/rna-check/internal/report"
	"github.com/pdiddy/rna-check/pkg/types"
)

// Summary holds the run totals.
type Summary struct {
	Genomes     int
	Skipped     int
	Annotations int
	BlastLoci   int
}

// Run processes every genome in the source: scan the annotations, search
// the contigs, and report the reconciled locus list. Progress and warnings
// go to progress. With OnErrorFail (the default) the first search failure
// aborts the run; with OnErrorSkip the genome is dropped from the report
// with a logged reason and the run continues.
func Run(ctx context.Context, cfg types.CheckConfig, src genome.Source, engine blast.Engine, reporter report.Reporter, progress io.Writer) (Summary, error) {
	pattern, err := SSUPattern(cfg.SSUPattern)
	if err != nil {
		return Summary{}, err
	}

	session := NewSession(reporter)
	if err := session.OpenReport(); err != nil {
		return Summary{}, err
	}
	driver := NewDriver(engine, cfg.Blast)

	var summary Summary
	total := src.Count()
	err = src.Each(func(g *types.Genome) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		summary.Genomes++
		fmt.Fprintf(progress, "Processing genome %d of %d: %s.\n", summary.Genomes, total, g)

		if err := session.OpenGenome(g); err != nil {
			return err
		}

		annos, err := ScanAnnotations(g, session, pattern, progress)
		if err != nil {
			return err
		}

		found, err := driver.SearchGenome(ctx, g, session)
		if err != nil {
			if cfg.OnError == types.OnErrorSkip && ctx.Err() == nil {
				fmt.Fprintf(progress, "warning: genome %s omitted from report: %v\n", g.ID, err)
				summary.Skipped++
				return session.AbortGenome()
			}
			return err
		}

		summary.Annotations += annos
		summary.BlastLoci += found
		return session.CloseGenome()
	})
	if err != nil {
		return summary, err
	}

	if err := session.Finish(); err != nil {
		return summary, err
	}
	fmt.Fprintf(progress, "%d genomes processed.  %d RNAs found by BLAST, %d from annotations.\n",
		summary.Genomes, summary.BlastLoci, summary.Annotations)
	if summary.Skipped > 0 {
		fmt.Fprintf(progress, "%d genome(s) omitted after search failures.\n", summary.Skipped)
	}
	return summary, nil
}
