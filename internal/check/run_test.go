package check

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pdiddy/rna-check/pkg/types"
)

// memSource serves in-memory genomes.
type memSource struct {
	genomes []*types.Genome
}

func (m *memSource) Count() int { return len(m.genomes) }

func (m *memSource) Each(fn func(*types.Genome) error) error {
	for _, g := range m.genomes {
		if err := fn(g); err != nil {
			return err
		}
	}
	return nil
}

func runConfig() types.CheckConfig {
	cfg := types.DefaultCheckConfig()
	cfg.Blast.BatchSize = 2
	return cfg
}

func TestRunEndToEnd(t *testing.T) {
	ssuLoc := plusLoc("c1", 100, 1600)
	g := &types.Genome{
		ID:   "511145.12",
		Name: "Escherichia coli K-12",
		Contigs: []types.Contig{
			{ID: "c1", DNA: "ACGT"},
		},
		Features: []types.Feature{
			{ID: "fig|511145.12.rna.1", Type: "rna", Function: "SSU rRNA ## 16S rRNA", Location: &ssuLoc},
		},
	}
	engine := &fakeEngine{hits: map[string][]types.Hit{
		"c1": {hitAt("c1", 100, 800), hitAt("c1", 750, 1600), hitAt("c1", 5000, 5300)},
	}}
	rep := &mockReporter{}

	var progress bytes.Buffer
	summary, err := Run(context.Background(), runConfig(), &memSource{genomes: []*types.Genome{g}}, engine, rep, &progress)
	if err != nil {
		t.Fatal(err)
	}

	if summary.Genomes != 1 || summary.Annotations != 1 || summary.BlastLoci != 2 {
		t.Errorf("summary = %+v, want 1 genome, 1 annotation, 2 blast loci", summary)
	}
	if !rep.finished {
		t.Error("reporter not finished")
	}
	loci := rep.genomes[0].loci
	if len(loci) != 3 {
		t.Fatalf("reported %d loci, want 3", len(loci))
	}
	// Canonical order: blast 100-1600, annotation 100-1600, blast 5000-5300.
	if loci[0].Loc != plusLoc("c1", 100, 1600) || loci[0].Evidence.Description() != "Blast Hit" {
		t.Errorf("loci[0] = %+v", loci[0])
	}
	if loci[1].Evidence.Description() != "RNA Annotation" {
		t.Errorf("loci[1] = %+v", loci[1])
	}
	if loci[2].Loc != plusLoc("c1", 5000, 5300) {
		t.Errorf("loci[2] = %+v", loci[2])
	}
}

func TestRunFailFast(t *testing.T) {
	engine := &fakeEngine{}
	engine.fail.Store(true)
	rep := &mockReporter{}

	src := &memSource{genomes: []*types.Genome{sessionGenome("1.1"), sessionGenome("2.2")}}
	_, err := Run(context.Background(), runConfig(), src, engine, rep, &bytes.Buffer{})
	if err == nil {
		t.Fatal("Run succeeded with a failing engine")
	}
	if len(rep.genomes) != 0 {
		t.Error("failed genome produced report output")
	}
}

func TestRunSkipAndContinue(t *testing.T) {
	// First genome's search fails, second succeeds. With OnErrorSkip the
	// run finishes and only the second genome is reported.
	g1 := sessionGenome("1.1")
	g2 := sessionGenome("2.2")
	engine := &fakeEngine{hits: map[string][]types.Hit{
		"c1": {hitAt("c1", 100, 1600)},
	}}
	engine.fail.Store(true)
	rep := &mockReporter{}

	cfg := runConfig()
	cfg.OnError = types.OnErrorSkip

	src := &memSource{genomes: []*types.Genome{g1, g2}}
	var progress bytes.Buffer

	// flipSource clears the failure flag once the second genome starts, so
	// only the first genome's search fails.
	wrapped := &flipSource{inner: src, after: 1, engine: engine}

	summary, err := Run(context.Background(), cfg, wrapped, engine, rep, &progress)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", summary.Skipped)
	}
	if len(rep.genomes) != 1 || rep.genomes[0].id != "2.2" {
		t.Errorf("reported genomes = %+v, want only 2.2", rep.genomes)
	}
	if !strings.Contains(progress.String(), "omitted from report") {
		t.Errorf("progress missing omission warning: %s", progress.String())
	}
}

// flipSource clears the engine failure flag after the first n genomes.
type flipSource struct {
	inner  *memSource
	after  int
	engine *fakeEngine
	seen   int
}

func (f *flipSource) Count() int { return f.inner.Count() }

func (f *flipSource) Each(fn func(*types.Genome) error) error {
	return f.inner.Each(func(g *types.Genome) error {
		if f.seen >= f.after {
			f.engine.fail.Store(false)
		}
		f.seen++
		return fn(g)
	})
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	engine := &fakeEngine{}
	src := &memSource{genomes: []*types.Genome{sessionGenome("1.1")}}
	if _, err := Run(ctx, runConfig(), src, engine, &mockReporter{}, &bytes.Buffer{}); err == nil {
		t.Error("Run ignored a cancelled context")
	}
}
