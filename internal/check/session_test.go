package check

import (
	"testing"

	"github.com/pdiddy/rna-check/internal/locus"
	"github.com/pdiddy/rna-check/pkg/types"
)

// --- mock reporter ---

type recordedGenome struct {
	id   string
	name string
	loci []locus.Descriptor
}

type mockReporter struct {
	opened   bool
	finished bool
	genomes  []recordedGenome
	current  *recordedGenome
}

func (m *mockReporter) OpenReport() error {
	m.opened = true
	return nil
}

func (m *mockReporter) OpenGenome(id, name string) error {
	m.genomes = append(m.genomes, recordedGenome{id: id, name: name})
	m.current = &m.genomes[len(m.genomes)-1]
	return nil
}

func (m *mockReporter) Record(d locus.Descriptor) error {
	m.current.loci = append(m.current.loci, d)
	return nil
}

func (m *mockReporter) CloseGenome() error {
	m.current = nil
	return nil
}

func (m *mockReporter) Finish() error {
	m.finished = true
	return nil
}

// --- helpers ---

func sessionGenome(id string) *types.Genome {
	return &types.Genome{
		ID:   id,
		Name: "test genome " + id,
		Contigs: []types.Contig{
			{ID: "c1", DNA: "ACGT"},
		},
	}
}

func plusLoc(contig string, begin, end int) types.Location {
	return types.Location{Contig: contig, Begin: begin, End: end, Strand: types.StrandPlus}
}

// --- state machine ---

func TestSessionLifecycle(t *testing.T) {
	rep := &mockReporter{}
	s := NewSession(rep)

	if err := s.OpenReport(); err != nil {
		t.Fatal(err)
	}
	if !rep.opened {
		t.Error("reporter not opened")
	}

	g := sessionGenome("1.1")
	if err := s.OpenGenome(g); err != nil {
		t.Fatal(err)
	}
	d := locus.Descriptor{GenomeID: g.ID, GenomeName: g.Name, Loc: plusLoc("c1", 100, 1600), Evidence: locus.EvidenceBlast, Description: "tax"}
	if err := s.Insert(d); err != nil {
		t.Fatal(err)
	}
	if err := s.CloseGenome(); err != nil {
		t.Fatal(err)
	}
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}

	if !rep.finished {
		t.Error("reporter not finished")
	}
	if len(rep.genomes) != 1 || len(rep.genomes[0].loci) != 1 {
		t.Fatalf("recorded = %+v, want one genome with one locus", rep.genomes)
	}
}

func TestSessionStateErrors(t *testing.T) {
	g := sessionGenome("1.1")
	d := locus.Descriptor{GenomeID: g.ID, Loc: plusLoc("c1", 1, 10), Evidence: locus.EvidenceBlast}

	tests := []struct {
		name string
		run  func(s *Session) error
	}{
		{"OpenGenome before OpenReport", func(s *Session) error {
			return s.OpenGenome(g)
		}},
		{"double OpenGenome", func(s *Session) error {
			s.OpenReport()
			s.OpenGenome(g)
			return s.OpenGenome(sessionGenome("2.2"))
		}},
		{"Insert with no genome open", func(s *Session) error {
			s.OpenReport()
			return s.Insert(d)
		}},
		{"CloseGenome with no genome open", func(s *Session) error {
			s.OpenReport()
			return s.CloseGenome()
		}},
		{"Finish with genome open", func(s *Session) error {
			s.OpenReport()
			s.OpenGenome(g)
			return s.Finish()
		}},
		{"OpenReport twice", func(s *Session) error {
			s.OpenReport()
			return s.OpenReport()
		}},
		{"OpenGenome after Finish", func(s *Session) error {
			s.OpenReport()
			s.Finish()
			return s.OpenGenome(g)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(NewSession(&mockReporter{})); err == nil {
				t.Error("no error for out-of-order call")
			}
		})
	}
}

func TestSessionRejectsForeignGenome(t *testing.T) {
	s := NewSession(&mockReporter{})
	s.OpenReport()
	s.OpenGenome(sessionGenome("1.1"))

	d := locus.Descriptor{GenomeID: "2.2", Loc: plusLoc("c1", 1, 10), Evidence: locus.EvidenceBlast}
	if err := s.Insert(d); err == nil {
		t.Error("Insert accepted a descriptor for a genome that is not open")
	}
}

func TestSessionAbortGenome(t *testing.T) {
	rep := &mockReporter{}
	s := NewSession(rep)
	s.OpenReport()
	g := sessionGenome("1.1")
	s.OpenGenome(g)
	s.Insert(locus.Descriptor{GenomeID: g.ID, Loc: plusLoc("c1", 1, 10), Evidence: locus.EvidenceBlast})

	if err := s.AbortGenome(); err != nil {
		t.Fatal(err)
	}
	if len(rep.genomes) != 0 {
		t.Error("aborted genome still reached the reporter")
	}

	// The session is reusable after an abort.
	if err := s.OpenGenome(sessionGenome("2.2")); err != nil {
		t.Errorf("OpenGenome after abort: %v", err)
	}
}

func TestSessionSortsOnClose(t *testing.T) {
	rep := &mockReporter{}
	s := NewSession(rep)
	s.OpenReport()
	g := sessionGenome("1.1")
	s.OpenGenome(g)

	// Inserted out of order; reported in canonical order.
	s.Insert(locus.Descriptor{GenomeID: g.ID, Loc: plusLoc("c1", 5000, 5300), Evidence: locus.EvidenceBlast})
	s.Insert(locus.Descriptor{GenomeID: g.ID, Loc: plusLoc("c1", 100, 1600), Evidence: locus.EvidenceAnnotation})
	s.Insert(locus.Descriptor{GenomeID: g.ID, Loc: plusLoc("c1", 100, 1600), Evidence: locus.EvidenceBlast})
	s.CloseGenome()

	loci := rep.genomes[0].loci
	if len(loci) != 3 {
		t.Fatalf("recorded %d loci, want 3", len(loci))
	}
	for i := 1; i < len(loci); i++ {
		if loci[i-1].Compare(loci[i]) >= 0 {
			t.Errorf("loci out of order at %d: %+v before %+v", i, loci[i-1], loci[i])
		}
	}
}
