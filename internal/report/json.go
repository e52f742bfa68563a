// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"io"

	"github.com/pdiddy/rna-check/internal/locus"
	"github.com/pdiddy/rna-check/pkg/types"
)

// jsonGenome is one genome's entry in the JSON report.
type jsonGenome struct {
	GenomeID   string      `json:"genome_id"`
	GenomeName string      `json:"genome_name"`
	Loci       []jsonLocus `json:"loci"`
}

type jsonLocus struct {
	Location    types.Location `json:"location"`
	Length      int            `json:"length"`
	Type        string         `json:"type"`
	Description string         `json:"description"`
}

// JSON accumulates the run and writes a single indented JSON array of
// genomes on Finish.
type JSON struct {
	w       io.Writer
	genomes []jsonGenome
	current *jsonGenome
}

// NewJSON returns a JSON reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (r *JSON) OpenReport() error {
	return nil
}

func (r *JSON) OpenGenome(id, name string) error {
	r.genomes = append(r.genomes, jsonGenome{GenomeID: id, GenomeName: name, Loci: []jsonLocus{}})
	r.current = &r.genomes[len(r.genomes)-1]
	return nil
}

func (r *JSON) Record(d locus.Descriptor) error {
	r.current.Loci = append(r.current.Loci, jsonLocus{
		Location:    d.Loc,
		Length:      d.Loc.Length(),
		Type:        d.Evidence.Description(),
		Description: d.Description,
	})
	return nil
}

func (r *JSON) CloseGenome() error {
	r.current = nil
	return nil
}

func (r *JSON) Finish() error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.genomes)
}
