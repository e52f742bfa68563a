// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"

	"github.com/pdiddy/rna-check/internal/locus"
)

// List writes a tab-separated listing: one locus per line, genomes separated
// by a blank line, ordered by genome and then location so overlapping
// candidates from the two detection methods sit next to each other.
type List struct {
	w io.Writer
}

// NewList returns a list reporter writing to w.
func NewList(w io.Writer) *List {
	return &List{w: w}
}

// OpenReport writes the column header.
func (r *List) OpenReport() error {
	_, err := fmt.Fprintln(r.w, "genome_id\tgenome_name\tlength\tlocation\ttype\tdescription")
	return err
}

// OpenGenome starts a genome section with a separator line.
func (r *List) OpenGenome(id, name string) error {
	_, err := fmt.Fprintln(r.w)
	return err
}

// Record writes one locus line.
func (r *List) Record(d locus.Descriptor) error {
	_, err := fmt.Fprintf(r.w, "%s\t%s\t%d\t%s\t%s\t%s\n",
		d.GenomeID, d.GenomeName, d.Loc.Length(), d.Loc, d.Evidence.Description(), d.Description)
	return err
}

// CloseGenome is a no-op for the list format.
func (r *List) CloseGenome() error {
	return nil
}

// Finish is a no-op for the list format.
func (r *List) Finish() error {
	return nil
}
