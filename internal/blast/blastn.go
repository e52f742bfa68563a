// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package blast

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pdiddy/rna-check/pkg/types"
)

// Blastn is an Engine backed by the NCBI blast+ command-line tools. It is
// bound to one reference database (a nucleotide FASTA file) and builds the
// BLAST index next to it on first use if the index is missing.
type Blastn struct {
	dbPath string
	binDir string
	tmpDir string
}

// NewBlastn verifies the reference FASTA at dbPath and makes sure its BLAST
// index exists, running makeblastdb when it does not.
func NewBlastn(ctx context.Context, dbPath string, cfg types.BlastConfig) (*Blastn, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("reference FASTA %s: %w", dbPath, err)
	}
	b := &Blastn{dbPath: dbPath, binDir: cfg.BinDir, tmpDir: cfg.TmpDir}
	if err := b.ensureDB(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

// Name identifies the engine in progress and error messages.
func (b *Blastn) Name() string {
	return "blastn"
}

// ensureDB builds the nucleotide BLAST database when the index files are
// absent. makeblastdb writes them next to the FASTA, so a second run finds
// them and skips the build.
func (b *Blastn) ensureDB(ctx context.Context) error {
	for _, ext := range []string{".nin", ".nsq", ".nhr"} {
		if _, err := os.Stat(b.dbPath + ext); err != nil {
			return b.makeDB(ctx)
		}
	}
	return nil
}

func (b *Blastn) makeDB(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, b.binary("makeblastdb"),
		"-in", b.dbPath,
		"-dbtype", "nucl",
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("makeblastdb %s: %w: %s", b.dbPath, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// Search writes the batch to a temporary FASTA file, runs blastn against the
// reference database, and parses the tabular output. The e-value cutoff is
// enforced by blastn itself; the subject-coverage cutoff is applied while
// parsing. The temporary file is removed when the search succeeds.
func (b *Blastn) Search(ctx context.Context, seqs []Sequence, parms Parms) ([]types.Hit, error) {
	if len(seqs) == 0 {
		return nil, nil
	}
	parms = parms.Normalize()
	if err := parms.Validate(); err != nil {
		return nil, err
	}

	queryPath, err := b.writeQuery(seqs)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, b.binary("blastn"),
		"-db", b.dbPath,
		"-query", queryPath,
		"-evalue", fmt.Sprintf("%g", parms.MaxEValue),
		"-outfmt", outFields,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("blastn against %s: %w: %s", b.dbPath, err, strings.TrimSpace(stderr.String()))
	}
	os.Remove(queryPath)

	return parseHits(&stdout, parms)
}

// writeQuery writes the batch as a FASTA file in the configured temporary
// directory and returns its path.
func (b *Blastn) writeQuery(seqs []Sequence) (string, error) {
	dir := b.tmpDir
	if dir == "" {
		dir = os.TempDir()
	}
	f, err := os.CreateTemp(dir, "rna-check-query-*.fasta")
	if err != nil {
		return "", fmt.Errorf("creating query file: %w", err)
	}
	defer f.Close()
	for _, seq := range seqs {
		if _, err := fmt.Fprintf(f, ">%s\n%s\n", seq.ID, seq.DNA); err != nil {
			os.Remove(f.Name())
			return "", fmt.Errorf("writing query file: %w", err)
		}
	}
	return f.Name(), nil
}

func (b *Blastn) binary(name string) string {
	if b.binDir == "" {
		return name
	}
	return filepath.Join(b.binDir, name)
}
