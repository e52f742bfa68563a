// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/rna-check/internal/locus"
)

// SQLite persists the report into a SQLite database so runs over large
// genome collections can be queried and diffed afterwards. Re-running a
// genome replaces its previous rows.
type SQLite struct {
	db          *sql.DB
	genome      string
	pendingName string
	pending     []locus.Descriptor
}

// NewSQLite opens or creates the report database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening report database: %w", err)
	}
	return &SQLite{db: db}, nil
}

// OpenReport creates the schema if it does not exist.
func (r *SQLite) OpenReport() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS genomes (
			id TEXT PRIMARY KEY,
			name TEXT,
			locus_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS loci (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			genome_id TEXT NOT NULL REFERENCES genomes(id),
			contig TEXT NOT NULL,
			"begin" INTEGER NOT NULL,
			"end" INTEGER NOT NULL,
			strand TEXT NOT NULL,
			length INTEGER NOT NULL,
			evidence TEXT NOT NULL,
			description TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_loci_genome_id ON loci(genome_id)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("creating report schema: %w", err)
		}
	}
	return nil
}

// OpenGenome begins collecting loci for one genome.
func (r *SQLite) OpenGenome(id, name string) error {
	r.genome = id
	r.pending = r.pending[:0]
	r.pendingName = name
	return nil
}

// Record buffers one locus; the rows are written in a single transaction at
// CloseGenome so a failed genome leaves no partial rows behind.
func (r *SQLite) Record(d locus.Descriptor) error {
	r.pending = append(r.pending, d)
	return nil
}

// CloseGenome writes the genome and its loci transactionally, replacing any
// rows from a previous run of the same genome.
func (r *SQLite) CloseGenome() error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning report transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM loci WHERE genome_id = ?`, r.genome); err != nil {
		return fmt.Errorf("clearing previous loci for %s: %w", r.genome, err)
	}
	if _, err := tx.Exec(
		`INSERT INTO genomes (id, name, locus_count) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name, locus_count=excluded.locus_count`,
		r.genome, r.pendingName, len(r.pending),
	); err != nil {
		return fmt.Errorf("upserting genome %s: %w", r.genome, err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO loci (genome_id, contig, "begin", "end", strand, length, evidence, description)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing locus insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range r.pending {
		if _, err := stmt.Exec(
			d.GenomeID, d.Loc.Contig, d.Loc.Begin, d.Loc.End, string(d.Loc.Strand),
			d.Loc.Length(), d.Evidence.Description(), d.Description,
		); err != nil {
			return fmt.Errorf("inserting locus for %s: %w", r.genome, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing genome %s: %w", r.genome, err)
	}
	r.genome = ""
	r.pending = r.pending[:0]
	return nil
}

// Finish closes the database.
func (r *SQLite) Finish() error {
	return r.db.Close()
}
