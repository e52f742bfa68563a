// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the per-genome locus lists produced by the check
// pipeline. Reporters only format: they receive each genome's descriptors
// already merged and in canonical order.
package report

import (
	"fmt"
	"io"

	"github.com/pdiddy/rna-check/internal/locus"
	"github.com/pdiddy/rna-check/pkg/types"
)

// Reporter receives one run's worth of locus descriptors. Calls arrive in a
// fixed shape: OpenReport once, then for each genome OpenGenome, zero or
// more Record calls in canonical order, CloseGenome, and a final Finish.
type Reporter interface {
	OpenReport() error
	OpenGenome(id, name string) error
	Record(d locus.Descriptor) error
	CloseGenome() error
	Finish() error
}

// New builds a reporter of the given format writing to w. The sqlite format
// ignores w and needs a database path instead.
func New(format types.ReportFormat, w io.Writer, dbPath string) (Reporter, error) {
	switch format {
	case types.FormatList, "":
		return NewList(w), nil
	case types.FormatJSON:
		return NewJSON(w), nil
	case types.FormatSQLite:
		if dbPath == "" {
			return nil, fmt.Errorf("sqlite report format requires an output path")
		}
		return NewSQLite(dbPath)
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
