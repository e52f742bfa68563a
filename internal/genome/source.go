// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package genome loads genome records from disk. A source is either a
// directory of genome JSON files or a single file; both present the same
// Source interface to the pipeline.
package genome

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/rna-check/pkg/types"
)

// Source yields the genomes of one input collection.
type Source interface {
	// Count returns the number of genomes in the source.
	Count() int

	// Each calls fn once per genome, in source order. A non-nil error from
	// fn stops the iteration and is returned.
	Each(fn func(*types.Genome) error) error
}

// Open connects the configured source kind to a path.
func Open(kind types.SourceKind, path string) (Source, error) {
	switch kind {
	case types.SourceDir:
		return openDir(path)
	case types.SourceFile:
		return openFile(path)
	default:
		return nil, fmt.Errorf("unknown genome source type %q", kind)
	}
}

// dirSource reads every genome file in a directory, in name order.
type dirSource struct {
	paths []string
}

func openDir(dir string) (Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading genome directory %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !genomeFile(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no genome files found in %s", dir)
	}
	sort.Strings(paths)
	return &dirSource{paths: paths}, nil
}

func (s *dirSource) Count() int {
	return len(s.paths)
}

func (s *dirSource) Each(fn func(*types.Genome) error) error {
	for _, path := range s.paths {
		g, err := Load(path)
		if err != nil {
			return err
		}
		if err := fn(g); err != nil {
			return err
		}
	}
	return nil
}

// fileSource holds a single genome file.
type fileSource struct {
	path string
}

func openFile(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("genome file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("genome file %s is a directory (use --type dir)", path)
	}
	return &fileSource{path: path}, nil
}

func (s *fileSource) Count() int {
	return 1
}

func (s *fileSource) Each(fn func(*types.Genome) error) error {
	g, err := Load(s.path)
	if err != nil {
		return err
	}
	return fn(g)
}

// genomeFile reports whether name looks like a genome record file.
func genomeFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Load reads and validates one genome file, JSON or YAML by extension.
// Contigs must be present and uniquely named; feature locations are not
// validated here because an unplaced feature only matters to the annotation
// scanner, which skips it.
func Load(path string) (*types.Genome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading genome %s: %w", path, err)
	}
	var g types.Genome
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &g)
	default:
		err = json.Unmarshal(data, &g)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing genome %s: %w", path, err)
	}
	if g.ID == "" {
		return nil, fmt.Errorf("genome %s has no id", path)
	}
	if len(g.Contigs) == 0 {
		return nil, fmt.Errorf("genome %s has no contigs", path)
	}
	seen := make(map[string]bool, len(g.Contigs))
	for _, c := range g.Contigs {
		if c.ID == "" {
			return nil, fmt.Errorf("genome %s has a contig with no id", path)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("genome %s has duplicate contig %s", path, c.ID)
		}
		seen[c.ID] = true
	}
	return &g, nil
}
