// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package check

import (
	"fmt"
	"io"
	"regexp"

	"github.com/pdiddy/rna-check/internal/locus"
	"github.com/pdiddy/rna-check/pkg/types"
)

// defaultSSUPattern recognizes SSU rRNA functional assignments the way the
// SEED annotation pipelines spell them.
var defaultSSUPattern = regexp.MustCompile(`(?i)SSU\s+rRNA|16S\s+(r(ibosomal\s+)?)?RNA`)

// SSUPattern compiles an override pattern, or returns the default when the
// expression is empty.
func SSUPattern(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return defaultSSUPattern, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("SSU pattern %q: %w", expr, err)
	}
	return re, nil
}

// ScanAnnotations walks g's features and inserts a descriptor for every RNA
// feature whose function matches the SSU pattern. Matching features without
// a usable location are skipped with a warning on warn; they never abort the
// genome. It returns the number of annotated RNAs found.
func ScanAnnotations(g *types.Genome, session *Session, pattern *regexp.Regexp, warn io.Writer) (int, error) {
	found := 0
	for _, feat := range g.Features {
		if feat.Type != "rna" || !pattern.MatchString(feat.Function) {
			continue
		}
		if feat.Location == nil {
			fmt.Fprintf(warn, "warning: feature %s in genome %s has no location, skipped\n", feat.ID, g.ID)
			continue
		}
		if err := feat.Location.Validate(); err != nil {
			fmt.Fprintf(warn, "warning: feature %s in genome %s skipped: %v\n", feat.ID, g.ID, err)
			continue
		}
		if err := session.Insert(locus.FromFeature(g, feat)); err != nil {
			return found, err
		}
		found++
	}
	return found, nil
}
