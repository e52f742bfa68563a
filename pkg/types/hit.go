// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Hit is one homology search hit: an aligned region between a query contig
// and a subject sequence in the reference RNA database.
type Hit struct {
	// Query is the aligned region on the genome contig.
	Query Location `json:"query" yaml:"query"`

	// Subject is the aligned region on the reference sequence.
	Subject Location `json:"subject" yaml:"subject"`

	// SubjectDef is the definition line of the subject sequence, usually a
	// taxonomy string in SSU reference databases.
	SubjectDef string `json:"subject_def" yaml:"subject_def"`

	// EValue is the hit's expectation value.
	EValue float64 `json:"e_value" yaml:"e_value"`

	// SubjectCoverage is the percentage of the subject sequence covered by
	// the alignment (0-100).
	SubjectCoverage float64 `json:"subject_coverage" yaml:"subject_coverage"`
}
