// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OnSearchError selects how a failed homology search batch is handled.
type OnSearchError string

const (
	// OnErrorFail aborts the whole run on the first failed batch. This is
	// the default: a genome is never reported with partial evidence.
	OnErrorFail OnSearchError = "fail"

	// OnErrorSkip logs the failure, omits the genome from the report, and
	// continues with the next genome.
	OnErrorSkip OnSearchError = "skip"
)

// BlastConfig holds settings for the homology search stage.
type BlastConfig struct {
	// BinDir is the directory containing the blastn and makeblastdb
	// binaries. Empty means resolve them on PATH.
	BinDir string `json:"bin_dir" yaml:"bin_dir"`

	// TmpDir is where per-batch query FASTA files are written. Empty means
	// the system temporary directory.
	TmpDir string `json:"tmp_dir" yaml:"tmp_dir"`

	// MinSubjectCoverage is the minimum percentage of the subject sequence
	// an alignment must cover to count as a hit (default 95).
	MinSubjectCoverage float64 `json:"min_subject_coverage" yaml:"min_subject_coverage"`

	// MaxEValue is the maximum permissible expectation value (default 1e-10).
	MaxEValue float64 `json:"max_e_value" yaml:"max_e_value"`

	// BatchSize is the number of contigs submitted per search call
	// (default 20). Batching only bounds request size; it never changes
	// the final merged locus set.
	BatchSize int `json:"batch_size" yaml:"batch_size"`

	// Workers is the number of batches searched concurrently within one
	// genome (default 1, i.e. sequential).
	Workers int `json:"workers" yaml:"workers"`
}

// SourceKind selects the genome source layout.
type SourceKind string

const (
	// SourceDir reads every genome file (JSON or YAML) in a directory.
	SourceDir SourceKind = "dir"

	// SourceFile reads a single genome file.
	SourceFile SourceKind = "file"
)

// ReportFormat selects the report sink.
type ReportFormat string

const (
	FormatList   ReportFormat = "list"
	FormatJSON   ReportFormat = "json"
	FormatSQLite ReportFormat = "sqlite"
)

// CheckConfig groups the settings for one rna-check run.
type CheckConfig struct {
	Blast BlastConfig `json:"blast" yaml:"blast"`

	// Source is the genome source layout (default dir).
	Source SourceKind `json:"source" yaml:"source"`

	// OnError selects fail-fast or skip-and-continue for search failures
	// (default fail).
	OnError OnSearchError `json:"on_error" yaml:"on_error"`

	// Format selects the report sink (default list).
	Format ReportFormat `json:"format" yaml:"format"`

	// SSUPattern overrides the regular expression that recognizes SSU rRNA
	// functional assignments. Empty means the built-in pattern.
	SSUPattern string `json:"ssu_pattern" yaml:"ssu_pattern"`
}

// DefaultCheckConfig returns a CheckConfig with the standard defaults
// applied: 95% minimum subject coverage, 1e-10 maximum e-value, batches of
// 20 contigs, sequential search, directory source, fail-fast, list report.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		Blast: BlastConfig{
			MinSubjectCoverage: 95.0,
			MaxEValue:          1e-10,
			BatchSize:          20,
			Workers:            1,
		},
		Source:  SourceDir,
		OnError: OnErrorFail,
		Format:  FormatList,
	}
}
