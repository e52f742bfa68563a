// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/rna-check/internal/blast"
	"github.com/pdiddy/rna-check/internal/check"
	"github.com/pdiddy/rna-check/internal/genome"
	"github.com/pdiddy/rna-check/internal/report"
	"github.com/pdiddy/rna-check/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check <ssu-ref.fasta> <genome-source>",
	Short: "Check a genome collection's SSU rRNA loci",
	Long: `Check locates the SSU rRNA loci of every genome in the source both from
the genomes' existing annotations and by BLASTing their contigs against the
reference RNA FASTA file, then reports the merged locus list per genome.

The reference FASTA is indexed with makeblastdb on first use. Genome sources
are directories of genome JSON files (--type dir) or a single genome file
(--type file).`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	refPath, sourcePath := args[0], args[1]

	cfg, err := checkConfigFromFlags(cmd)
	if err != nil {
		return err
	}
	parms := blast.Parms{
		MaxEValue:          cfg.Blast.MaxEValue,
		MinSubjectCoverage: cfg.Blast.MinSubjectCoverage,
	}
	if err := parms.Validate(); err != nil {
		return err
	}
	if _, err := os.Stat(sourcePath); err != nil {
		return fmt.Errorf("genome source %s: %w", sourcePath, err)
	}

	src, err := genome.Open(cfg.Source, sourcePath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%d genomes found in %s.\n", src.Count(), sourcePath)

	ctx := cmd.Context()
	engine, err := blast.NewBlastn(ctx, refPath, cfg.Blast)
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")
	out := os.Stdout
	if outPath != "" && cfg.Format != types.FormatSQLite {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	reporter, err := report.New(cfg.Format, out, sqliteDBPath(cfg.Format, outPath))
	if err != nil {
		return err
	}

	summary, err := check.Run(ctx, cfg, src, engine, reporter, os.Stderr)
	if err != nil {
		return err
	}
	if summary.Skipped > 0 {
		return fmt.Errorf("%d genome(s) skipped after search failures", summary.Skipped)
	}
	return nil
}

func sqliteDBPath(format types.ReportFormat, outPath string) string {
	if format == types.FormatSQLite {
		return outPath
	}
	return ""
}

// checkConfigFromFlags merges the defaults, the viper config file, and the
// command-line flags, in increasing priority.
func checkConfigFromFlags(cmd *cobra.Command) (types.CheckConfig, error) {
	cfg := types.DefaultCheckConfig()

	// Config-file values sit between the built-in defaults and the flags.
	if viper.IsSet("check.min_subject_coverage") {
		cfg.Blast.MinSubjectCoverage = viper.GetFloat64("check.min_subject_coverage")
	}
	if viper.IsSet("check.max_e_value") {
		cfg.Blast.MaxEValue = viper.GetFloat64("check.max_e_value")
	}
	if viper.IsSet("check.batch_size") {
		cfg.Blast.BatchSize = viper.GetInt("check.batch_size")
	}
	if viper.IsSet("check.workers") {
		cfg.Blast.Workers = viper.GetInt("check.workers")
	}
	if viper.IsSet("check.bin_dir") {
		cfg.Blast.BinDir = viper.GetString("check.bin_dir")
	}
	if viper.IsSet("check.tmp_dir") {
		cfg.Blast.TmpDir = viper.GetString("check.tmp_dir")
	}
	if viper.IsSet("check.source") {
		cfg.Source = types.SourceKind(viper.GetString("check.source"))
	}
	if viper.IsSet("check.format") {
		cfg.Format = types.ReportFormat(viper.GetString("check.format"))
	}
	if viper.IsSet("check.on_error") {
		cfg.OnError = types.OnSearchError(viper.GetString("check.on_error"))
	}
	if viper.IsSet("check.ssu_pattern") {
		cfg.SSUPattern = viper.GetString("check.ssu_pattern")
	}

	flags := cmd.Flags()
	if flags.Changed("min-subject") {
		cfg.Blast.MinSubjectCoverage, _ = flags.GetFloat64("min-subject")
	}
	if flags.Changed("max-evalue") {
		cfg.Blast.MaxEValue, _ = flags.GetFloat64("max-evalue")
	}
	if flags.Changed("batch-size") {
		cfg.Blast.BatchSize, _ = flags.GetInt("batch-size")
	}
	if flags.Changed("workers") {
		cfg.Blast.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("blast-bin") {
		cfg.Blast.BinDir, _ = flags.GetString("blast-bin")
	}
	if flags.Changed("tmp-dir") {
		cfg.Blast.TmpDir, _ = flags.GetString("tmp-dir")
	}
	if flags.Changed("type") {
		v, _ := flags.GetString("type")
		cfg.Source = types.SourceKind(v)
	}
	if flags.Changed("format") {
		v, _ := flags.GetString("format")
		cfg.Format = types.ReportFormat(v)
	}
	if flags.Changed("on-error") {
		v, _ := flags.GetString("on-error")
		cfg.OnError = types.OnSearchError(v)
	}
	if flags.Changed("ssu-pattern") {
		cfg.SSUPattern, _ = flags.GetString("ssu-pattern")
	}

	switch cfg.Source {
	case types.SourceDir, types.SourceFile:
	default:
		return cfg, fmt.Errorf("unknown genome source type %q: use dir or file", cfg.Source)
	}
	switch cfg.OnError {
	case types.OnErrorFail, types.OnErrorSkip:
	default:
		return cfg, fmt.Errorf("unknown error mode %q: use fail or skip", cfg.OnError)
	}
	if cfg.Format == types.FormatSQLite {
		if out, _ := flags.GetString("output"); out == "" {
			return cfg, fmt.Errorf("the sqlite format requires --output with a database path")
		}
	}
	if cfg.Blast.BatchSize < 1 {
		return cfg, fmt.Errorf("batch size must be at least 1, got %d", cfg.Blast.BatchSize)
	}
	return cfg, nil
}

func init() {
	checkCmd.Flags().Float64("min-subject", 95.0, "minimum percent of the subject sequence a hit must cover")
	checkCmd.Flags().Float64("max-evalue", 1e-10, "maximum permissible e-value for a hit")
	checkCmd.Flags().Int("batch-size", 20, "contigs submitted per search call")
	checkCmd.Flags().Int("workers", 1, "concurrent search batches per genome")
	checkCmd.Flags().String("type", "dir", "genome source type: dir or file")
	checkCmd.Flags().String("format", "list", "report format: list, json, or sqlite")
	checkCmd.Flags().String("output", "", "output file (stdout if empty; required for sqlite)")
	checkCmd.Flags().String("on-error", "fail", "search failure handling: fail or skip")
	checkCmd.Flags().String("blast-bin", "", "directory containing the blastn and makeblastdb binaries")
	checkCmd.Flags().String("tmp-dir", "", "directory for temporary query files")
	checkCmd.Flags().String("ssu-pattern", "", "override the SSU rRNA function pattern (Go regexp)")

	rootCmd.AddCommand(checkCmd)
}
