// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the rna-check CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the rna-check CLI.
var rootCmd = &cobra.Command{
	Use:   "rna-check",
	Short: "Verify SSU rRNA loci in genomes against a reference RNA database",
	Long: `rna-check compares the SSU rRNA content of a genome collection found two
ways: from each genome's own structural annotations, and by BLASTing the
genome's contigs against a reference SSU rRNA database such as SILVA NR99.
Overlapping candidates of the same kind are merged, and each genome's
reconciled locus list is written for side-by-side comparison.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./rna-check.yaml or ~/.config/rna-check/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("rna-check")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "rna-check"))
		}
	}

	viper.SetEnvPrefix("RNA_CHECK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
