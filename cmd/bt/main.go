// Package main provides the bt CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bt",
	Short: "Clean, deduplicate, and enrich BibTeX bibliographies",
	Long: `bt keeps BibTeX files tidy.

It normalizes entries, merges duplicates, renames colliding citation keys,
and fills in missing DOIs by matching entries against the Crossref API.
It can also filter a bibliography down to the entries a LaTeX document
actually cites.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
