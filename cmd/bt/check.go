package main

import (
	"fmt"
	"os"

	"github.com/matsen/bibtidy/internal/bibtex"
	"github.com/matsen/bibtidy/internal/dedup"
	"github.com/matsen/bibtidy/internal/pipeline"
	"github.com/spf13/cobra"
)

var checkStrict bool

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Exit non-zero when warnings are found")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <input.bib>",
	Short: "Report problems without modifying anything",
	Long: `Check a BibTeX file for entries missing standard fields and for
pairs of entries with suspiciously similar titles that the exact
duplicate merge would not catch. The file is not modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	input := args[0]
	entries, err := bibtex.Load(input)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", input, err)
	}

	warnings := pipeline.ValidateEntries(entries)
	warnings = append(warnings, dedup.CheckFuzzyDuplicates(entries)...)

	if len(warnings) == 0 {
		fmt.Printf("%s: %d entries, no problems found\n", input, len(entries))
		return nil
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	fmt.Printf("%s: %d entries, %d warnings\n", input, len(entries), len(warnings))
	if checkStrict {
		os.Exit(ExitDataError)
	}
	return nil
}
