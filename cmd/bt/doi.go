package main

import (
	"errors"
	"fmt"

	"github.com/matsen/bibtidy/internal/pdfdoi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doiCmd)
}

var doiCmd = &cobra.Command{
	Use:   "doi <file.pdf>",
	Short: "Extract a DOI from a PDF",
	Long: `Scan the first pages of a PDF for a DOI and print it in
normalized form. Exits with a distinct status when no DOI is found so
scripts can tell "no DOI" apart from a broken file.`,
	Args: cobra.ExactArgs(1),
	RunE: runDOI,
}

func runDOI(cmd *cobra.Command, args []string) error {
	doi, err := pdfdoi.Extract(args[0])
	if err != nil {
		if errors.Is(err, pdfdoi.ErrNoDOI) {
			exitWithError(ExitNotFound, "no DOI found in %s", args[0])
		}
		exitWithError(ExitError, "reading %s: %v", args[0], err)
	}
	fmt.Println(doi)
	return nil
}
