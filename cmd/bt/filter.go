package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matsen/bibtidy/internal/bibtex"
	"github.com/matsen/bibtidy/internal/texfilter"
	"github.com/spf13/cobra"
)

var (
	filterOutput  string
	filterNoAlert bool
)

func init() {
	filterCmd.Flags().StringVarP(&filterOutput, "output", "o", "", "Output file (default <input>_cited.bib)")
	filterCmd.Flags().BoolVar(&filterNoAlert, "no-alerts", false, "Skip the missing-citation alerts report")
	rootCmd.AddCommand(filterCmd)
}

var filterCmd = &cobra.Command{
	Use:   "filter <input.bib> <paper.tex>",
	Short: "Keep only the entries a LaTeX document cites",
	Long: `Filter a bibliography down to the citation keys that appear in a
LaTeX document's \cite and \nocite commands. A \nocite{*} keeps every
entry.

Keys cited in the document but absent from the bibliography are listed
in an alerts report next to the output file, with close-match
suggestions for likely typos.`,
	Args: cobra.ExactArgs(2),
	RunE: runFilter,
}

func runFilter(cmd *cobra.Command, args []string) error {
	input, texPath := args[0], args[1]
	output := filterOutput
	if output == "" {
		output = derivedPath(input, "_cited.bib")
	}

	entries, err := bibtex.Load(input)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", input, err)
	}

	cites, err := texfilter.ExtractFile(texPath)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", texPath, err)
	}

	kept, missing := texfilter.Filter(entries, cites)

	if err := bibtex.Save(kept, output); err != nil {
		exitWithError(ExitError, "writing %s: %v", output, err)
	}
	fmt.Printf("Kept %d of %d entries cited by %s\n", len(kept), len(entries), texPath)

	if len(missing) > 0 && !filterNoAlert {
		available := make([]string, 0, len(entries))
		for _, e := range entries {
			available = append(available, e.ID)
		}
		report := texfilter.AlertsReport(filepath.Base(texPath), missing, available)
		alertsPath := derivedPath(output, "_alerts.md")
		if err := os.WriteFile(alertsPath, []byte(report), 0o644); err != nil {
			exitWithError(ExitError, "writing %s: %v", alertsPath, err)
		}
		fmt.Fprintf(os.Stderr, "warning: %d cited keys missing from %s, see %s\n",
			len(missing), input, alertsPath)
	}
	return nil
}
