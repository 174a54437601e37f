package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/bibtidy/internal/bibtex"
	"github.com/matsen/bibtidy/internal/cache"
	"github.com/matsen/bibtidy/internal/config"
	"github.com/matsen/bibtidy/internal/crossref"
	"github.com/matsen/bibtidy/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	fixOutput   string
	fixNoEnrich bool
	fixVerify   bool
)

func init() {
	fixCmd.Flags().StringVarP(&fixOutput, "output", "o", "", "Output file (default <input>_fix.bib)")
	fixCmd.Flags().BoolVar(&fixNoEnrich, "no-enrich", false, "Skip DOI enrichment via Crossref")
	fixCmd.Flags().BoolVar(&fixVerify, "verify", false, "Print per-candidate match decisions")
	rootCmd.AddCommand(fixCmd)
}

var fixCmd = &cobra.Command{
	Use:   "fix <input.bib>",
	Short: "Clean, deduplicate, and enrich a bibliography",
	Long: `Fix a BibTeX file in four passes:

  1. Clean whitespace and normalize DOI fields.
  2. Merge duplicate entries (same DOI, or same title/author/year).
  3. Rename colliding citation keys.
  4. Look up missing DOIs on Crossref and attach confident matches.

The result is written to a new file; the input is never modified.`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func runFix(cmd *cobra.Command, args []string) error {
	// .env may carry CROSSREF_MAILTO; missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	input := args[0]
	output := fixOutput
	if output == "" {
		output = derivedPath(input, "_fix.bib")
	}

	entries, err := bibtex.Load(input)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", input, err)
	}

	opts := pipeline.Options{Audit: fixVerify}
	if !fixNoEnrich {
		clientOpts := []crossref.ClientOption{crossref.WithMailto(cfg.Mailto)}
		if cfg.APIURL != "" {
			clientOpts = append(clientOpts, crossref.WithBaseURL(cfg.APIURL))
		}
		if cfg.Rows > 0 {
			clientOpts = append(clientOpts, crossref.WithRows(cfg.Rows))
		}
		opts.Searcher = crossref.NewClient(clientOpts...)

		if cfg.CachePath != "" {
			c, err := cache.Open(cfg.CachePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: opening DOI cache: %v\n", err)
			} else {
				opts.Cache = c
				defer c.Close()
			}
		}
	}

	fixed, report := pipeline.Run(cmd.Context(), entries, opts)

	if err := bibtex.Save(fixed, output); err != nil {
		exitWithError(ExitError, "writing %s: %v", output, err)
	}

	fmt.Printf("Loaded %d entries from %s\n", report.Loaded, input)
	if n := report.MergedCount(); n > 0 {
		fmt.Printf("Merged %d duplicate entries:\n", n)
		for _, m := range report.Merges {
			fmt.Printf("  %s <- %s\n", m.MasterID, formatIDs(m.RemovedIDs))
		}
	}
	if report.Renamed > 0 {
		fmt.Printf("Renamed %d colliding keys\n", report.Renamed)
	}
	if len(report.Enriched) > 0 {
		fmt.Printf("Added %d DOIs:\n", len(report.Enriched))
		for _, e := range report.Enriched {
			fmt.Printf("  %s: %s\n", e.EntryID, e.DOI)
		}
	}
	if fixVerify && len(report.AuditLog) > 0 {
		fmt.Println("DOI match decisions:")
		for _, line := range report.AuditLog {
			fmt.Printf("  %s\n", line)
		}
	}
	printWarnings(report.Warnings)
	fmt.Printf("Wrote %d entries to %s\n", len(fixed), output)
	return nil
}

func formatIDs(ids []string) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += id
	}
	return out
}
