package main

import (
	"fmt"
	"strconv"

	"github.com/matsen/bibtidy/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  bt config                          # Show all config
  bt config mailto                   # Get specific value
  bt config mailto you@example.org   # Set value

Keys:
  mailto      Contact address for Crossref's polite pool
  api-url     Override the Crossref works endpoint
  rows        Candidate records requested per search
  cache-path  Path to the DOI lookup cache database`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	if len(args) == 0 {
		fmt.Printf("config file: %s\n", config.Path())
		fmt.Printf("mailto:      %s\n", cfg.Mailto)
		fmt.Printf("api-url:     %s\n", cfg.APIURL)
		fmt.Printf("rows:        %d\n", cfg.Rows)
		fmt.Printf("cache-path:  %s\n", cfg.CachePath)
		return nil
	}

	key := args[0]
	if len(args) == 1 {
		switch key {
		case "mailto":
			fmt.Println(cfg.Mailto)
		case "api-url":
			fmt.Println(cfg.APIURL)
		case "rows":
			fmt.Println(cfg.Rows)
		case "cache-path":
			fmt.Println(cfg.CachePath)
		default:
			exitWithError(ExitError, "unknown config key %q", key)
		}
		return nil
	}

	value := args[1]
	switch key {
	case "mailto":
		cfg.Mailto = value
	case "api-url":
		cfg.APIURL = value
	case "rows":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			exitWithError(ExitError, "rows must be a positive integer, got %q", value)
		}
		cfg.Rows = n
	case "cache-path":
		cfg.CachePath = config.ExpandTilde(value)
	default:
		exitWithError(ExitError, "unknown config key %q", key)
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitConfigError, "saving config: %v", err)
	}
	fmt.Printf("set %s = %s\n", key, value)
	return nil
}
