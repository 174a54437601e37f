package main

import (
	"fmt"
	"os"
	"strings"
)

// maxWarningsShown caps how many warnings a command prints before
// summarizing the rest.
const maxWarningsShown = 10

// exitWithError writes an error message to stderr and exits with code.
func exitWithError(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(code)
}

// printWarnings writes warnings to stderr, truncating long lists.
func printWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	shown := warnings
	if len(shown) > maxWarningsShown {
		shown = shown[:maxWarningsShown]
	}
	for _, w := range shown {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if extra := len(warnings) - len(shown); extra > 0 {
		fmt.Fprintf(os.Stderr, "warning: ... and %d more\n", extra)
	}
}

// derivedPath builds an output path from an input path by replacing its
// extension with suffix. "refs.bib" with suffix "_fix.bib" becomes
// "refs_fix.bib".
func derivedPath(input, suffix string) string {
	base := strings.TrimSuffix(input, ".bib")
	base = strings.TrimSuffix(base, ".tex")
	return base + suffix
}
