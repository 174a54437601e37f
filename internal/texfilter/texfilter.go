// Package texfilter extracts citation keys from TeX sources and filters
// a bibliography down to the entries actually cited.
package texfilter

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/matsen/bibtidy/internal/record"
)

var (
	citeRe   = regexp.MustCompile(`(?s)\\cite[a-zA-Z*]*\s*(\[[^\]]*\]\s*){0,2}\{([^}]*)\}`)
	nociteRe = regexp.MustCompile(`(?s)\\nocite\s*(\[[^\]]*\]\s*){0,2}\{([^}]*)\}`)
)

// Citations is the set of keys cited in a TeX document. IncludeAll is
// set by \nocite{*}, which asks for the whole bibliography.
type Citations struct {
	Keys       map[string]bool
	IncludeAll bool
}

// ExtractFile reads a .tex file and extracts its citation keys.
func ExtractFile(path string) (Citations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Citations{}, fmt.Errorf("reading tex file: %w", err)
	}
	return Extract(string(data)), nil
}

// Extract collects the keys of every \cite and \nocite command in the
// document, after stripping TeX comments.
func Extract(text string) Citations {
	text = StripComments(text)
	c := Citations{Keys: make(map[string]bool)}

	collect := func(matches [][]string) {
		for _, m := range matches {
			for _, key := range strings.Split(m[2], ",") {
				key = strings.TrimSpace(key)
				if key == "*" {
					c.IncludeAll = true
				} else if key != "" {
					c.Keys[key] = true
				}
			}
		}
	}

	collect(nociteRe.FindAllStringSubmatch(text, -1))
	collect(citeRe.FindAllStringSubmatch(text, -1))
	return c
}

// StripComments removes everything from an unescaped % to the end of
// each line.
func StripComments(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for j := 0; j < len(line); j++ {
			if line[j] == '%' && (j == 0 || line[j-1] != '\\') {
				lines[i] = line[:j]
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Filter keeps only entries whose ID is cited, returning the filtered
// collection and the sorted list of cited keys with no matching entry.
// With IncludeAll set the collection is returned untouched; with no keys
// at all the result is empty.
func Filter(entries []*record.Entry, c Citations) ([]*record.Entry, []string) {
	if c.IncludeAll {
		return entries, nil
	}
	if len(c.Keys) == 0 {
		return nil, nil
	}

	existing := make(map[string]bool, len(entries))
	var kept []*record.Entry
	for _, e := range entries {
		existing[e.ID] = true
		if c.Keys[e.ID] {
			kept = append(kept, e)
		}
	}

	var missing []string
	for key := range c.Keys {
		if !existing[key] {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return kept, missing
}
