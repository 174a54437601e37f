package bibtex

import (
	"fmt"
	"os"
	"strings"

	"github.com/matsen/bibtidy/internal/record"
)

// Format renders a single entry as BibTeX with two-space indent, fields
// in their stored order.
func Format(e *record.Entry) string {
	var b strings.Builder

	entryType := e.Type
	if entryType == "" {
		entryType = "misc"
	}
	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, e.ID))
	for _, name := range e.Fields() {
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", name, e.Get(name)))
	}
	b.WriteString("}\n")
	return b.String()
}

// FormatAll renders an entry collection in order, entries separated by a
// blank line.
func FormatAll(entries []*record.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = Format(e)
	}
	return strings.Join(parts, "\n")
}

// Save writes the entry collection to a .bib file.
func Save(entries []*record.Entry, path string) error {
	if err := os.WriteFile(path, []byte(FormatAll(entries)), 0644); err != nil {
		return fmt.Errorf("writing bib file: %w", err)
	}
	return nil
}
