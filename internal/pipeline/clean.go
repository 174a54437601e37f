package pipeline

import (
	"regexp"
	"strings"

	"github.com/matsen/bibtidy/internal/normalize"
	"github.com/matsen/bibtidy/internal/record"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanEntry tidies a single entry in place: runs of whitespace collapse
// to one space, values are trimmed, empty fields are dropped, and the
// doi field loses its resolver URL or label prefix. Field content is
// otherwise untouched; cleaning never lowercases titles or authors.
func CleanEntry(e *record.Entry) {
	for _, name := range e.Fields() {
		value := strings.TrimSpace(whitespaceRe.ReplaceAllString(e.Get(name), " "))
		if value == "" {
			e.Delete(name)
			continue
		}
		e.Set(name, value)
	}
	if e.Has(record.FieldDOI) {
		e.Set(record.FieldDOI, normalize.DOI(e.Get(record.FieldDOI)))
	}
}

// CleanAll cleans every entry in the collection.
func CleanAll(entries []*record.Entry) {
	for _, e := range entries {
		CleanEntry(e)
	}
}
