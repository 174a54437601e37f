package pipeline

import (
	"fmt"
	"strings"

	"github.com/matsen/bibtidy/internal/record"
)

// requiredFields are the standard fields every entry is expected to carry.
var requiredFields = []string{record.FieldAuthor, record.FieldTitle, record.FieldYear}

// ValidateEntries returns a warning for each entry missing one of the
// standard author/title/year fields.
func ValidateEntries(entries []*record.Entry) []string {
	var warnings []string
	for _, e := range entries {
		var missing []string
		for _, field := range requiredFields {
			if !e.Has(field) {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			warnings = append(warnings, fmt.Sprintf("entry %s missing fields: %s", e.ID, strings.Join(missing, ", ")))
		}
	}
	return warnings
}
