package dedup

import (
	"fmt"

	"github.com/matsen/bibtidy/internal/normalize"
	"github.com/matsen/bibtidy/internal/record"
)

// minFuzzyTitleLen is the minimum simplified title length considered by
// the fuzzy audit. Shorter titles collide too often to be meaningful.
const minFuzzyTitleLen = 15

// CheckFuzzyDuplicates is a non-mutating audit pass that flags entries
// with matching simplified titles. It matches on title alone, with no
// author or year corroboration, so it surfaces likely duplicates that
// Deduplicate deliberately left unmerged.
func CheckFuzzyDuplicates(entries []*record.Entry) []string {
	var warnings []string
	seen := make(map[string]string)

	for _, e := range entries {
		if !e.Has(record.FieldTitle) {
			continue
		}
		simple := normalize.Alnum(normalize.Text(e.Get(record.FieldTitle)))
		if len(simple) < minFuzzyTitleLen {
			continue
		}
		if prev, ok := seen[simple]; ok {
			warnings = append(warnings, fmt.Sprintf(
				"possible duplicate (not merged): %q and %q have similar titles", e.ID, prev))
		} else {
			seen[simple] = e.ID
		}
	}
	return warnings
}
