package record

import "strings"

// AuthorSurnames extracts author surnames from an entry's author field,
// falling back to the editor field when no authors are listed.
//
// The author string follows the BibTeX convention of names joined by
// " and ". For "Last, First" names the surname is the part before the
// first comma; names without a comma are kept whole.
func AuthorSurnames(e *Entry) []string {
	raw := e.Get(FieldAuthor)
	if raw == "" {
		raw = e.Get(FieldEditor)
	}
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var surnames []string
	for _, name := range strings.Split(raw, " and ") {
		surname := name
		if idx := strings.Index(name, ","); idx >= 0 {
			surname = name[:idx]
		}
		surname = strings.TrimSpace(surname)
		if surname != "" {
			surnames = append(surnames, surname)
		}
	}
	return surnames
}
