// Package record defines the bibliography entry model shared by all
// cleaning, deduplication, and enrichment code.
package record

import "strings"

// Well-known BibTeX field names. Field names are always stored lowercase.
const (
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldEditor    = "editor"
	FieldYear      = "year"
	FieldDOI       = "doi"
	FieldJournal   = "journal"
	FieldBooktitle = "booktitle"
	FieldVolume    = "volume"
	FieldNumber    = "number"
	FieldPages     = "pages"
)

// Entry is a single bibliography record: a citation key, an entry type,
// and an ordered set of string fields. Unknown fields are preserved
// verbatim so round-tripping a .bib file loses nothing.
type Entry struct {
	ID   string // Citation key, mutable (renamed by uniquification)
	Type string // BibTeX entry type: article, book, inproceedings, ...

	fields map[string]string
	order  []string
}

// New creates an empty entry with the given citation key and type.
func New(id, entryType string) *Entry {
	return &Entry{
		ID:     id,
		Type:   entryType,
		fields: make(map[string]string),
	}
}

// Get returns the value of a field, or "" if absent.
func (e *Entry) Get(name string) string {
	return e.fields[strings.ToLower(name)]
}

// Has reports whether the field is present with a non-empty value.
func (e *Entry) Has(name string) bool {
	return e.fields[strings.ToLower(name)] != ""
}

// Set stores a field value, appending the field to the entry's order if
// it is new. Setting an existing field keeps its original position.
func (e *Entry) Set(name, value string) {
	name = strings.ToLower(name)
	if e.fields == nil {
		e.fields = make(map[string]string)
	}
	if _, ok := e.fields[name]; !ok {
		e.order = append(e.order, name)
	}
	e.fields[name] = value
}

// Delete removes a field entirely.
func (e *Entry) Delete(name string) {
	name = strings.ToLower(name)
	if _, ok := e.fields[name]; !ok {
		return
	}
	delete(e.fields, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
}

// Fields returns the field names in insertion order.
func (e *Entry) Fields() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Len returns the number of fields.
func (e *Entry) Len() int {
	return len(e.order)
}
