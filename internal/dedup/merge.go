package dedup

import "github.com/matsen/bibtidy/internal/record"

// MergeEntries merges a duplicate group into its first member, the
// master. Fields are filled from later members only where the master's
// value is absent or empty; a non-empty master field is never
// overwritten. The master's ID and entry type are kept, except that an
// empty entry type is filled like any other missing value.
func MergeEntries(entries []*record.Entry) *record.Entry {
	if len(entries) == 0 {
		return nil
	}
	master := entries[0]
	for _, other := range entries[1:] {
		if master.Type == "" {
			master.Type = other.Type
		}
		for _, name := range other.Fields() {
			if !master.Has(name) {
				master.Set(name, other.Get(name))
			}
		}
	}
	return master
}
