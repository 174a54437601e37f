package dedup

import (
	"fmt"

	"github.com/matsen/bibtidy/internal/record"
)

// UniquifyKeys renames entries so that all citation keys are pairwise
// distinct, returning the number of entries renamed. Entries are scanned
// left to right; the first occurrence of a key is kept, later occurrences
// are renamed by probing suffixes _a through _z and then falling back to
// _2, _3, ... The numeric counter always starts at 2 regardless of how
// many letter suffixes were consumed.
func UniquifyKeys(entries []*record.Entry) int {
	taken := make(map[string]bool, len(entries))
	renamed := 0

	for _, e := range entries {
		if taken[e.ID] {
			e.ID = nextFreeKey(e.ID, taken)
			renamed++
		}
		taken[e.ID] = true
	}
	return renamed
}

// nextFreeKey finds the first untaken suffixed variant of key. The search
// space is exhaustive, so this cannot fail.
func nextFreeKey(key string, taken map[string]bool) string {
	for c := 'a'; c <= 'z'; c++ {
		candidate := fmt.Sprintf("%s_%c", key, c)
		if !taken[candidate] {
			return candidate
		}
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s_%d", key, n)
		if !taken[candidate] {
			return candidate
		}
	}
}
