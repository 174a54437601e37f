package dedup

import (
	"strings"

	"github.com/matsen/bibtidy/internal/normalize"
	"github.com/matsen/bibtidy/internal/record"
)

// MergeRecord records one resolved duplicate group: the surviving master
// and the IDs removed by merging into it.
type MergeRecord struct {
	MasterID   string
	RemovedIDs []string
}

// doiGroups is an insertion-ordered map from DOI fingerprint to entry IDs.
type doiGroups struct {
	keys []string
	m    map[string][]string
}

func (g *doiGroups) add(key, id string) {
	if _, ok := g.m[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.m[key] = append(g.m[key], id)
}

// contentGroups is an insertion-ordered map from content fingerprint to
// entry IDs.
type contentGroups struct {
	keys []ContentFingerprint
	m    map[ContentFingerprint][]string
}

func (g *contentGroups) add(key ContentFingerprint, id string) {
	if _, ok := g.m[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.m[key] = append(g.m[key], id)
}

// Deduplicate identifies and merges duplicate entries, returning the
// surviving collection and the ordered list of merge records.
//
// Grouping is two-pass and priority-ordered. DOI-fingerprint groups are
// processed first: DOI equality is the strongest duplicate signal, and
// marking its losers as removed prevents the content pass from re-merging
// entries already consolidated. Content-fingerprint groups are processed
// second, and a content merge is refused outright when the remaining
// members carry two or more distinct non-empty DOIs, since similar titles
// with mismatched DOIs are not duplicates.
func Deduplicate(entries []*record.Entry) ([]*record.Entry, []MergeRecord) {
	byID := make(map[string]*record.Entry, len(entries))
	dois := &doiGroups{m: make(map[string][]string)}
	contents := &contentGroups{m: make(map[ContentFingerprint][]string)}

	for _, e := range entries {
		byID[e.ID] = e
		doiFP, contentFP, hasContent := Fingerprints(e)
		if doiFP != "" {
			dois.add(doiFP, e.ID)
		}
		if hasContent {
			contents.add(contentFP, e.ID)
		}
	}

	removed := make(map[string]bool)
	var merges []MergeRecord

	processGroup := func(ids []string, allowDOIConflict bool) {
		valid := ids[:0:0]
		for _, id := range ids {
			if !removed[id] {
				valid = append(valid, id)
			}
		}
		if len(valid) < 2 {
			return
		}

		if !allowDOIConflict && hasConflictingDOIs(valid, byID) {
			return
		}

		group := make([]*record.Entry, len(valid))
		for i, id := range valid {
			group[i] = byID[id]
		}
		MergeEntries(group)

		rec := MergeRecord{MasterID: valid[0]}
		for _, id := range valid[1:] {
			removed[id] = true
			rec.RemovedIDs = append(rec.RemovedIDs, id)
		}
		merges = append(merges, rec)
	}

	// DOI groups first. The conflicting-DOI guard is moot here: the
	// grouping key is the DOI itself, so all members already agree.
	for _, key := range dois.keys {
		if ids := dois.m[key]; len(ids) >= 2 {
			processGroup(ids, true)
		}
	}
	for _, key := range contents.keys {
		if ids := contents.m[key]; len(ids) >= 2 {
			processGroup(ids, false)
		}
	}

	if len(removed) == 0 {
		return entries, merges
	}

	survivors := make([]*record.Entry, 0, len(entries)-len(removed))
	for _, e := range entries {
		if !removed[e.ID] {
			survivors = append(survivors, e)
		}
	}
	return survivors, merges
}

// hasConflictingDOIs reports whether the group members carry two or more
// distinct non-empty normalized DOIs.
func hasConflictingDOIs(ids []string, byID map[string]*record.Entry) bool {
	seen := ""
	for _, id := range ids {
		doi := byID[id].Get(record.FieldDOI)
		if strings.TrimSpace(doi) == "" {
			continue
		}
		norm := normalize.DOI(doi)
		if seen == "" {
			seen = norm
		} else if norm != seen {
			return true
		}
	}
	return false
}
