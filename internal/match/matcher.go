package match

import (
	"fmt"

	"github.com/matsen/bibtidy/internal/normalize"
	"github.com/matsen/bibtidy/internal/record"
)

// DefaultThreshold is the minimum title-similarity ratio a candidate must
// reach before any other check is considered.
const DefaultThreshold = 0.85

// Candidate is a read-only metadata record returned by an external
// search, not yet trusted. Year is a plain 4-digit string derived by the
// search collaborator.
type Candidate struct {
	Title          string
	AuthorSurnames []string
	Year           string
	ContainerTitle string
	Volume         string
	Issue          string
	Pages          string
	DOI            string
}

// Matcher decides whether a candidate's claimed identifier may be
// attached to a local entry. An optional AuditLog records every
// acceptance and rejection with its reason for operator review.
type Matcher struct {
	Threshold float64
	Log       *AuditLog
}

// NewMatcher returns a Matcher with the default similarity threshold.
func NewMatcher() *Matcher {
	return &Matcher{Threshold: DefaultThreshold}
}

// Select scores candidates in order against the entry and returns the
// normalized identifier of the best-scoring survivor, or "" and false if
// no candidate survives all checks.
//
// Each candidate passes through title similarity, author corroboration,
// year agreement, and field corroboration, short-circuiting on the first
// failure. Survivors are ranked by title similarity; on a tie the earlier
// candidate wins. The winner's identifier must still pass the DOI shape
// check or the whole selection is rejected.
func (m *Matcher) Select(e *record.Entry, candidates []Candidate) (string, bool) {
	threshold := m.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	entryTitle := normalize.Text(e.Get(record.FieldTitle))
	entryYear := normalize.Year(e.Get(record.FieldYear))
	entryAuthors := record.AuthorSurnames(e)

	var best *Candidate
	bestScore := 0.0

	for i := range candidates {
		c := &candidates[i]
		score := Ratio(entryTitle, normalize.Text(c.Title))
		if score < threshold {
			m.logf(e.ID, "reject title similarity %.2f (%s)", score, clip(c.Title))
			continue
		}
		if !authorsCorroborate(entryAuthors, c.AuthorSurnames) {
			m.logf(e.ID, "reject author mismatch (%s)", clip(c.Title))
			continue
		}
		if entryYear != "" && c.Year != "" && entryYear != c.Year {
			m.logf(e.ID, "reject year mismatch (%s vs %s)", entryYear, c.Year)
			continue
		}
		if reason := fieldMismatch(e, c); reason != "" {
			m.logf(e.ID, "reject %s (%s)", reason, clip(c.Title))
			continue
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	if best == nil {
		return "", false
	}

	doi := normalize.DOI(best.DOI)
	if !normalize.IsValidDOI(doi) {
		m.logf(e.ID, "reject invalid DOI format (%s)", best.DOI)
		return "", false
	}

	m.logf(e.ID, "accept DOI %s (score %.2f)", doi, bestScore)
	return doi, true
}

// authorsCorroborate reports whether at least one candidate surname
// matches an entry surname. An entry without parsed authors, or a
// candidate without any, passes automatically.
func authorsCorroborate(entryAuthors, candidateAuthors []string) bool {
	if len(entryAuthors) == 0 || len(candidateAuthors) == 0 {
		return true
	}

	known := make(map[string]bool, len(entryAuthors))
	for _, a := range entryAuthors {
		if n := normalize.Author(a); n != "" {
			known[n] = true
		}
	}
	for _, a := range candidateAuthors {
		if n := normalize.Author(a); n != "" && known[n] {
			return true
		}
	}
	return false
}

// fieldMismatch compares fields the entry actually provides against the
// candidate's. A present-but-mismatched field rejects the candidate; an
// absent field on either side is never a mismatch.
func fieldMismatch(e *record.Entry, c *Candidate) string {
	entryJournal := normalize.Text(e.Get(record.FieldJournal))
	if entryJournal == "" {
		entryJournal = normalize.Text(e.Get(record.FieldBooktitle))
	}
	if v := normalize.Text(c.ContainerTitle); entryJournal != "" && v != "" && entryJournal != v {
		return "journal mismatch"
	}

	if ev, cv := normalize.Text(e.Get(record.FieldVolume)), normalize.Text(c.Volume); ev != "" && cv != "" && ev != cv {
		return "volume mismatch"
	}
	if ev, cv := normalize.Text(e.Get(record.FieldNumber)), normalize.Text(c.Issue); ev != "" && cv != "" && ev != cv {
		return "issue mismatch"
	}
	if ev, cv := normalize.Pages(e.Get(record.FieldPages)), normalize.Pages(c.Pages); ev != "" && cv != "" && ev != cv {
		return "pages mismatch"
	}
	return ""
}

func (m *Matcher) logf(entryID, format string, args ...any) {
	if m.Log == nil {
		return
	}
	m.Log.Append(fmt.Sprintf("- %s: %s", entryID, fmt.Sprintf(format, args...)))
}

// clip shortens a title for audit log lines, counting runes so a
// multibyte character is never split.
func clip(s string) string {
	const maxLen = 80
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
