// Package dedup groups bibliography entries by fingerprint, merges
// duplicate groups, uniquifies citation keys, and audits for likely
// duplicates that were deliberately left unmerged.
package dedup

import (
	"strings"

	"github.com/matsen/bibtidy/internal/normalize"
	"github.com/matsen/bibtidy/internal/record"
)

// minFingerprintTitleLen is the minimum normalized title length (exclusive)
// required before a content fingerprint is produced.
const minFingerprintTitleLen = 10

// ContentFingerprint identifies an entry by simplified title, first author
// surname, and year. Two entries sharing a content fingerprint are
// suspected duplicates even when neither carries a DOI.
type ContentFingerprint struct {
	Title  string // title stripped to alphanumerics
	Author string // first author surname, normalized
	Year   string // normalized year text
}

// Fingerprints derives the duplicate-detection keys for an entry.
//
// The DOI fingerprint is the normalized DOI, present whenever the doi
// field is non-blank. The content fingerprint is only produced when the
// normalized title is longer than 10 characters and at least one of the
// author or year fields is non-empty; short or uncorroborated titles are
// too weak a signal to merge on.
func Fingerprints(e *record.Entry) (doiFP string, contentFP ContentFingerprint, hasContent bool) {
	if strings.TrimSpace(e.Get(record.FieldDOI)) != "" {
		doiFP = normalize.DOI(e.Get(record.FieldDOI))
	}

	title := normalize.Text(e.Get(record.FieldTitle))
	author := normalize.Text(e.Get(record.FieldAuthor))
	year := normalize.Text(e.Get(record.FieldYear))

	if len(title) > minFingerprintTitleLen && (author != "" || year != "") {
		contentFP = ContentFingerprint{
			Title:  normalize.Alnum(title),
			Author: firstAuthorSurname(author),
			Year:   year,
		}
		hasContent = true
	}

	return doiFP, contentFP, hasContent
}

// firstAuthorSurname extracts the first author's surname from a
// normalized author string. "smith, john and doe, jane" yields "smith";
// "john smith" (given-name-first) yields "smith".
func firstAuthorSurname(author string) string {
	if author == "" {
		return ""
	}
	first := author
	if idx := strings.Index(author, " and "); idx >= 0 {
		first = author[:idx]
	}
	if idx := strings.Index(first, ","); idx >= 0 {
		return strings.TrimSpace(first[:idx])
	}
	tokens := strings.Fields(first)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}
