// Package pdfdoi extracts DOIs from PDF files, for filling in entries
// whose identifier only exists on the paper itself.
package pdfdoi

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/matsen/bibtidy/internal/normalize"
)

// ErrNoDOI indicates the scanned pages contained no valid DOI.
var ErrNoDOI = errors.New("no DOI found")

// doiPattern matches a DOI embedded in page text, excluding characters
// that commonly terminate one.
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// maxScanPages limits the search: a DOI is nearly always on the first page.
const maxScanPages = 3

// Extract returns the first valid DOI found in the opening pages of a
// PDF, normalized. It returns ErrNoDOI when the pages scan clean. An
// unreadable page is skipped, not an error.
func Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxScanPages {
		pages = maxScanPages
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if doi := FindInText(text); doi != "" {
			return doi, nil
		}
	}
	return "", ErrNoDOI
}

// FindInText returns the first valid DOI in a block of text, normalized.
func FindInText(text string) string {
	for _, m := range doiPattern.FindAllString(text, -1) {
		m = strings.TrimRight(m, ".,;:)")
		if normalize.IsValidDOI(m) {
			return normalize.DOI(m)
		}
	}
	return ""
}
