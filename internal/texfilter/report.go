package texfilter

import (
	"fmt"
	"strings"

	"github.com/matsen/bibtidy/internal/match"
)

const (
	suggestionCutoff = 0.6
	suggestionCount  = 3
)

// AlertsReport renders a Markdown report of cited keys with no matching
// bibliography entry, suggesting close matches among the available keys.
func AlertsReport(texName string, missing, available []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Citation Alerts for `%s`\n", texName)

	if len(missing) == 0 {
		b.WriteString("\nAll cited keys were found in the bibliography.\n")
		return b.String()
	}

	b.WriteString("\n## Missing Citations\n")
	b.WriteString("The following keys are cited in the .tex file but found no match in the .bib file:\n")
	for _, key := range missing {
		fmt.Fprintf(&b, "\n- **%s**\n", key)
		if suggestions := match.CloseMatches(key, available, suggestionCount, suggestionCutoff); len(suggestions) > 0 {
			fmt.Fprintf(&b, "  - *Did you mean?* %s\n", strings.Join(suggestions, ", "))
		} else {
			b.WriteString("  - *No similar keys found.*\n")
		}
	}
	return b.String()
}
