package texfilter

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matsen/bibtidy/internal/record"
)

func sortedKeys(c Citations) []string {
	var keys []string
	for k := range c.Keys {
		keys = append(keys, k)
	}
	// small sets, insertion sort is fine
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKeys    []string
		wantInclAll bool
	}{
		{
			name:     "simple cite",
			input:    `As shown in \cite{smith2020}.`,
			wantKeys: []string{"smith2020"},
		},
		{
			name:     "multiple keys",
			input:    `\cite{smith2020, doe2021,brown2019}`,
			wantKeys: []string{"brown2019", "doe2021", "smith2020"},
		},
		{
			name:     "citep and citet variants",
			input:    `\citep{a} and \citet*{b} and \citeauthor{c}`,
			wantKeys: []string{"a", "b", "c"},
		},
		{
			name:     "optional arguments",
			input:    `\cite[see][p. 4]{smith2020}`,
			wantKeys: []string{"smith2020"},
		},
		{
			name:     "nocite",
			input:    `\nocite{hidden2020}`,
			wantKeys: []string{"hidden2020"},
		},
		{
			name:        "nocite star",
			input:       `\nocite{*}`,
			wantInclAll: true,
		},
		{
			name:     "commented out cite ignored",
			input:    "real \\cite{kept}\n% ignored \\cite{dropped}",
			wantKeys: []string{"kept"},
		},
		{
			name:     "escaped percent does not comment",
			input:    `50\% of papers \cite{kept}`,
			wantKeys: []string{"kept"},
		},
		{
			name:  "no citations",
			input: `Plain text only.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Extract(tt.input)
			if got := sortedKeys(c); !reflect.DeepEqual(got, tt.wantKeys) {
				t.Errorf("keys = %v, want %v", got, tt.wantKeys)
			}
			if c.IncludeAll != tt.wantInclAll {
				t.Errorf("IncludeAll = %v, want %v", c.IncludeAll, tt.wantInclAll)
			}
		})
	}
}

func entry(id string) *record.Entry {
	e := record.New(id, "article")
	e.Set("title", "T")
	return e
}

func TestFilter(t *testing.T) {
	entries := []*record.Entry{entry("a"), entry("b"), entry("c")}

	c := Citations{Keys: map[string]bool{"a": true, "c": true, "ghost": true}}
	kept, missing := Filter(entries, c)

	var ids []string
	for _, e := range kept {
		ids = append(ids, e.ID)
	}
	if want := []string{"a", "c"}; !reflect.DeepEqual(ids, want) {
		t.Errorf("kept = %v, want %v", ids, want)
	}
	if want := []string{"ghost"}; !reflect.DeepEqual(missing, want) {
		t.Errorf("missing = %v, want %v", missing, want)
	}
}

func TestFilter_IncludeAll(t *testing.T) {
	entries := []*record.Entry{entry("a"), entry("b")}
	kept, missing := Filter(entries, Citations{IncludeAll: true})

	if len(kept) != 2 || missing != nil {
		t.Errorf("Filter with IncludeAll: kept %d, missing %v", len(kept), missing)
	}
}

func TestFilter_NoKeys(t *testing.T) {
	entries := []*record.Entry{entry("a")}
	kept, _ := Filter(entries, Citations{Keys: map[string]bool{}})
	if len(kept) != 0 {
		t.Errorf("Filter with no keys kept %d entries, want 0", len(kept))
	}
}

func TestExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.tex")
	if err := os.WriteFile(path, []byte(`\cite{smith2020}`), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	if !c.Keys["smith2020"] {
		t.Errorf("keys = %v", c.Keys)
	}

	if _, err := ExtractFile(filepath.Join(t.TempDir(), "missing.tex")); err == nil {
		t.Error("ExtractFile() error = nil for missing file")
	}
}

func TestAlertsReport(t *testing.T) {
	got := AlertsReport("paper.tex", []string{"smth2020"}, []string{"smith2020", "jones1999"})

	if !strings.Contains(got, "# Citation Alerts for `paper.tex`") {
		t.Errorf("report missing header:\n%s", got)
	}
	if !strings.Contains(got, "**smth2020**") {
		t.Errorf("report missing key:\n%s", got)
	}
	if !strings.Contains(got, "Did you mean?* smith2020") {
		t.Errorf("report missing suggestion:\n%s", got)
	}
}

func TestAlertsReport_AllFound(t *testing.T) {
	got := AlertsReport("paper.tex", nil, []string{"a"})
	if !strings.Contains(got, "All cited keys were found") {
		t.Errorf("report = %s", got)
	}
}

func TestAlertsReport_NoSuggestions(t *testing.T) {
	got := AlertsReport("paper.tex", []string{"zzzzzzzz"}, []string{"smith2020"})
	if !strings.Contains(got, "No similar keys found") {
		t.Errorf("report = %s", got)
	}
}
