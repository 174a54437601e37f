package dedup

import (
	"testing"

	"github.com/matsen/bibtidy/internal/record"
)

func entry(id string, fields ...string) *record.Entry {
	e := record.New(id, "article")
	for i := 0; i+1 < len(fields); i += 2 {
		e.Set(fields[i], fields[i+1])
	}
	return e
}

func TestFingerprints_DOI(t *testing.T) {
	tests := []struct {
		name string
		doi  string
		want string
	}{
		{"plain", "10.1234/abc", "10.1234/abc"},
		{"uppercase", "10.1234/ABC", "10.1234/abc"},
		{"resolver prefix", "https://doi.org/10.1234/abc", "10.1234/abc"},
		{"doi label", "doi:10.1234/abc", "10.1234/abc"},
		{"blank", "   ", ""},
		{"absent", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := entry("x")
			if tt.doi != "" {
				e.Set("doi", tt.doi)
			}
			doiFP, _, _ := Fingerprints(e)
			if doiFP != tt.want {
				t.Errorf("doi fingerprint = %q, want %q", doiFP, tt.want)
			}
		})
	}
}

func TestFingerprints_Content(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		want    ContentFingerprint
		wantOK  bool
	}{
		{
			name:   "title author year",
			fields: []string{"title", "A Study of Widgets", "author", "Smith, John and Doe, Jane", "year", "2020"},
			want:   ContentFingerprint{Title: "astudyofwidgets", Author: "smith", Year: "2020"},
			wantOK: true,
		},
		{
			name:   "given name first author",
			fields: []string{"title", "A Study of Widgets", "author", "John Smith"},
			want:   ContentFingerprint{Title: "astudyofwidgets", Author: "smith", Year: ""},
			wantOK: true,
		},
		{
			name:   "year only corroboration",
			fields: []string{"title", "A Study of Widgets", "year", "2020"},
			want:   ContentFingerprint{Title: "astudyofwidgets", Author: "", Year: "2020"},
			wantOK: true,
		},
		{
			name:   "title too short",
			fields: []string{"title", "Widgets", "year", "2020"},
			wantOK: false,
		},
		{
			name:   "no author or year",
			fields: []string{"title", "A Study of Widgets"},
			wantOK: false,
		},
		{
			name:   "no title",
			fields: []string{"author", "Smith, John", "year", "2020"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fp, ok := Fingerprints(entry("x", tt.fields...))
			if ok != tt.wantOK {
				t.Fatalf("hasContent = %v, want %v", ok, tt.wantOK)
			}
			if ok && fp != tt.want {
				t.Errorf("content fingerprint = %+v, want %+v", fp, tt.want)
			}
		})
	}
}

func TestFirstAuthorSurname(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"smith, john and doe, jane", "smith"},
		{"john smith and jane doe", "smith"},
		{"smith", "smith"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstAuthorSurname(tt.input); got != tt.want {
			t.Errorf("firstAuthorSurname(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
