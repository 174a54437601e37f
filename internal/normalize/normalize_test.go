package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercase and trim", "  A Study of Widgets ", "a study of widgets"},
		{"collapse whitespace", "a\t\tstudy\n of  widgets", "a study of widgets"},
		{"accents", "Étude des cafés", "etude des cafes"},
		{"german", "Über Größe", "uber grosse"},
		{"nordic", "Søren Kierkegaard", "soren kierkegaard"},
		{"polish", "Łukasz", "lukasz"},
		{"ligature", "Æther", "aether"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAuthor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Smith", "smith"},
		{"punctuation stripped", "O'Brien-Smith, J.", "obriensmithj"},
		{"accented", "Müller", "muller"},
		{"digits kept", "Smith 3rd", "smith3rd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Author(tt.input); got != tt.want {
				t.Errorf("Author(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDOI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "10.1234/ABC", "10.1234/abc"},
		{"https resolver", "https://doi.org/10.1234/abc", "10.1234/abc"},
		{"http dx resolver", "http://dx.doi.org/10.1234/abc", "10.1234/abc"},
		{"doi label", "DOI: 10.1234/abc", "10.1234/abc"},
		{"label no space", "doi:10.1234/abc", "10.1234/abc"},
		{"surrounding whitespace", "  10.1234/abc  ", "10.1234/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DOI(tt.input); got != tt.want {
				t.Errorf("DOI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidDOI(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"10.1234/abc", true},
		{"https://doi.org/10.1234/abc.123", true},
		{"10.123456789/abc", true},
		{"10.123/abc", false},     // too few registrant digits
		{"10.1234/", false},       // empty suffix
		{"10.1234/a b", false},    // whitespace in suffix
		{"11.1234/abc", false},    // wrong prefix
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidDOI(tt.input); got != tt.want {
				t.Errorf("IsValidDOI(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"123-456", "123-456"},
		{"123--456", "123--456"},
		{"pp. 123 - 456", "123-456"},
	}

	for _, tt := range tests {
		if got := Pages(tt.input); got != tt.want {
			t.Errorf("Pages(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAlnum(t *testing.T) {
	if got := Alnum("a study: of widgets, 2nd ed."); got != "astudyofwidgets2nded" {
		t.Errorf("Alnum() = %q", got)
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2020", "2020"},
		{"c. 2020, reprinted 2021", "2020"},
		{"n.d.", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Year(tt.input); got != tt.want {
			t.Errorf("Year(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
