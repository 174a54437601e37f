package record

import (
	"reflect"
	"testing"
)

func TestEntry_SetPreservesOrder(t *testing.T) {
	e := New("smith2020", "article")
	e.Set("title", "A Study of Widgets")
	e.Set("author", "Smith, John")
	e.Set("year", "2020")
	e.Set("title", "A Revised Study of Widgets") // update in place

	want := []string{"title", "author", "year"}
	if got := e.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if got := e.Get("title"); got != "A Revised Study of Widgets" {
		t.Errorf("Get(title) = %q after update", got)
	}
}

func TestEntry_GetIsCaseInsensitive(t *testing.T) {
	e := New("x", "article")
	e.Set("DOI", "10.1234/abc")

	if got := e.Get("doi"); got != "10.1234/abc" {
		t.Errorf("Get(doi) = %q, want 10.1234/abc", got)
	}
	if !e.Has("Doi") {
		t.Error("Has(Doi) = false, want true")
	}
}

func TestEntry_Delete(t *testing.T) {
	e := New("x", "article")
	e.Set("title", "T")
	e.Set("year", "2020")
	e.Delete("title")

	if e.Has("title") {
		t.Error("title still present after Delete")
	}
	want := []string{"year"}
	if got := e.Fields(); !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	// Deleting an absent field is a no-op.
	e.Delete("volume")
	if e.Len() != 1 {
		t.Errorf("Len() = %d, want 1", e.Len())
	}
}

func TestAuthorSurnames(t *testing.T) {
	tests := []struct {
		name   string
		author string
		editor string
		want   []string
	}{
		{
			name:   "surname first",
			author: "Smith, John and Doe, Jane",
			want:   []string{"Smith", "Doe"},
		},
		{
			name:   "no comma keeps whole name",
			author: "John Smith and Doe, Jane",
			want:   []string{"John Smith", "Doe"},
		},
		{
			name:   "editor fallback",
			editor: "Brown, Pat",
			want:   []string{"Brown"},
		},
		{
			name: "empty",
			want: nil,
		},
		{
			name:   "whitespace only",
			author: "   ",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New("x", "article")
			if tt.author != "" {
				e.Set(FieldAuthor, tt.author)
			}
			if tt.editor != "" {
				e.Set(FieldEditor, tt.editor)
			}
			if got := AuthorSurnames(e); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AuthorSurnames() = %v, want %v", got, tt.want)
			}
		})
	}
}
