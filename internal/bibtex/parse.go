// Package bibtex loads and saves bibliography files, preserving entry
// order and unknown fields.
package bibtex

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/matsen/bibtidy/internal/record"
)

// Load reads and parses a .bib file.
func Load(path string) ([]*record.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bib file: %w", err)
	}
	entries, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return entries, nil
}

// Parse parses BibTeX text into an ordered entry collection. The parser
// is tolerant: @comment, @preamble, and @string blocks are skipped, and
// field values may be braced, quoted, or bare.
func Parse(text string) ([]*record.Entry, error) {
	p := &parser{src: []rune(text)}
	var entries []*record.Entry

	for {
		if !p.seek('@') {
			return entries, nil
		}
		p.pos++ // consume '@'

		entryType := strings.ToLower(p.readName())
		p.skipSpace()
		if p.peek() != '{' {
			// Stray '@' outside an entry; keep scanning.
			continue
		}

		switch entryType {
		case "comment", "preamble", "string":
			if err := p.skipBalanced(); err != nil {
				return nil, err
			}
			continue
		}

		e, err := p.readEntry(entryType)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
}

type parser struct {
	src []rune
	pos int
}

func (p *parser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) seek(r rune) bool {
	for p.pos < len(p.src) {
		if p.src[p.pos] == r {
			return true
		}
		p.pos++
	}
	return false
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

// readName reads an identifier: letters, digits, and common key
// punctuation.
func (p *parser) readName() string {
	start := p.pos
	for p.pos < len(p.src) {
		r := p.src[p.pos]
		if unicode.IsSpace(r) || r == '{' || r == '}' || r == ',' || r == '=' || r == '(' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// skipBalanced consumes a brace-balanced block starting at '{'.
func (p *parser) skipBalanced() error {
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				p.pos++
				return nil
			}
		}
		p.pos++
	}
	return fmt.Errorf("unterminated block at end of input")
}

// readEntry parses "{key, field = value, ...}" after the entry type.
func (p *parser) readEntry(entryType string) (*record.Entry, error) {
	p.pos++ // consume '{'
	p.skipSpace()

	key := p.readName()
	if key == "" {
		return nil, fmt.Errorf("entry @%s missing citation key", entryType)
	}
	e := record.New(key, entryType)

	for {
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
			continue
		case '}':
			p.pos++
			return e, nil
		case 0:
			return nil, fmt.Errorf("unterminated entry %q", key)
		}

		name := strings.ToLower(p.readName())
		p.skipSpace()
		if p.peek() != '=' {
			return nil, fmt.Errorf("entry %q: expected '=' after field %q", key, name)
		}
		p.pos++ // consume '='
		p.skipSpace()

		value, err := p.readValue()
		if err != nil {
			return nil, fmt.Errorf("entry %q, field %q: %w", key, name, err)
		}
		if name != "" {
			e.Set(name, strings.TrimSpace(value))
		}
	}
}

// readValue reads a braced, quoted, or bare field value.
func (p *parser) readValue() (string, error) {
	switch p.peek() {
	case '{':
		return p.readBraced()
	case '"':
		return p.readQuoted()
	default:
		start := p.pos
		for p.pos < len(p.src) {
			r := p.src[p.pos]
			if r == ',' || r == '}' || r == '\n' {
				break
			}
			p.pos++
		}
		return string(p.src[start:p.pos]), nil
	}
}

// readBraced reads "{...}" with nested braces, returning the inner text.
func (p *parser) readBraced() (string, error) {
	p.pos++ // consume opening '{'
	start := p.pos
	depth := 1
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				value := string(p.src[start:p.pos])
				p.pos++
				return value, nil
			}
		}
		p.pos++
	}
	return "", fmt.Errorf("unterminated braced value")
}

// readQuoted reads a double-quoted value. Braces inside quotes protect
// quote characters, per BibTeX convention.
func (p *parser) readQuoted() (string, error) {
	p.pos++ // consume opening '"'
	start := p.pos
	depth := 0
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '{':
			depth++
		case '}':
			depth--
		case '"':
			if depth == 0 {
				value := string(p.src[start:p.pos])
				p.pos++
				return value, nil
			}
		}
		p.pos++
	}
	return "", fmt.Errorf("unterminated quoted value")
}
