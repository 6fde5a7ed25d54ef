// Package annotate renders lint suggestions as source excerpts with caret
// underlines and line/column positions.
package annotate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/leapstack-labs/writegood/pkg/lint"
)

// Position locates a byte offset within a text.
type Position struct {
	Line      int // 1-based line number
	Column    int // 0-based column, in runes from the start of the line
	LineStart int // byte offset of the first byte of the line
	LineEnd   int // byte offset of the line terminator (or len(text))
}

// String formats the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate returns the position of byte offset index in text.
// Offsets past the end of text are clamped.
func Locate(text string, index int) Position {
	if index < 0 {
		index = 0
	}
	if index > len(text) {
		index = len(text)
	}

	line := 1 + strings.Count(text[:index], "\n")
	lineStart := strings.LastIndexByte(text[:index], '\n') + 1
	lineEnd := len(text)
	if i := strings.IndexByte(text[index:], '\n'); i >= 0 {
		lineEnd = index + i
	}

	return Position{
		Line:      line,
		Column:    utf8.RuneCountInString(text[lineStart:index]),
		LineStart: lineStart,
		LineEnd:   lineEnd,
	}
}

// Annotation is a suggestion resolved against its source text.
type Annotation struct {
	Suggestion lint.Suggestion
	Position   Position
	Line       string // the full source line, without its terminator
	Underline  string // padding followed by carets under the span
}

// Message returns the reason suffixed with its location.
func (a Annotation) Message() string {
	return fmt.Sprintf("%s on line %d at column %d", a.Suggestion.Reason, a.Position.Line, a.Position.Column)
}

// String renders the three-line block: source line, underline, message.
func (a Annotation) String() string {
	return a.Line + "\n" + a.Underline + "\n" + a.Message()
}

// Resolve computes the annotation for a single suggestion.
func Resolve(text string, s lint.Suggestion) Annotation {
	pos := Locate(text, s.Index)
	line := strings.TrimSuffix(text[pos.LineStart:pos.LineEnd], "\r")

	start := min(max(s.Index, pos.LineStart), len(text))
	end := min(max(s.End(), start), len(text))

	return Annotation{
		Suggestion: s,
		Position:   pos,
		Line:       line,
		Underline:  padding(text[pos.LineStart:start]) + carets(text[start:end], s.Offset),
	}
}

// Annotate renders one block per suggestion, in the order given.
//
// Suggestion offsets count bytes, but the underline counts display cells:
// one caret per rune, two for wide runes. For non-ASCII spans the number of
// carets is therefore smaller than Offset ("café" has Offset 5 and 4 carets).
func Annotate(text string, suggestions []lint.Suggestion) []string {
	annotations := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		annotations = append(annotations, Resolve(text, s).String())
	}
	return annotations
}

// padding returns whitespace as wide as prefix. Tabs are kept so the
// underline lines up however the terminal expands them.
func padding(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return b.String()
}

// carets returns at least one caret per rune of span, two for wide runes.
// A span that runs past its line is underlined in full.
func carets(span string, offset int) string {
	if span == "" {
		return strings.Repeat("^", max(offset, 1))
	}
	n := 0
	for _, r := range span {
		n += max(runewidth.RuneWidth(r), 1)
	}
	return strings.Repeat("^", n)
}
