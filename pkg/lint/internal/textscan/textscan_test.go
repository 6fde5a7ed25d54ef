package textscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSentenceStart(t *testing.T) {
	tests := []struct {
		name string
		text string
		i    int
		want bool
	}{
		{"start of text", "So it goes", 0, true},
		{"after leading space", "  So it goes", 2, true},
		{"after period", "Done. So", 6, true},
		{"after question", "Why? So", 5, true},
		{"after semicolon", "one; so", 5, true},
		{"after newline", "one\nso", 4, true},
		{"after CRLF and indent", "one\r\n  so", 7, true},
		{"mid sentence", "it is so", 6, false},
		{"after comma", "yes, so", 5, false},
		{"period without space", "a.so", 2, false},
		{"out of range", "so", 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSentenceStart(tt.text, tt.i))
		})
	}
}

func TestWords(t *testing.T) {
	text := "Don’t stop, don't go_on 42x"
	var got []string
	for _, w := range Words(text) {
		got = append(got, text[w.Start:w.End])
	}
	assert.Equal(t, []string{"Don’t", "stop", "don't", "go_on", "42x"}, got)
}

func TestRuneAfter(t *testing.T) {
	r, ok := RuneAfter("so?", 2)
	assert.True(t, ok)
	assert.Equal(t, '?', r)

	_, ok = RuneAfter("so", 2)
	assert.False(t, ok)
}

func TestIsBlank(t *testing.T) {
	assert.False(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" , "))
}

func TestPhraseMatcher(t *testing.T) {
	m := NewPhraseMatcher([]string{"a number of", "number", " ", "don't"})

	tests := []struct {
		name string
		text string
		want [][2]int
	}{
		{"longest wins", "A Number Of cats", [][2]int{{0, 11}}},
		{"tabs between words", "a\tnumber  of", [][2]int{{0, 12}}},
		{"no line breaks", "a\nnumber of", [][2]int{{2, 8}}},
		{"word boundaries", "numbers renumber", [][2]int{}},
		{"curly apostrophe", "I don’t", [][2]int{{2, 9}}},
		{"inside non-ASCII word", "Übernumber numberé", [][2]int{}},
		{"after non-ASCII word", "é number", [][2]int{{3, 9}}},
		{"shorter phrase after rejected longer", "a number ofé", [][2]int{{2, 8}}},
		{"empty text", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.FindAll(tt.text))
		})
	}
}

func TestPhraseMatcher_Empty(t *testing.T) {
	assert.Nil(t, NewPhraseMatcher(nil).FindAll("anything"))

	var m *PhraseMatcher
	assert.Nil(t, m.FindAll("anything"))
}

func TestPatternMatcher(t *testing.T) {
	m := NewPatternMatcher(`\bso\b`)
	assert.Equal(t, [][2]int{{0, 2}, {7, 9}}, m.FindAll("So and so"))
	assert.Equal(t, [][2]int{{6, 8}}, m.FindAll("Éso, so"))
}
