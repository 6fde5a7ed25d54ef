package annotate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/writegood/pkg/annotate"
	"github.com/leapstack-labs/writegood/pkg/lint"
)

func TestLocate(t *testing.T) {
	text := "first line\nsecond line\n\nfourth"

	tests := []struct {
		name   string
		index  int
		line   int
		column int
	}{
		{name: "start of text", index: 0, line: 1, column: 0},
		{name: "middle of first line", index: 6, line: 1, column: 6},
		{name: "start of second line", index: 11, line: 2, column: 0},
		{name: "middle of second line", index: 18, line: 2, column: 7},
		{name: "empty third line", index: 23, line: 3, column: 0},
		{name: "fourth line", index: 26, line: 4, column: 2},
		{name: "past the end is clamped", index: 100, line: 4, column: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := annotate.Locate(text, tt.index)
			assert.Equal(t, tt.line, pos.Line)
			assert.Equal(t, tt.column, pos.Column)
		})
	}
}

func TestLocate_CountsRunes(t *testing.T) {
	text := "café is good"
	pos := annotate.Locate(text, len("café "))
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 5, pos.Column)
}

func TestAnnotate_WeaselWords(t *testing.T) {
	text := "Remarkably few developers write well."
	suggestions := []lint.Suggestion{
		{Index: 0, Offset: 10, Reason: `"Remarkably" is a weasel word and can weaken meaning`},
		{Index: 11, Offset: 3, Reason: `"few" is a weasel word`},
	}

	annotations := annotate.Annotate(text, suggestions)
	require.Len(t, annotations, 2)

	assert.Equal(t,
		"Remarkably few developers write well.\n"+
			"^^^^^^^^^^\n"+
			`"Remarkably" is a weasel word and can weaken meaning on line 1 at column 0`,
		annotations[0])
	assert.Equal(t,
		"Remarkably few developers write well.\n"+
			"           ^^^\n"+
			`"few" is a weasel word on line 1 at column 11`,
		annotations[1])
}

func TestAnnotate_SecondLine(t *testing.T) {
	text := "Line one.\r\nThe script was killed\nlast"
	s := lint.Suggestion{Index: 22, Offset: 10, Reason: `"was killed" may be passive voice`}

	annotations := annotate.Annotate(text, []lint.Suggestion{s})
	require.Len(t, annotations, 1)
	assert.Equal(t,
		"The script was killed\n"+
			"           ^^^^^^^^^^\n"+
			`"was killed" may be passive voice on line 2 at column 11`,
		annotations[0])
}

func TestAnnotate_KeepsTabs(t *testing.T) {
	text := "\tthe the"
	s := lint.Suggestion{Index: 5, Offset: 3, Reason: `"the" is repeated`}

	a := annotate.Resolve(text, s)
	assert.Equal(t, "\t    ^^^", a.Underline)
	assert.Equal(t, 5, a.Position.Column)
}

func TestAnnotate_UnderlineCountsCellsNotBytes(t *testing.T) {
	text := "Un café fort."
	s := lint.Suggestion{Index: 3, Offset: 5, Reason: `"café" is flagged`}

	a := annotate.Resolve(text, s)
	assert.Equal(t, "   ^^^^", a.Underline)
	assert.Equal(t, 3, a.Position.Column)

	wide := lint.Suggestion{Index: 0, Offset: 6, Reason: `"日本" is flagged`}
	assert.Equal(t, "^^^^", annotate.Resolve("日本語", wide).Underline)
}

func TestAnnotate_SpanAcrossLinesIsNotClipped(t *testing.T) {
	text := "ab\ncd"
	s := lint.Suggestion{Index: 1, Offset: 3, Reason: `"b\nc" spans lines`}

	a := annotate.Resolve(text, s)
	assert.Equal(t, "ab", a.Line)
	assert.Equal(t, " ^^^", a.Underline)
}

func TestAnnotate_Empty(t *testing.T) {
	assert.Empty(t, annotate.Annotate("", nil))
	assert.Empty(t, annotate.Annotate("text", []lint.Suggestion{}))
}
