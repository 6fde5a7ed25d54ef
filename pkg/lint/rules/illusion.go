package rules

import (
	"strings"

	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/leapstack-labs/writegood/pkg/lint/internal/textscan"
)

const illusionExplanation = "is repeated"

// Illusion flags a word immediately repeated across whitespace ("the the").
// Only the second occurrence is reported.
var Illusion = lint.RuleDef{
	Name:             "illusion",
	Group:            "typo",
	Description:      "Flags lexical illusions: the same word twice in a row.",
	Explanation:      illusionExplanation,
	EnabledByDefault: true,
	Check:            checkIllusion,
	Rationale:        "Readers skip over a repeated word, especially across a line break.",
	BadExample:       "Many readers miss the the second word.",
	GoodExample:      "Many readers miss the second word.",
}

func checkIllusion(text string) []lint.Match {
	words := textscan.Words(text)
	var matches []lint.Match
	for i := 1; i < len(words); i++ {
		prev, cur := words[i-1], words[i]
		if !textscan.IsBlank(text[prev.End:cur.Start]) {
			continue
		}
		if !strings.EqualFold(text[prev.Start:prev.End], text[cur.Start:cur.End]) {
			continue
		}
		matches = append(matches, lint.Match{
			Index:       cur.Start,
			Offset:      cur.Len(),
			Explanation: illusionExplanation,
		})
	}
	return matches
}
