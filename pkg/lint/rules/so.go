package rules

import (
	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/leapstack-labs/writegood/pkg/lint/internal/textscan"
)

const soExplanation = "adds no meaning"

// So flags "so" at the start of a sentence or clause.
var So = lint.RuleDef{
	Name:             "so",
	Group:            "clarity",
	Description:      "Flags sentences that start with \"so\".",
	Explanation:      soExplanation,
	EnabledByDefault: true,
	Check:            checkSo,
	Rationale:        "An opening \"so\" is filler; the sentence reads the same without it.",
	BadExample:       "So the best thing to do is wait.",
	GoodExample:      "The best thing to do is wait.",
}

var soMatcher = textscan.NewPatternMatcher(`\bso\b`)

func checkSo(text string) []lint.Match {
	var matches []lint.Match
	for _, s := range soMatcher.FindAll(text) {
		if !textscan.IsSentenceStart(text, s[0]) {
			continue
		}
		// "So?" or "So." on its own opens no clause.
		next, ok := textscan.RuneAfter(text, s[1])
		if !ok || textscan.IsSentenceTerminator(next) {
			continue
		}
		matches = append(matches, lint.Match{
			Index:       s[0],
			Offset:      s[1] - s[0],
			Explanation: soExplanation,
		})
	}
	return matches
}
