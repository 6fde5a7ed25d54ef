package rules

import (
	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/leapstack-labs/writegood/pkg/lint/internal/textscan"
)

const weaselExplanation = "is a weasel word"

// Weasel flags hedging qualifiers that make a claim vague.
var Weasel = lint.RuleDef{
	Name:             "weasel",
	Group:            "clarity",
	Description:      "Flags weasel words that blur the precision of a claim.",
	Explanation:      weaselExplanation,
	EnabledByDefault: true,
	Check:            checkWeasel,
	Rationale:        "Qualifiers like \"several\" or \"remarkably\" sound informative but commit to nothing.",
	BadExample:       "Remarkably few developers write well.",
	GoodExample:      "Three of the twenty developers we surveyed write well.",
}

var weaselWords = []string{
	"are a number",
	"clearly",
	"completely",
	"exceedingly",
	"excellent",
	"extremely",
	"fairly",
	"few",
	"huge",
	"interestingly",
	"is a number",
	"largely",
	"many",
	"mostly",
	"quite",
	"relatively",
	"remarkably",
	"several",
	"significantly",
	"substantially",
	"surprisingly",
	"tiny",
	"various",
	"vast",
	"very",
}

var weaselMatcher = textscan.NewPhraseMatcher(weaselWords)

func checkWeasel(text string) []lint.Match {
	return spansToMatches(weaselMatcher.FindAll(text), weaselExplanation)
}
