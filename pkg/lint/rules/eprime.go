package rules

import (
	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/leapstack-labs/writegood/pkg/lint/internal/textscan"
)

const ePrimeExplanation = "is a form of 'to be'"

// EPrime flags every form of "to be", including contractions.
// Off by default: it fires on most sentences.
var EPrime = lint.RuleDef{
	Name:             "eprime",
	Group:            "voice",
	Description:      "Flags forms of \"to be\" (E-Prime).",
	Explanation:      ePrimeExplanation,
	EnabledByDefault: false,
	Check:            checkEPrime,
	Rationale:        "Writing without \"to be\" forces concrete verbs.",
	BadExample:       "NodeJs is awesome.",
	GoodExample:      "NodeJs delights me.",
}

var toBeForms = []string{
	"am", "are", "aren't", "be", "been", "being", "he's", "here's",
	"here're", "how's", "i'm", "is", "isn't", "it's", "she's", "that's",
	"there's", "there're", "they're", "was", "wasn't", "we're", "were",
	"weren't", "what's", "where's", "who's", "you're",
}

var ePrimeMatcher = textscan.NewPhraseMatcher(toBeForms)

func checkEPrime(text string) []lint.Match {
	return spansToMatches(ePrimeMatcher.FindAll(text), ePrimeExplanation)
}
