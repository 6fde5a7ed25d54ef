package rules

import (
	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/leapstack-labs/writegood/pkg/lint/internal/textscan"
)

const thereIsExplanation = "is unnecessary verbiage"

// ThereIs flags sentences that open with "there is" or "there are".
var ThereIs = lint.RuleDef{
	Name:             "thereIs",
	Group:            "clarity",
	Description:      "Flags sentences that start with \"there is\" or \"there are\".",
	Explanation:      thereIsExplanation,
	EnabledByDefault: true,
	Check:            checkThereIs,
	Rationale:        "The real subject of the sentence usually hides behind the opener.",
	BadExample:       "There is a use for this construction.",
	GoodExample:      "This construction has a use.",
}

var thereIsMatcher = textscan.NewPhraseMatcher([]string{"there is", "there are"})

func checkThereIs(text string) []lint.Match {
	var matches []lint.Match
	for _, s := range thereIsMatcher.FindAll(text) {
		if !textscan.IsSentenceStart(text, s[0]) {
			continue
		}
		matches = append(matches, lint.Match{
			Index:       s[0],
			Offset:      s[1] - s[0],
			Explanation: thereIsExplanation,
		})
	}
	return matches
}
