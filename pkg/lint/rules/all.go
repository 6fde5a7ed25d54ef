package rules

import "github.com/leapstack-labs/writegood/pkg/lint"

// All is the rule set in registration order. The order breaks ties between
// suggestions that start at the same index.
var All = []lint.RuleDef{
	Weasel,
	Passive,
	Illusion,
	So,
	ThereIs,
	Adverb,
	TooWordy,
	Cliches,
	EPrime,
}

func init() {
	for _, rule := range All {
		lint.Register(rule)
	}
}

// spansToMatches converts matcher output into lint matches.
func spansToMatches(spans [][2]int, explanation string) []lint.Match {
	if len(spans) == 0 {
		return nil
	}
	matches := make([]lint.Match, 0, len(spans))
	for _, s := range spans {
		matches = append(matches, lint.Match{
			Index:       s[0],
			Offset:      s[1] - s[0],
			Explanation: explanation,
		})
	}
	return matches
}
