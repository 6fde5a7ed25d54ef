package rules

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/leapstack-labs/writegood/pkg/lint/internal/textscan"
)

const wordyExplanation = "is wordy or unneeded"

// TooWordy flags wordy phrases and needlessly complex words.
var TooWordy = lint.RuleDef{
	Name:             "tooWordy",
	Group:            "clarity",
	Description:      "Flags wordy phrases and complex words that have shorter alternatives.",
	Explanation:      wordyExplanation,
	EnabledByDefault: true,
	Check:            checkTooWordy,
	Rationale:        "Padding makes readers work harder for the same information.",
	BadExample:       "As a matter of fact, this sentence could be simpler.",
	GoodExample:      "In fact, this sentence could be simpler.",
}

// wordyPhrases maps a wordy phrase or complex word to a shorter alternative.
// An empty replacement means the phrase can usually be dropped.
var wordyPhrases = map[string]string{
	"a large number of":            "many",
	"a majority of":                "most",
	"a number of":                  "some",
	"absolutely essential":         "essential",
	"accomplish":                   "do",
	"accordingly":                  "so",
	"additional":                   "more",
	"adversely impact":             "hurt",
	"along the lines of":           "like",
	"as a matter of fact":          "in fact",
	"as a means of":                "to",
	"ascertain":                    "find out",
	"assistance":                   "help",
	"at the present time":          "now",
	"at this point in time":        "now",
	"commence":                     "begin",
	"demonstrate":                  "show",
	"due to the fact that":         "because",
	"each and every":               "each",
	"endeavor":                     "try",
	"facilitate":                   "ease",
	"first and foremost":           "first",
	"for the purpose of":           "for",
	"has the ability to":           "can",
	"impacted":                     "affected",
	"in close proximity":           "near",
	"in order to":                  "to",
	"in spite of the fact that":    "although",
	"in the event that":            "if",
	"in the near future":           "soon",
	"indicate":                     "show",
	"is able to":                   "can",
	"it is important to note that": "",
	"leverage":                     "use",
	"methodology":                  "method",
	"modify":                       "change",
	"necessitate":                  "require",
	"numerous":                     "many",
	"obtain":                       "get",
	"on a daily basis":             "daily",
	"owing to the fact that":       "because",
	"prior to":                     "before",
	"purchase":                     "buy",
	"subsequent to":                "after",
	"sufficient":                   "enough",
	"terminate":                    "end",
	"the majority of":              "most",
	"transmit":                     "send",
	"until such time as":           "until",
	"utilization":                  "use",
	"utilize":                      "use",
	"whether or not":               "whether",
	"with regard to":               "about",
	"with respect to":              "about",
}

var wordyMatcher = textscan.NewPhraseMatcher(mapKeys(wordyPhrases))

func checkTooWordy(text string) []lint.Match {
	spans := wordyMatcher.FindAll(text)
	if len(spans) == 0 {
		return nil
	}
	matches := make([]lint.Match, 0, len(spans))
	for _, s := range spans {
		matches = append(matches, lint.Match{
			Index:       s[0],
			Offset:      s[1] - s[0],
			Explanation: wordyExplanation,
			Replacement: wordyReplacement(text[s[0]:s[1]]),
		})
	}
	return matches
}

// wordyReplacement looks up the replacement for a matched phrase, tolerating
// case and whitespace differences.
func wordyReplacement(matched string) string {
	key := strings.ToLower(strings.Join(strings.Fields(matched), " "))
	return wordyPhrases[key]
}

func mapKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
