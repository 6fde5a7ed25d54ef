package rules

import (
	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/leapstack-labs/writegood/pkg/lint/internal/textscan"
)

const adverbExplanation = "can weaken meaning"

// Adverb flags common adverbs that dilute the verb or adjective they modify.
var Adverb = lint.RuleDef{
	Name:             "adverb",
	Group:            "clarity",
	Description:      "Flags adverbs that can weaken meaning.",
	Explanation:      adverbExplanation,
	EnabledByDefault: true,
	Check:            checkAdverb,
	Rationale:        "A stronger verb or adjective usually says more than an adverb propping up a weak one.",
	BadExample:       "This sentence is simply terrible.",
	GoodExample:      "This sentence is terrible.",
}

var adverbs = []string{
	"absolutely", "accidentally", "additionally", "allegedly", "alternatively",
	"angrily", "anxiously", "approximately", "awkwardly", "badly", "barely",
	"beautifully", "blindly", "boldly", "bravely", "brightly", "briskly",
	"busily", "calmly", "carefully", "carelessly", "cautiously", "cheerfully",
	"clearly", "closely", "coldly", "completely", "consequently", "correctly",
	"courageously", "cruelly", "currently", "daringly", "definitely",
	"deliberately", "doubtfully", "dumbly", "eagerly", "easily", "elegantly",
	"enormously", "enthusiastically", "equally", "especially", "eventually",
	"exactly", "exceedingly", "exclusively", "extremely", "fairly",
	"faithfully", "fatally", "fiercely", "finally", "fondly", "foolishly",
	"fortunately", "frankly", "frantically", "generously", "gently", "gladly",
	"gracefully", "greedily", "happily", "hardly", "hastily", "healthily",
	"heartily", "helpfully", "honestly", "hungrily", "hurriedly",
	"immediately", "impatiently", "inadequately", "ingeniously",
	"innocently", "inquisitively", "interestingly", "irritably", "joyously",
	"justly", "kindly", "largely", "lazily", "literally", "loosely", "loudly",
	"luckily", "madly", "mentally", "mildly", "mortally", "mostly",
	"mysteriously", "neatly", "nervously", "noisily", "normally",
	"obediently", "occasionally", "openly", "painfully", "particularly",
	"patiently", "perfectly", "politely", "poorly", "powerfully",
	"presumably", "previously", "promptly", "punctually", "quickly",
	"quietly", "rapidly", "rarely", "really", "recently", "recklessly",
	"regularly", "relatively", "reluctantly", "remarkably", "repeatedly",
	"rightfully", "roughly", "rudely", "sadly", "safely", "selfishly",
	"sensibly", "seriously", "sharply", "shortly", "shyly", "significantly",
	"silently", "simply", "sleepily", "slowly", "smartly", "smoothly",
	"softly", "solemnly", "speedily", "stealthily", "sternly", "stupidly",
	"substantially", "successfully", "suddenly", "surprisingly",
	"suspiciously", "swiftly", "tenderly", "tensely", "thoughtfully",
	"tightly", "truly", "truthfully", "unexpectedly", "unfortunately",
	"usually", "very", "victoriously", "violently", "vivaciously", "warmly",
	"weakly", "wearily", "wildly", "wisely",
}

var adverbMatcher = textscan.NewPhraseMatcher(adverbs)

func checkAdverb(text string) []lint.Match {
	return spansToMatches(adverbMatcher.FindAll(text), adverbExplanation)
}
