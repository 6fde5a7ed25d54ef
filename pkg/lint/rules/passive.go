package rules

import (
	"strings"

	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/leapstack-labs/writegood/pkg/lint/internal/textscan"
)

const passiveExplanation = "may be passive voice"

// Passive flags a form of "to be" directly followed by a past participle.
var Passive = lint.RuleDef{
	Name:             "passive",
	Group:            "voice",
	Description:      "Flags constructions that may be passive voice.",
	Explanation:      passiveExplanation,
	EnabledByDefault: true,
	Check:            checkPassive,
	Rationale:        "Passive voice hides who performed the action.",
	BadExample:       "The script was killed.",
	GoodExample:      "The operator killed the script.",
}

var auxiliaries = []string{"am", "are", "were", "being", "is", "been", "was", "be"}

// irregularParticiples lists past participles that do not end in "-ed".
var irregularParticiples = []string{
	"awoken", "been", "born", "beat", "become", "begun", "bent", "beset",
	"bet", "bid", "bidden", "bound", "bitten", "bled", "blown", "broken",
	"bred", "brought", "broadcast", "built", "burnt", "burst", "bought",
	"cast", "caught", "chosen", "clung", "come", "cost", "crept", "cut",
	"dealt", "dug", "dived", "done", "drawn", "dreamt", "driven", "drunk",
	"eaten", "fallen", "fed", "felt", "fought", "found", "fit", "fled",
	"flung", "flown", "forbidden", "forgotten", "foregone", "forgiven",
	"forsaken", "frozen", "gotten", "given", "gone", "ground", "grown",
	"hung", "heard", "hidden", "hit", "held", "hurt", "kept", "knelt",
	"knit", "known", "laid", "led", "leapt", "learnt", "left", "lent",
	"let", "lain", "lighted", "lost", "made", "meant", "met", "misspelt",
	"mistaken", "mown", "overcome", "overdone", "overtaken", "overthrown",
	"paid", "pled", "proven", "put", "quit", "read", "rid", "ridden",
	"rung", "risen", "run", "sawn", "said", "seen", "sought", "sold",
	"sent", "set", "sewn", "shaken", "shaven", "shorn", "shed", "shone",
	"shod", "shot", "shown", "shrunk", "shut", "sung", "sunk", "sat",
	"slept", "slain", "slid", "slung", "slit", "smitten", "sown", "spoken",
	"sped", "spent", "spilt", "spun", "spit", "split", "spread", "sprung",
	"stood", "stolen", "stuck", "stung", "stunk", "stridden", "struck",
	"strung", "striven", "sworn", "swept", "swollen", "swum", "swung",
	"taken", "taught", "torn", "told", "thought", "thrived", "thrown",
	"thrust", "trodden", "understood", "upheld", "upset", "woken", "worn",
	"woven", "wed", "wept", "wound", "won", "withheld", "withstood",
	"wrung", "written",
}

// passiveMatcher matches "<auxiliary> <participle>" separated by spaces or
// tabs only, so a match never crosses a line.
var passiveMatcher = textscan.NewPatternMatcher(
	`\b(?:` + strings.Join(auxiliaries, "|") + `)[ \t]+` +
		`(?:[\p{L}\p{N}_]+ed|` + strings.Join(irregularParticiples, "|") + `)\b`,
)

func checkPassive(text string) []lint.Match {
	return spansToMatches(passiveMatcher.FindAll(text), passiveExplanation)
}
