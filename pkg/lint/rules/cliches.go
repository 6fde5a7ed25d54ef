package rules

import (
	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/leapstack-labs/writegood/pkg/lint/internal/textscan"
)

const clicheExplanation = "is a cliche"

// Cliches flags overused figurative phrases.
var Cliches = lint.RuleDef{
	Name:             "cliches",
	Group:            "style",
	Description:      "Flags common cliches.",
	Explanation:      clicheExplanation,
	EnabledByDefault: true,
	Check:            checkCliches,
	Rationale:        "A cliche has been read so often that readers skim past it.",
	BadExample:       "Writing specs puts me at loose ends.",
	GoodExample:      "Writing specs leaves me unsure what to do next.",
}

var clichePhrases = []string{
	"a chip off the old block",
	"a clean slate",
	"a dark and stormy night",
	"a far cry",
	"a fine kettle of fish",
	"a loose cannon",
	"a penny saved is a penny earned",
	"a tough row to hoe",
	"a word to the wise",
	"ace in the hole",
	"acid test",
	"add insult to injury",
	"against all odds",
	"air your dirty laundry",
	"all in a day's work",
	"all thumbs",
	"all your eggs in one basket",
	"all's fair in love and war",
	"all's well that ends well",
	"almighty dollar",
	"an axe to grind",
	"another day, another dollar",
	"armed to the teeth",
	"as luck would have it",
	"as old as time",
	"as the crow flies",
	"at loose ends",
	"at the drop of a hat",
	"at the end of the day",
	"back to square one",
	"back to the drawing board",
	"bad to the bone",
	"beat around the bush",
	"beating a dead horse",
	"bent out of shape",
	"best thing since sliced bread",
	"bite the bullet",
	"break the ice",
	"by the skin of your teeth",
	"cat got your tongue",
	"cool as a cucumber",
	"crystal clear",
	"cutting edge",
	"dead as a doornail",
	"dime a dozen",
	"easier said than done",
	"every cloud has a silver lining",
	"few and far between",
	"fit as a fiddle",
	"go the extra mile",
	"hit the nail on the head",
	"in the nick of time",
	"it goes without saying",
	"last but not least",
	"light at the end of the tunnel",
	"low hanging fruit",
	"low-hanging fruit",
	"needle in a haystack",
	"outside the box",
	"paradigm shift",
	"piece of cake",
	"think outside the box",
	"tip of the iceberg",
	"under the weather",
	"when all is said and done",
	"win-win situation",
	"writing on the wall",
}

var clicheMatcher = textscan.NewPhraseMatcher(clichePhrases)

func checkCliches(text string) []lint.Match {
	return spansToMatches(clicheMatcher.FindAll(text), clicheExplanation)
}
