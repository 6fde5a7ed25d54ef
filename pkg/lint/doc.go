// Package lint provides a data-driven prose linting framework.
//
// # Architecture
//
// The lint package follows a small layered layout:
//
//  1. Root package (pkg/lint/): shared contracts, the ordered registry, Config and the Analyzer
//  2. Rules (pkg/lint/rules/): the built-in rule set, registered in a fixed order
//  3. Primitives (pkg/lint/internal/textscan/): word boundaries, sentence starts, phrase matching
//
// # Rule Registration
//
// Rules are registered via an init() function when the rules package is imported:
//
//	import _ "github.com/leapstack-labs/writegood/pkg/lint/rules"
//
// Registration order is significant. When two suggestions start at the same
// index, the one produced by the earlier registered rule sorts first.
//
// # Configuration
//
// Use Config to control which rules run:
//
//	config := lint.NewConfig()
//	config.Disable("passive")
//	config.Enable("eprime")
//	config.Allow("read-only")
//
// Rules without an explicit setting use RuleDef.EnabledByDefault.
//
// # Merging
//
// Rules run independently. Matches from different rules on the identical span
// become one Suggestion whose reason joins the explanations:
//
//	"extremely" is a weasel word and can weaken meaning
//
// Partially overlapping spans are kept as separate suggestions.
//
// # Creating Custom Rules
//
//	var MyRule = lint.RuleDef{
//		Name:             "jargon",
//		Group:            "clarity",
//		Description:      "Flags internal jargon.",
//		Explanation:      "is jargon",
//		EnabledByDefault: true,
//		Check:            checkJargon,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
package lint
