// Package writegood is the entry point for prose linting: it checks English
// text for weasel words, passive voice, repeated words and similar problems,
// and renders the results as annotated source excerpts.
//
//	suggestions := writegood.Check(text, nil)
//	for _, block := range writegood.Annotate(text, suggestions) {
//		fmt.Println(block)
//	}
package writegood

import (
	"github.com/leapstack-labs/writegood/pkg/annotate"
	"github.com/leapstack-labs/writegood/pkg/lint"
	_ "github.com/leapstack-labs/writegood/pkg/lint/rules" // register rules
)

// Check lints text with cfg and returns suggestions sorted by index.
// A nil cfg uses every rule's default. The result is never nil.
func Check(text string, cfg *lint.Config) []lint.Suggestion {
	return lint.NewAnalyzer(cfg).Analyze(text)
}

// CheckWithOptions lints text with loosely typed options such as
// {"passive": false, "eprime": true, "whitelist": []string{"read-only"}}.
// Unknown keys and non-boolean values are ignored.
func CheckWithOptions(text string, opts map[string]any) []lint.Suggestion {
	return Check(text, lint.ConfigFromMap(opts))
}

// Annotate renders one three-line block per suggestion.
func Annotate(text string, suggestions []lint.Suggestion) []string {
	return annotate.Annotate(text, suggestions)
}
