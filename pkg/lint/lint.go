// Package lint provides data-driven prose linting.
// Rules are plain data (RuleDef) registered in a fixed order; the Analyzer
// runs every enabled rule over the raw text and merges the results.
//
// The package defines types that are used across the system. Rule implementations
// live in a separate package to avoid import cycles.
package lint

// Match is a raw finding produced by a single rule.
type Match struct {
	Index       int    // Byte offset of the flagged span
	Offset      int    // Length of the flagged span in bytes
	Explanation string // e.g. "is a weasel word"
	Replacement string // Optional: suggested replacement text
}

// CheckFunc scans text and returns raw matches.
// Implementations must be pure: no shared mutable state, no I/O.
type CheckFunc func(text string) []Match

// RuleDef is a data-driven rule definition.
// Rules are stateless - all context comes via the Check function parameters.
type RuleDef struct {
	Name             string    // Unique name, also the configuration key, e.g. "weasel"
	Group            string    // Category, e.g. "clarity", "voice"
	Description      string    // Human-readable description
	Explanation      string    // Message fragment appended to the quoted span
	EnabledByDefault bool      // Whether the rule runs without explicit configuration
	Check            CheckFunc // The check function

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists
	BadExample  string // Text showing the anti-pattern
	GoodExample string // Text showing the preferred form
}

// Suggestion represents a merged lint finding anchored to a span of the input.
type Suggestion struct {
	Index       int      `json:"index"`
	Offset      int      `json:"offset"`
	Reason      string   `json:"reason"`
	Rules       []string `json:"rules,omitempty"`
	Replacement string   `json:"replacement,omitempty"`
}

// End returns the byte offset just past the flagged span.
func (s Suggestion) End() int {
	return s.Index + s.Offset
}

// Text returns the flagged span of text, or "" if the span is out of range.
func (s Suggestion) Text(text string) string {
	if s.Index < 0 || s.Offset <= 0 || s.End() > len(text) {
		return ""
	}
	return text[s.Index:s.End()]
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	Name             string `json:"name" yaml:"name"`
	Group            string `json:"group" yaml:"group"`
	Description      string `json:"description" yaml:"description"`
	Explanation      string `json:"explanation" yaml:"explanation"`
	EnabledByDefault bool   `json:"enabled_by_default" yaml:"enabled_by_default"`
	Rationale        string `json:"rationale,omitempty" yaml:"rationale,omitempty"`
	BadExample       string `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`
	GoodExample      string `json:"good_example,omitempty" yaml:"good_example,omitempty"`
}

// GetRuleInfo extracts metadata from a RuleDef for documentation/tooling.
func GetRuleInfo(def RuleDef) RuleInfo {
	return RuleInfo{
		Name:             def.Name,
		Group:            def.Group,
		Description:      def.Description,
		Explanation:      def.Explanation,
		EnabledByDefault: def.EnabledByDefault,
		Rationale:        def.Rationale,
		BadExample:       def.BadExample,
		GoodExample:      def.GoodExample,
	}
}
