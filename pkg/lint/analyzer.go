package lint

import (
	"log/slog"
	"sort"
	"strings"
)

// Analyzer runs lint rules against raw text.
// An Analyzer holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	config *Config
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{
		config: config,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithLogger returns a copy of the analyzer that logs rule activity to logger.
func (a *Analyzer) WithLogger(logger *slog.Logger) *Analyzer {
	if logger == nil {
		return a
	}
	return &Analyzer{config: a.config, logger: logger}
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() *Config {
	return a.config
}

// spanKey identifies a flagged span.
type spanKey struct {
	index  int
	offset int
}

// pending accumulates the matches of every rule that fired on one span.
type pending struct {
	key          spanKey
	order        int // registration order of the first rule that fired
	rules        []string
	explanations []string
	replacement  string
}

// Analyze runs all enabled registered rules against text and returns the
// merged suggestions sorted by index. It never returns nil.
func (a *Analyzer) Analyze(text string) []Suggestion {
	if text == "" {
		return []Suggestion{}
	}

	groups := make(map[spanKey]*pending)
	var ordered []*pending

	for order, rule := range GetAll() {
		if !a.config.IsEnabled(rule) || rule.Check == nil {
			continue
		}

		matches := rule.Check(text)
		a.logger.Debug("rule checked", "rule", rule.Name, "matches", len(matches))

		for _, m := range matches {
			if m.Index < 0 || m.Offset <= 0 || m.Index+m.Offset > len(text) {
				a.logger.Warn("dropping out of range match", "rule", rule.Name, "index", m.Index, "offset", m.Offset)
				continue
			}
			if a.config.IsAllowed(text[m.Index : m.Index+m.Offset]) {
				continue
			}

			explanation := m.Explanation
			if explanation == "" {
				explanation = rule.Explanation
			}

			key := spanKey{index: m.Index, offset: m.Offset}
			p, ok := groups[key]
			if !ok {
				p = &pending{key: key, order: order}
				groups[key] = p
				ordered = append(ordered, p)
			}
			if !containsString(p.rules, rule.Name) {
				p.rules = append(p.rules, rule.Name)
			}
			if !containsString(p.explanations, explanation) {
				p.explanations = append(p.explanations, explanation)
			}
			if p.replacement == "" {
				p.replacement = m.Replacement
			}
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].key.index != ordered[j].key.index {
			return ordered[i].key.index < ordered[j].key.index
		}
		if ordered[i].order != ordered[j].order {
			return ordered[i].order < ordered[j].order
		}
		return ordered[i].key.offset < ordered[j].key.offset
	})

	suggestions := make([]Suggestion, 0, len(ordered))
	for _, p := range ordered {
		span := text[p.key.index : p.key.index+p.key.offset]
		suggestions = append(suggestions, Suggestion{
			Index:       p.key.index,
			Offset:      p.key.offset,
			Reason:      `"` + span + `" ` + JoinExplanations(p.explanations),
			Rules:       p.rules,
			Replacement: p.replacement,
		})
	}
	return suggestions
}

// JoinExplanations combines explanations into one phrase:
// "a", "a and b", "a, b and c".
func JoinExplanations(explanations []string) string {
	switch len(explanations) {
	case 0:
		return ""
	case 1:
		return explanations[0]
	default:
		last := len(explanations) - 1
		return strings.Join(explanations[:last], ", ") + " and " + explanations[last]
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
