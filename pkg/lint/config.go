package lint

import "strings"

// Config controls which rules are enabled and which spans are allowed.
// The zero value is not usable; call NewConfig.
type Config struct {
	// Checks holds explicit enable/disable overrides keyed by lowercased rule name.
	// Rules without an entry fall back to RuleDef.EnabledByDefault.
	Checks map[string]bool

	// Whitelist contains span texts that are never reported (case-insensitive).
	Whitelist []string
}

// NewConfig creates a configuration that uses every rule's default.
func NewConfig() *Config {
	return &Config{
		Checks: make(map[string]bool),
	}
}

// ConfigFromMap builds a Config from loosely typed options, such as decoded
// JSON or YAML. Boolean values toggle the rule of the same name, "whitelist"
// is read as a list or a comma-separated string. Unknown keys and non-boolean
// values are ignored.
func ConfigFromMap(opts map[string]any) *Config {
	c := NewConfig()
	for key, v := range opts {
		if enabled, ok := v.(bool); ok {
			c.Set(key, enabled)
		}
	}
	c.Whitelist = spanList(opts["whitelist"])
	return c
}

// IsEnabled reports whether the rule should run.
func (c *Config) IsEnabled(rule RuleDef) bool {
	if c == nil {
		return rule.EnabledByDefault
	}
	if enabled, ok := c.Checks[normalizeName(rule.Name)]; ok {
		return enabled
	}
	return rule.EnabledByDefault
}

// Set forces a rule on or off by name.
func (c *Config) Set(name string, enabled bool) *Config {
	c.Checks[normalizeName(name)] = enabled
	return c
}

// Enable enables a rule by name.
func (c *Config) Enable(name string) *Config {
	return c.Set(name, true)
}

// Disable disables a rule by name.
func (c *Config) Disable(name string) *Config {
	return c.Set(name, false)
}

// Allow adds span texts to the whitelist.
func (c *Config) Allow(texts ...string) *Config {
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			c.Whitelist = append(c.Whitelist, t)
		}
	}
	return c
}

// IsAllowed reports whether the span text is whitelisted.
func (c *Config) IsAllowed(span string) bool {
	if c == nil {
		return false
	}
	for _, w := range c.Whitelist {
		if strings.EqualFold(w, span) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return NewConfig()
	}
	clone := NewConfig()
	for k, v := range c.Checks {
		clone.Checks[k] = v
	}
	clone.Whitelist = append([]string(nil), c.Whitelist...)
	return clone
}

// spanList reads whitelist entries, dropping blanks and non-string items.
func spanList(v any) []string {
	var raw []string
	switch s := v.(type) {
	case string:
		raw = strings.Split(s, ",")
	case []string:
		raw = s
	case []any:
		for _, item := range s {
			if str, ok := item.(string); ok {
				raw = append(raw, str)
			}
		}
	}
	var spans []string
	for _, span := range raw {
		if span = strings.TrimSpace(span); span != "" {
			spans = append(spans, span)
		}
	}
	return spans
}
