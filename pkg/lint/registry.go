package lint

import (
	"strings"
	"sync"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	index: make(map[string]int),
}

// Registry stores registered lint rules in registration order.
// Order matters: it breaks ties between suggestions that start at the same index.
type Registry struct {
	mu    sync.RWMutex
	rules []RuleDef
	index map[string]int // lowercased name -> position in rules
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a rule to the global registry.
// Registering an existing name replaces the rule but keeps its position.
func Register(rule RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	key := normalizeName(rule.Name)
	if i, ok := globalRegistry.index[key]; ok {
		globalRegistry.rules[i] = rule
		return
	}
	globalRegistry.index[key] = len(globalRegistry.rules)
	globalRegistry.rules = append(globalRegistry.rules, rule)
}

// GetAll returns all registered rules in registration order.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]RuleDef, len(globalRegistry.rules))
	copy(rules, globalRegistry.rules)
	return rules
}

// GetByName returns a rule by its name. The lookup is case-insensitive.
func GetByName(name string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	i, ok := globalRegistry.index[normalizeName(name)]
	if !ok {
		return RuleDef{}, false
	}
	return globalRegistry.rules[i], true
}

// GetByGroup returns all rules in a specific group, in registration order.
func GetByGroup(group string) []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []RuleDef
	for _, rule := range globalRegistry.rules {
		if rule.Group == group {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Names returns the names of all registered rules in registration order.
func Names() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	names := make([]string, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		names = append(names, rule.Name)
	}
	return names
}

// AllRules returns metadata for all registered rules.
func AllRules() []RuleInfo {
	rules := GetAll()
	infos := make([]RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = nil
	globalRegistry.index = make(map[string]int)
}
