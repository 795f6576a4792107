// registry.go maps tag names to rules.
package bbcode

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// DuplicateRuleError is returned when a tag is registered twice for the same kind.
type DuplicateRuleError struct {
	Tag  string
	Kind Kind
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("duplicate %s rule for tag %q", e.Kind, e.Tag)
}

type ruleKey struct {
	tag  string
	kind Kind
}

// Registry holds the rules known to a parser. It is filled once at setup and
// only read afterwards, so lookups are safe from concurrent renders.
type Registry struct {
	rules map[ruleKey]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[ruleKey]Rule)}
}

// Register adds a rule. Tag names are stored lowercase.
func (r *Registry) Register(rule Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	key := ruleKey{tag: strings.ToLower(rule.Tag), kind: rule.Kind}
	if _, exists := r.rules[key]; exists {
		return &DuplicateRuleError{Tag: key.tag, Kind: key.kind}
	}
	rule.Tag = key.tag
	r.rules[key] = rule
	return nil
}

// MustRegister registers rules and panics on the first failure.
func (r *Registry) MustRegister(rules ...Rule) {
	for _, rule := range rules {
		if err := r.Register(rule); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the rule for a tag name, normalizing to lowercase.
// Returns ok=false if the tag is not registered for that kind.
func (r *Registry) Lookup(tag string, kind Kind) (Rule, bool) {
	rule, ok := r.rules[ruleKey{tag: strings.ToLower(tag), kind: kind}]
	return rule, ok
}

// Rules returns all rules sorted by kind, then tag.
func (r *Registry) Rules() []Rule {
	rules := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}
	slices.SortFunc(rules, func(a, b Rule) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	return rules
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
