package rules

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nhanced-tech/stylecheck/internal/config"
)

var registry = map[string]Rule{}

// register adds a rule to the registry. Rules register themselves at package
// init; a duplicate ID is a programming error.
func register(r Rule) {
	if _, ok := registry[r.ID()]; ok {
		panic(fmt.Sprintf("duplicate rule ID %q", r.ID()))
	}
	registry[r.ID()] = r
}

// Get returns the rule with the given ID, or nil.
func Get(id string) Rule {
	return registry[strings.ToUpper(id)]
}

// All returns every registered rule, sorted by ID.
func All() []Rule {
	rs := make([]Rule, 0, len(registry))
	for _, r := range registry {
		rs = append(rs, r)
	}
	slices.SortFunc(rs, func(a, b Rule) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return rs
}

// Enabled returns the rules that should run under the current configuration,
// honoring the disabled list.
func Enabled() []Rule {
	var rs []Rule
	for _, r := range All() {
		if slices.ContainsFunc(config.Style.Check.Disabled, func(id string) bool {
			return strings.EqualFold(id, r.ID())
		}) {
			continue
		}
		rs = append(rs, r)
	}
	return rs
}

// EffectiveSeverity applies any configured severity override for the rule.
func EffectiveSeverity(r Rule) Severity {
	for id, sev := range config.Style.Check.Severity {
		if strings.EqualFold(id, r.ID()) {
			switch strings.ToLower(sev) {
			case "error":
				return SeverityError
			case "warning":
				return SeverityWarning
			}
		}
	}
	return r.Severity()
}
