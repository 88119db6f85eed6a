// Package policy loads operator-supplied rule packs and merges them with the
// built-in classifier tables. A rule pack is configuration for the process
// lifetime: it is read once at startup and the merged table is never mutated
// afterwards.
package policy

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/stephan-g/gitguard/internal/guard"
)

// RuleSpec is one declarative pattern in a rule pack. Patterns are compiled
// case-insensitively, matching the built-in tables.
type RuleSpec struct {
	Pattern string `yaml:"pattern"`
	Reason  string `yaml:"reason,omitempty"`
}

// Pack is an operator rule overlay: extra safe exemptions and extra danger
// patterns layered over the built-in table.
type Pack struct {
	Safe   []RuleSpec `yaml:"safe,omitempty"`
	Danger []RuleSpec `yaml:"danger,omitempty"`
}

// Load reads a rule pack from path and merges it into the built-in table.
// An empty path or a missing file returns the built-in table unchanged; a
// malformed pack or an invalid pattern is an error.
func Load(path string) (guard.RuleTable, error) {
	table := guard.DefaultTable()

	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return table, fmt.Errorf("failed to read rule pack: %w", err)
	}

	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return table, fmt.Errorf("failed to parse rule pack: %w", err)
	}

	return Merge(table, pack)
}

// Merge compiles the pack and layers it over the given table. Custom danger
// rules are inserted ahead of the built-ins: an operator adding a rule is
// expected to rank it against the built-in patterns it overlaps, and a
// hand-written rule is presumed more specific than the generic categories.
func Merge(table guard.RuleTable, pack Pack) (guard.RuleTable, error) {
	safe, err := compile(pack.Safe, "exempted by operator rule pack")
	if err != nil {
		return table, err
	}

	danger, err := compile(pack.Danger, "blocked by operator rule pack")
	if err != nil {
		return table, err
	}

	return guard.RuleTable{
		Safe:   append(safe, table.Safe...),
		Danger: append(danger, table.Danger...),
	}, nil
}

func compile(specs []RuleSpec, defaultReason string) ([]guard.PatternRule, error) {
	rules := make([]guard.PatternRule, 0, len(specs))
	for _, spec := range specs {
		if spec.Pattern == "" {
			return nil, fmt.Errorf("rule pack pattern cannot be empty")
		}

		pattern, err := regexp.Compile("(?i)" + spec.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid rule pack pattern %q: %w", spec.Pattern, err)
		}

		reason := spec.Reason
		if reason == "" {
			reason = defaultReason
		}

		rules = append(rules, guard.PatternRule{
			Pattern: pattern,
			Reason:  reason,
		})
	}

	return rules, nil
}
