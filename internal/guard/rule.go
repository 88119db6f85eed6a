package guard

import "regexp"

// PatternRule pairs a compiled recognizer with the reason reported when it
// matches. Rules are declarative: they never execute the command they inspect.
type PatternRule struct {
	// Pattern recognizes a command form. Patterns are case-insensitive.
	Pattern *regexp.Regexp

	// Reason is operator-facing prose. For danger rules it explains the policy
	// violation; for safe rules it documents why the form is exempt.
	Reason string
}

// RuleTable holds the two rule tiers the classifier evaluates.
//
// Safe rules are checked first and any hit is authoritative: no danger scan
// happens after a safe match. Order within Safe is irrelevant. Order within
// Danger is significant: the first match wins, so narrower, more specific
// forms must precede the broader forms they are textually nested in.
type RuleTable struct {
	Safe   []PatternRule
	Danger []PatternRule
}
