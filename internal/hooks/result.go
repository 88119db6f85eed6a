package hooks

// RuleResult represents the result of evaluating a rule.
type RuleResult struct {
	// Allowed indicates whether the tool usage should be allowed.
	Allowed bool

	// Reasons explains a blocked result in operator-facing prose. Rules
	// currently report a single reason, but a result may carry several.
	Reasons []string

	// RuleName identifies which rule produced this result.
	RuleName string
}

// NewAllowedResult creates a result that allows the tool usage.
func NewAllowedResult() *RuleResult {
	return &RuleResult{
		Allowed: true,
	}
}

// NewBlockedResult creates a result that blocks the tool usage with the given reasons.
func NewBlockedResult(ruleName string, reasons ...string) *RuleResult {
	return &RuleResult{
		Allowed:  false,
		Reasons:  reasons,
		RuleName: ruleName,
	}
}
