package hooks

// Rule inspects one tool invocation before it executes and decides whether
// to let it through.
type Rule interface {
	// Name identifies the rule in block messages and audit records.
	Name() string

	// Description returns a human-readable summary of what the rule blocks.
	Description() string

	// Evaluate classifies the input, returning a RuleResult that carries the
	// reasons when the invocation is blocked. A non-nil error means the rule
	// could not evaluate the input, not that the input is unsafe; the engine
	// decides how to degrade in that case.
	Evaluate(input *ToolInput) (*RuleResult, error)
}
