package guard

// Verdict is the classifier's decision for a single raw command string.
type Verdict struct {
	// Allowed indicates whether the command may execute.
	Allowed bool

	// Reasons explains a blocked verdict in operator-facing prose.
	// The classifier currently reports the first danger match only, but the
	// slice leaves room for accumulating multiple matched rules.
	Reasons []string
}

// Allow creates a verdict that permits the command.
func Allow() Verdict {
	return Verdict{Allowed: true}
}

// Block creates a verdict that denies the command with the given reasons.
func Block(reasons ...string) Verdict {
	return Verdict{
		Allowed: false,
		Reasons: reasons,
	}
}
