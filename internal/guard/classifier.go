// Package guard classifies shell command strings against a two-tier rule
// table before they execute. It renders a verdict only: it never parses full
// shell grammar, never executes anything, and never touches the filesystem,
// so identical input always yields an identical verdict.
package guard

// Classifier evaluates raw command strings against an immutable rule table.
// It is safe for concurrent use: the table is read-only after construction.
type Classifier struct {
	table RuleTable
}

// NewClassifier creates a classifier over the given rule table.
func NewClassifier(table RuleTable) *Classifier {
	return &Classifier{
		table: table,
	}
}

// Evaluate renders the verdict for a raw command string.
//
// The pipeline is: invocation detection, then safe-list filter, then
// danger-list scan. No git invocation anywhere in the string means allow
// without consulting either rule list. A safe match is authoritative and
// skips the danger scan entirely. Otherwise the first danger match blocks
// with that rule's reason, and a command matching nothing is allowed.
func (c *Classifier) Evaluate(command string) Verdict {
	if !ContainsGitInvocation(command) {
		return Allow()
	}

	for _, rule := range c.table.Safe {
		if rule.Pattern.MatchString(command) {
			return Allow()
		}
	}

	for _, rule := range c.table.Danger {
		if rule.Pattern.MatchString(command) {
			return Block(rule.Reason)
		}
	}

	return Allow()
}
