package hooks

import (
	"github.com/stephan-g/gitguard/internal/guard"
)

// gitGuardRule blocks Bash commands that the git classifier flags as
// destructive. All other tools pass through untouched.
type gitGuardRule struct {
	classifier *guard.Classifier
}

// NewGitGuardRule creates a rule backed by the given classifier.
func NewGitGuardRule(classifier *guard.Classifier) Rule {
	return &gitGuardRule{
		classifier: classifier,
	}
}

// Name returns the unique identifier for this rule.
func (r *gitGuardRule) Name() string {
	return "git-guard"
}

// Description returns a human-readable description of what this rule does.
func (r *gitGuardRule) Description() string {
	return "Blocks destructive git commands before they execute"
}

// Evaluate classifies the Bash command string and maps the verdict to a rule result.
func (r *gitGuardRule) Evaluate(input *ToolInput) (*RuleResult, error) {
	if input.ToolName != "Bash" {
		return NewAllowedResult(), nil
	}

	command, ok := input.GetStringArg("command")
	if !ok {
		return NewAllowedResult(), nil
	}

	verdict := r.classifier.Evaluate(command)
	if verdict.Allowed {
		return NewAllowedResult(), nil
	}

	return NewBlockedResult(r.Name(), verdict.Reasons...), nil
}
