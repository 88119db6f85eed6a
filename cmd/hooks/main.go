package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stephan-g/gitguard/internal/audit"
	"github.com/stephan-g/gitguard/internal/guard"
	"github.com/stephan-g/gitguard/internal/hooks"
	"github.com/stephan-g/gitguard/internal/policy"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitguard",
		Short: "Pre-execution guard for git commands in agent tool use",
		Long:  `A CLI hook that classifies shell commands before an agent executes them, blocking destructive git operations while letting read-only queries through.`,
	}

	rootCmd.AddCommand(newPreToolUseCmd())

	return rootCmd
}

func newPreToolUseCmd() *cobra.Command {
	var rulesPath string
	var auditLogPath string

	cmd := &cobra.Command{
		Use:   "pre-tool-use",
		Short: "Evaluate the guard rules before tool execution",
		Long: `Reads tool input from stdin as JSON and classifies the command against the guard rules. Returns exit code 0 to allow, exit code 2 to block.

Transport failures (unreadable or unparseable input) allow by default so the guard never wedges the tool pipeline; a policy match always blocks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := policy.Load(rulesPath)
			if err != nil {
				// An unloadable rule pack is an operator mistake worth
				// surfacing, but the built-in table still guards the session.
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; continuing with built-in rules\n", err)
			}

			recorder := audit.NewNopRecorder()
			if auditLogPath != "" {
				recorder = audit.NewFileRecorder(auditLogPath)
			}
			defer recorder.Close()

			toolInput, err := hooks.ParseToolInput(cmd.InOrStdin())
			if err != nil {
				// Transport failure, not a policy decision: fail open.
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to parse tool input, allowing: %v\n", err)
				return nil
			}

			rules := []hooks.Rule{
				hooks.NewNoVerifyRule(),
				hooks.NewGitGuardRule(guard.NewClassifier(table)),
			}

			engine := hooks.NewRuleEngine(rules...)
			result, err := engine.Evaluate(toolInput)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to evaluate rules, allowing: %v\n", err)
				return nil
			}

			recordVerdict(cmd.ErrOrStderr(), recorder, toolInput, result)

			if !result.Allowed {
				fmt.Fprintf(cmd.ErrOrStderr(), "Blocked by rule %s: %s\n", result.RuleName, strings.Join(result.Reasons, "; "))
				os.Exit(2)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "path to a YAML rule pack layered over the built-in rules")
	cmd.Flags().StringVar(&auditLogPath, "audit-log", "", "path to a JSONL file recording every verdict")

	return cmd
}

// recordVerdict appends the evaluation to the audit trail. Auditing is best
// effort: failures are reported on stderr and never change the verdict.
func recordVerdict(stderr io.Writer, recorder audit.Recorder, input *hooks.ToolInput, result *hooks.RuleResult) {
	command, _ := input.GetStringArg("command")

	decision := "allow"
	if !result.Allowed {
		decision = "block"
	}

	event := audit.Event{
		Timestamp: time.Now().UTC(),
		ToolName:  input.ToolName,
		Command:   command,
		Decision:  decision,
		RuleName:  result.RuleName,
		Reasons:   result.Reasons,
	}

	if err := recorder.Record(event); err != nil {
		fmt.Fprintf(stderr, "Warning: failed to record audit event: %v\n", err)
	}
}
