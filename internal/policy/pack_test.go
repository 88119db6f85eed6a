package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephan-g/gitguard/internal/guard"
)

func writePack(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)

	defaults := guard.DefaultTable()
	assert.Len(t, table.Safe, len(defaults.Safe))
	assert.Len(t, table.Danger, len(defaults.Danger))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	table, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	defaults := guard.DefaultTable()
	assert.Len(t, table.Danger, len(defaults.Danger))
}

func TestLoad_MergesPackRules(t *testing.T) {
	path := writePack(t, `
danger:
  - pattern: '\bgit\s+gc\b'
    reason: "git gc is blocked: it prunes unreachable objects"
safe:
  - pattern: '^\s*git\s+annotate\b'
`)

	table, err := Load(path)
	require.NoError(t, err)

	classifier := guard.NewClassifier(table)

	got := classifier.Evaluate("git gc --aggressive")
	require.False(t, got.Allowed)
	assert.Contains(t, got.Reasons[0], "git gc is blocked")

	assert.True(t, classifier.Evaluate("git annotate main.go").Allowed)
}

// Custom danger rules go ahead of the built-ins so an operator rule can claim
// a more specific reason than the generic category it overlaps.
func TestLoad_PackDangerRulesTakePrecedence(t *testing.T) {
	path := writePack(t, `
danger:
  - pattern: '\bgit\s+push\s+[^;&|]*--tags\b'
    reason: "pushing tags is blocked by local policy"
`)

	table, err := Load(path)
	require.NoError(t, err)

	got := guard.NewClassifier(table).Evaluate("git push --tags")
	require.False(t, got.Allowed)
	assert.Equal(t, []string{"pushing tags is blocked by local policy"}, got.Reasons)
}

// A pack safe rule wins over built-in danger rules, same as the built-in safe
// tier.
func TestLoad_PackSafeRuleOverridesBuiltinDanger(t *testing.T) {
	path := writePack(t, `
safe:
  - pattern: '^\s*git\s+fetch\s+--tags\s*$'
    reason: "tag fetch allowed by local policy"
`)

	table, err := Load(path)
	require.NoError(t, err)

	assert.True(t, guard.NewClassifier(table).Evaluate("git fetch --tags").Allowed)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "malformed YAML",
			content: "danger: [unclosed",
		},
		{
			name: "invalid regex",
			content: `
danger:
  - pattern: '([unclosed'
`,
		},
		{
			name: "empty pattern",
			content: `
danger:
  - reason: "no pattern given"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePack(t, tt.content)

			table, err := Load(path)
			require.Error(t, err)

			// The built-in table still comes back usable.
			defaults := guard.DefaultTable()
			assert.Len(t, table.Danger, len(defaults.Danger))
		})
	}
}

func TestMerge_DefaultReasons(t *testing.T) {
	table, err := Merge(guard.DefaultTable(), Pack{
		Danger: []RuleSpec{{Pattern: `\bgit\s+notes\b`}},
	})
	require.NoError(t, err)

	got := guard.NewClassifier(table).Evaluate("git notes add -m x")
	require.False(t, got.Allowed)
	assert.Equal(t, []string{"blocked by operator rule pack"}, got.Reasons)
}
