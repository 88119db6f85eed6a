package guard

import "regexp"

// Character classes shared by the patterns below. noSep excludes every shell
// character that can chain or substitute another command (';', '&', '|', '$',
// backtick, newline); wordTok additionally excludes whitespace, so it spans a
// single argument token.
const (
	noSep   = `[^;&|$\x60\n]`
	wordTok = `[^\s;&|$\x60\n]`
	// sp separates tokens of a single command. Deliberately not \s: a newline
	// starts a new command, and a flag found past it belongs to that command,
	// not to the git invocation being inspected.
	sp = `[ \t]`
	// tokEnd terminates a flag token: whitespace, a shell separator, the end
	// of a substitution, or end of string. Keeps "-d" from matching "-dev".
	tokEnd = `(?:[\s);&|\x60]|$)`
	// plainTok is wordTok minus '#': a token that cannot open a shell
	// comment. Safe rules that scan past arguments use it so a commented-out
	// qualifier cannot exempt the live part of the command.
	plainTok = `[^\s;&|$\x60\n#]`
)

// safeTail requires a safe pattern to explain the rest of the command string:
// optional arguments are fine, but the match must run to the end of the
// string without crossing a shell separator. "git status" is safe on its own;
// "git status; git reset --hard" is not a safe match, so the chained reset
// still reaches the danger scan.
const safeTail = `(?:\s` + noSep + `*)?$`

// branchListFlag enumerates git-branch flags that only list or annotate
// branches. Deletion, move, and force flags are deliberately absent so those
// forms fall through to the danger table.
const branchListFlag = `-[arvl]+|--all|--remotes|--list|--verbose|--show-current|--merged|--no-merged|--contains|--column|--no-column`

// safeRules match known-benign git forms. A hit allows the command outright,
// overriding every danger rule. Order is irrelevant.
var safeRules = []PatternRule{
	{
		Pattern: regexp.MustCompile(`(?i)^\s*git\s+(?:status|log|shortlog|diff|show|blame|grep|describe|ls-files|ls-tree|ls-remote|rev-parse|cat-file|var|version|help|count-objects|whatchanged)` + safeTail),
		Reason:  "read-only repository query",
	},
	{
		Pattern: regexp.MustCompile(`(?i)^\s*git\s+branch\s*$`),
		Reason:  "bare branch listing",
	},
	{
		Pattern: regexp.MustCompile(`(?i)^\s*git\s+branch\s+(?:` + branchListFlag + `)(?:\s+(?:` + branchListFlag + `|--sort=` + wordTok + `*|[^-\s;&|$\x60\n]` + wordTok + `*))*\s*$`),
		Reason:  "branch listing with no mutation flag",
	},
	{
		Pattern: regexp.MustCompile(`(?i)^\s*git\s+remote(?:\s+(?:-v|--verbose|show|get-url)(?:\s+[^-\s;&|$\x60\n]` + wordTok + `*)*)?\s*$`),
		Reason:  "remote listing",
	},
	{
		Pattern: regexp.MustCompile(`(?i)^\s*git\s+config\s+(?:-l|--list|--get(?:-all|-regexp|-urlmatch)?)(?:\s+` + noSep + `+)?$`),
		Reason:  "configuration read",
	},
	{
		Pattern: regexp.MustCompile(`(?i)^\s*git\s+stash\s+(?:list|show)` + safeTail),
		Reason:  "stash listing",
	},
	{
		// Only the remote-sync commands honor --dry-run as a full no-op. The
		// flag must stand as its own token: "main--dry-run" is a ref name and
		// "--dry-run-ish" is a different flag, and neither exempts anything.
		// plainTok keeps a "# --dry-run" comment from qualifying the command.
		Pattern: regexp.MustCompile(`(?i)^\s*git\s+(?:push|pull|fetch)(?:` + sp + `+` + plainTok + `+)*` + sp + `+--dry-run(?:` + sp + `+` + plainTok + `+)*\s*$`),
		Reason:  "dry run performs no mutation",
	},
}

// gitPrefix matches a git invocation plus any global options interposed
// before the subcommand, so "git -c user.email=x@y push" and
// "git -C /repo reset --hard" hit the same danger rules as the unadorned
// forms. Covers the value-taking options (-c, -C, --git-dir, --work-tree,
// --namespace, --exec-path) and the common bare ones.
const gitPrefix = `\bgit` + sp + `+(?:(?:-[cC]` + sp + `+` + wordTok + `+|--(?:git-dir|work-tree|namespace|exec-path)=` + wordTok + `+|--no-pager|--paginate|--bare|--no-optional-locks|--literal-pathspecs|--no-replace-objects)` + sp + `+)*`

// dangerRules match git forms that mutate the repository, its history, or its
// configuration. First match wins, so narrower forms precede the broader
// forms they are textually nested in: a force push must report the force-push
// reason, not the generic push reason.
var dangerRules = []PatternRule{
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `stash\s+(?:drop|clear|pop|apply)\b`),
		Reason:  "git stash drop/clear/pop/apply is blocked: it can discard stashed work",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `branch(?:` + sp + `+` + wordTok + `+)*` + sp + `+(?:-[dmcf]+|--delete|--force|--move|--copy)` + tokEnd),
		Reason:  "deleting, renaming, or force-updating branches is blocked",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `tag(?:` + sp + `+` + wordTok + `+)*` + sp + `+(?:-d|--delete)` + tokEnd),
		Reason:  "deleting tags is blocked",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `commit\s+` + noSep + `*--amend\b`),
		Reason:  "git commit --amend is blocked: it rewrites the last commit",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `push(?:` + sp + `+` + wordTok + `+)*` + sp + `+(?:-[a-z]*f[a-z]*|--force(?:-with-lease(?:=` + wordTok + `*)?|-if-includes)?|--mirror|--delete|-d|--all|--prune|\+` + wordTok + `*|:` + wordTok + `+)` + tokEnd),
		Reason:  "force-pushing or deleting remote refs is blocked: it rewrites or removes published history",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `(?:rebase|merge|cherry-pick|reset|clean)\b`),
		Reason:  "git rebase/merge/cherry-pick/reset/clean is blocked: it rewrites history or discards work",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `(?:rm|mv)\b`),
		Reason:  "git rm/mv is blocked: it removes or renames tracked files",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `commit\b`),
		Reason:  "git commit is blocked: committing must be done by the operator",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `add\b`),
		Reason:  "git add is blocked: staging changes modifies the index",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `(?:push|pull|fetch)\b`),
		Reason:  "git push/pull/fetch is blocked: it synchronizes state with a remote",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `(?:checkout|switch|restore)\b`),
		Reason:  "switching branches or restoring files is blocked: it can overwrite working tree changes",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `(?:init|clone)\b`),
		Reason:  "creating or cloning repositories is blocked",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `submodule\s+(?:add|update|deinit|sync|set-url|set-branch|foreach|absorbgitdirs)\b`),
		Reason:  "mutating submodules is blocked",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `config\b`),
		Reason:  "modifying git configuration is blocked",
	},
	{
		Pattern: regexp.MustCompile(`(?i)` + gitPrefix + `remote\s+(?:add|remove|rm|rename|set-url|set-head|set-branches|prune|update)\b`),
		Reason:  "modifying remotes is blocked",
	},
}

// DefaultTable returns the built-in rule table for git. The table is
// constructed once; callers must treat it as immutable.
func DefaultTable() RuleTable {
	return RuleTable{
		Safe:   safeRules,
		Danger: dangerRules,
	}
}
