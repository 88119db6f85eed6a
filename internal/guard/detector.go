package guard

import "regexp"

// gitInvocationPattern finds "git" preceded by a command boundary: start of
// string, whitespace (newlines included), a shell separator (';', '|', '&'),
// a backtick, the '(' of a command substitution or subshell, or a path
// separator. The set is deliberately permissive: a false positive only costs
// an extra rule scan, a false negative would let a chained invocation through.
var gitInvocationPattern = regexp.MustCompile(`(?i)(?:^|[\s;&|(/\x60])git(?:\s|$)`)

// ContainsGitInvocation reports whether the command string contains a git
// invocation at a command boundary anywhere in the string, including after
// shell separators, inside backticks, or inside $(...) substitutions.
func ContainsGitInvocation(command string) bool {
	return gitInvocationPattern.MatchString(command)
}
