package ignore

import (
	"strings"

	gitignore "github.com/denormal/go-gitignore"
)

// Reason names the rule that excluded a path.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonHidden    Reason = "hidden"
	ReasonGitDir    Reason = "git directory"
	ReasonGitignore Reason = "gitignore rule"
	ReasonCustom    Reason = "custom rule"
)

// ShouldIgnore reports whether relativePath (slash separated, relative to the
// blog-post root) is excluded.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return m.Check(relativePath, isDir) != ReasonNone
}

// Check returns the reason relativePath is excluded, or ReasonNone. The
// hidden and .git rules only apply to directories; a dot file is excluded
// only by a gitignore or custom rule.
func (m *IgnoreMatcher) Check(relativePath string, isDir bool) Reason {
	if m == nil || m.disabled {
		return ReasonNone
	}
	relativePath = strings.Trim(relativePath, "/")
	if relativePath == "" || relativePath == "." {
		return ReasonNone
	}

	parts := strings.Split(relativePath, "/")
	for i, part := range parts {
		dir := isDir || i < len(parts)-1
		if m.ignoreGit && dir && part == ".git" {
			m.logger.Debug("ignore: %q inside .git", relativePath)
			return ReasonGitDir
		}
		if m.ignoreHidden && dir && strings.HasPrefix(part, ".") {
			m.logger.Debug("ignore: %q is hidden", relativePath)
			return ReasonHidden
		}
	}

	if matched(m.repoIgnore, relativePath, isDir) {
		m.logger.Debug("ignore: %q matched %s", relativePath, GitignoreFile)
		return ReasonGitignore
	}
	if matched(m.customIgnore, relativePath, isDir) {
		m.logger.Debug("ignore: %q matched a custom rule", relativePath)
		return ReasonCustom
	}
	return ReasonNone
}

// matched checks the path and each of its parent directories, since a rule
// excluding a directory excludes everything below it.
func matched(rules gitignore.GitIgnore, relativePath string, isDir bool) bool {
	if rules == nil {
		return false
	}
	parts := strings.Split(relativePath, "/")
	for i := 1; i <= len(parts); i++ {
		sub := strings.Join(parts[:i], "/")
		dir := isDir || i < len(parts)
		if match := rules.Relative(sub, dir); match != nil {
			if match.Ignore() {
				return true
			}
			if i == len(parts) && match.Include() {
				return false
			}
		}
	}
	return false
}
