package ignore

import "github.com/bethropolis/devblog-manifest/internal/logger"

// Option configures an IgnoreMatcher
type Option func(*IgnoreMatcher)

// WithHiddenIgnore skips directories whose name starts with a dot.
func WithHiddenIgnore(ignore bool) Option {
	return func(m *IgnoreMatcher) {
		m.ignoreHidden = ignore
	}
}

// WithGitDirIgnore skips .git directories even when hidden entries are kept.
func WithGitDirIgnore(ignore bool) Option {
	return func(m *IgnoreMatcher) {
		m.ignoreGit = ignore
	}
}

// WithGitignore applies the rules of the root's .gitignore file.
func WithGitignore(enabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.useGitignore = enabled
	}
}

// WithCustomRules adds patterns in gitignore syntax.
func WithCustomRules(patterns []string) Option {
	return func(m *IgnoreMatcher) {
		for _, p := range patterns {
			if p != "" {
				m.customPatterns = append(m.customPatterns, p)
			}
		}
	}
}

func WithLogger(l logger.Interface) Option {
	return func(m *IgnoreMatcher) {
		if l != nil {
			m.logger = l
		}
	}
}

func WithDisabled(disabled bool) Option {
	return func(m *IgnoreMatcher) {
		m.disabled = disabled
	}
}
