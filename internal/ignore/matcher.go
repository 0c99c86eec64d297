// Package ignore decides which entries of a blog tree are left out of the walk.
//
// Hidden directories and .git directories are excluded by default; files are
// never excluded for being hidden. Rules from the
// blog-post root's .gitignore and caller supplied patterns (gitignore syntax)
// can be layered on top with functional options.
package ignore

import (
	"errors"
	"fmt"
	"os"
	"strings"

	gitignore "github.com/denormal/go-gitignore"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/bethropolis/devblog-manifest/internal/logger"
)

// GitignoreFile is the rules file read from the blog-post root.
const GitignoreFile = ".gitignore"

// IgnoreMatcher determines whether a path below the blog-post root should be skipped
type IgnoreMatcher struct {
	fs   billy.Filesystem
	root string

	repoIgnore   gitignore.GitIgnore
	customIgnore gitignore.GitIgnore

	ignoreHidden   bool
	ignoreGit      bool
	useGitignore   bool
	customPatterns []string
	logger         logger.Interface
	disabled       bool
}

// New creates an IgnoreMatcher for the tree rooted at root inside fsys.
func New(fsys billy.Filesystem, root string, opts ...Option) (*IgnoreMatcher, error) {
	m := &IgnoreMatcher{
		fs:           fsys,
		root:         root,
		ignoreHidden: true,
		ignoreGit:    true,
		logger:       logger.Nop{},
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.init(); err != nil {
		return nil, err
	}
	return m, nil
}

// Disabled returns a matcher that ignores nothing
func Disabled() *IgnoreMatcher {
	return &IgnoreMatcher{disabled: true, logger: logger.Nop{}}
}

func (m *IgnoreMatcher) init() error {
	if m.disabled {
		m.logger.Debug("ignore: matcher disabled")
		return nil
	}
	m.logger.Debug("ignore: root=%s hidden=%v git=%v gitignore=%v", m.root, m.ignoreHidden, m.ignoreGit, m.useGitignore)

	if m.useGitignore && m.fs != nil {
		path := m.fs.Join(m.root, GitignoreFile)
		data, err := util.ReadFile(m.fs, path)
		switch {
		case err == nil:
			m.repoIgnore = m.parse(string(data), path)
			m.logger.Debug("ignore: loaded rules from %s", path)
		case errors.Is(err, os.ErrNotExist):
			m.logger.Debug("ignore: no %s in %s", GitignoreFile, m.root)
		default:
			return fmt.Errorf("ignore: read %s: %w", path, err)
		}
	}

	if len(m.customPatterns) > 0 {
		m.customIgnore = m.parse(strings.Join(m.customPatterns, "\n"), "custom patterns")
	}
	return nil
}

func (m *IgnoreMatcher) parse(rules, source string) gitignore.GitIgnore {
	return gitignore.New(strings.NewReader(rules), m.root, func(e gitignore.Error) bool {
		m.logger.Warn("ignore: bad pattern in %s at %s: %v", source, e.Position(), e)
		return true
	})
}
