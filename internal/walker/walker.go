package walker

import (
	"fmt"
	"os"
	"path"
	"sort"

	"github.com/go-git/go-billy/v5"

	"github.com/bethropolis/devblog-manifest/internal/ignore"
)

// Depth of the tree below the walk root.
const (
	levelRoot = iota
	levelYear
	levelMonth
	levelPost
)

type walk struct {
	fs      billy.Filesystem
	root    string
	matcher *ignore.IgnoreMatcher
	fn      PostFunc
	opts    WalkOptions
	tracker *SkippedTracker
	stats   ProgressStats
}

// Walk visits every <root>/<year>/<month>/<post> directory of fsys in sorted
// order and calls fn with the post's regular files. Files found at the year
// or month level and directories nested inside a post are skipped. It returns
// the skipped entries and the first read or callback error.
func Walk(fsys billy.Filesystem, root string, matcher *ignore.IgnoreMatcher, fn PostFunc, opts ...Option) ([]SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	tracker := options.Tracker
	if tracker == nil {
		tracker = NewSkippedTracker(16)
	}

	w := &walk{
		fs:      fsys,
		root:    root,
		matcher: matcher,
		fn:      fn,
		opts:    options,
		tracker: tracker,
	}

	options.Logger.Debug("walker: starting at %s", root)
	err := w.descend(root, "", levelRoot)
	if options.ProgressFn != nil {
		final := w.stats
		final.Done = true
		options.ProgressFn(final)
	}
	options.Logger.Debug("walker: done, %d posts, %d skipped", w.stats.Posts, w.stats.Skipped)
	return tracker.Items(), err
}

func (w *walk) descend(dir, rel string, level int) error {
	if level == levelPost {
		return w.post(dir, rel)
	}

	names, err := w.subdirs(dir, rel)
	if err != nil {
		return err
	}
	for _, name := range names {
		switch level {
		case levelRoot:
			w.stats.Years++
		case levelYear:
			w.stats.Months++
		}
		if err := w.descend(w.fs.Join(dir, name), join(rel, name), level+1); err != nil {
			return err
		}
	}
	return nil
}

// subdirs lists the directories of dir that survive the ignore rules.
func (w *walk) subdirs(dir, rel string) ([]string, error) {
	entries, err := w.read(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		entryRel := join(rel, e.Name())
		if w.ignored(entryRel, e.IsDir()) {
			continue
		}
		if !e.IsDir() {
			w.skip(entryRel, ReasonUnexpectedFile, false)
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (w *walk) post(dir, rel string) error {
	entries, err := w.read(dir)
	if err != nil {
		return err
	}

	post := PostDir{RelPath: rel, Name: path.Base(rel), Files: []string{}}
	for _, e := range entries {
		entryRel := join(rel, e.Name())
		if w.ignored(entryRel, e.IsDir()) {
			continue
		}
		switch {
		case e.IsDir():
			w.skip(entryRel, ReasonNestedDirectory, true)
		case !e.Mode().IsRegular():
			w.skip(entryRel, ReasonSkippedNotRegular, false)
		default:
			post.Files = append(post.Files, e.Name())
		}
	}

	w.stats.Posts++
	w.stats.Files += int64(len(post.Files))
	w.stats.CurrentPost = rel
	w.opts.Logger.Debug("walker: post %s with %d files", rel, len(post.Files))

	if err := w.fn(post); err != nil {
		return fmt.Errorf("walker: post %s: %w", rel, err)
	}
	if w.opts.ProgressFn != nil {
		w.opts.ProgressFn(w.stats)
	}
	return nil
}

func (w *walk) read(dir string) ([]os.FileInfo, error) {
	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("walker: read directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	for i, e := range entries {
		entries[i] = w.follow(dir, e)
	}
	return entries, nil
}

// follow replaces a symlink entry with the entry it points to. Dangling
// links are returned unchanged.
func (w *walk) follow(dir string, e os.FileInfo) os.FileInfo {
	if e.Mode()&os.ModeSymlink == 0 {
		return e
	}
	target, err := w.fs.Stat(w.fs.Join(dir, e.Name()))
	if err != nil {
		w.opts.Logger.Debug("walker: dangling link %s: %v", w.fs.Join(dir, e.Name()), err)
		return e
	}
	return linkInfo{FileInfo: target, name: e.Name()}
}

// linkInfo reports the target's type under the link's name.
type linkInfo struct {
	os.FileInfo
	name string
}

func (l linkInfo) Name() string { return l.name }

func (w *walk) ignored(rel string, isDir bool) bool {
	var reason SkippedReason
	switch w.matcher.Check(rel, isDir) {
	case ignore.ReasonNone:
		return false
	case ignore.ReasonHidden:
		reason = ReasonIgnoredHidden
	case ignore.ReasonGitDir:
		reason = ReasonIgnoredGitDir
	default:
		reason = ReasonIgnoredRule
	}
	w.skip(rel, reason, isDir)
	return true
}

func (w *walk) skip(rel string, reason SkippedReason, isDir bool) {
	w.stats.Skipped++
	w.tracker.Track(rel, reason, isDir)
	w.opts.Logger.Debug("walker: skipped %s: %s", rel, reason)
}

func join(rel, name string) string {
	if rel == "" {
		return name
	}
	return rel + "/" + name
}
