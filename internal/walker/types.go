// Package walker traverses a year/month/post blog tree.
package walker

import (
	"sync"
)

// PostDir is one leaf directory of the tree.
type PostDir struct {
	// RelPath is the slash separated path relative to the walk root,
	// e.g. "2024/03/2024-03-15-hello".
	RelPath string
	// Name is the directory's base name.
	Name string
	// Files holds the names of the regular files directly inside the
	// directory, sorted.
	Files []string
}

// FilePath returns the slash separated path of one of the post's files
// relative to the walk root.
func (p PostDir) FilePath(name string) string {
	return p.RelPath + "/" + name
}

// PostFunc is called once per post directory, in sorted order. A non-nil
// error aborts the walk.
type PostFunc func(post PostDir) error

// SkippedReason clarifies why an entry was not used.
type SkippedReason string

const (
	ReasonIgnoredHidden     SkippedReason = "Ignored (Hidden Rule)"
	ReasonIgnoredGitDir     SkippedReason = "Ignored (.git Directory)"
	ReasonIgnoredRule       SkippedReason = "Ignored (Gitignore/Custom Rule)"
	ReasonUnexpectedFile    SkippedReason = "Skipped (File Outside A Post Folder)"
	ReasonNestedDirectory   SkippedReason = "Skipped (Directory Inside A Post Folder)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonUnclassified      SkippedReason = "Skipped (Unrecognized Extension)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects skipped items
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns a copy of the tracked items in the order they were seen.
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	out := make([]SkippedItem, len(st.items))
	copy(out, st.items)
	return out
}

// Len returns the number of tracked items.
func (st *SkippedTracker) Len() int {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return len(st.items)
}
