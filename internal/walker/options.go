package walker

import (
	"github.com/bethropolis/devblog-manifest/internal/logger"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger     logger.Interface
	ProgressFn ProgressCallback
	// Tracker receives skipped entries. Callers that also skip files
	// themselves pass their own tracker so all reasons end up in one list.
	Tracker *SkippedTracker
}

// ProgressCallback is a function that receives progress updates
type ProgressCallback func(stats ProgressStats)

// ProgressStats holds counters about the walk so far.
type ProgressStats struct {
	Years       int64  // Year directories entered
	Months      int64  // Month directories entered
	Posts       int64  // Post directories reported
	Files       int64  // Regular files inside posts
	Skipped     int64  // Entries skipped for any reason
	CurrentPost string // Relative path of the post just reported
	Done        bool   // Set on the last update, sent once the walk ends
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger: logger.Nop{},
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(l logger.Interface) Option {
	return func(opts *WalkOptions) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// WithProgress adds a progress callback, invoked after every post and once
// more with Done set when the walk ends.
func WithProgress(fn ProgressCallback) Option {
	return func(o *WalkOptions) {
		o.ProgressFn = fn
	}
}

// WithTracker makes the walk record skipped entries into t.
func WithTracker(t *SkippedTracker) Option {
	return func(o *WalkOptions) {
		o.Tracker = t
	}
}
