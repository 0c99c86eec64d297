// Package summary handles display of scan results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/devblog-manifest/internal/manifest"
	"github.com/bethropolis/devblog-manifest/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// Counts totals the files listed in a manifest.
type Counts struct {
	Posts   int
	Content int
	Images  int
	Undated int
}

// Count tallies posts.
func Count(posts []manifest.Post) Counts {
	c := Counts{Posts: len(posts)}
	for _, p := range posts {
		c.Content += len(p.ContentFiles)
		c.Images += len(p.ImageFiles)
		if !p.Date.IsSet() {
			c.Undated++
		}
	}
	return c
}

// DisplayResults shows the end results of a run
func DisplayResults(logger Logger, posts []manifest.Post, duration time.Duration, quiet bool) {
	if quiet {
		return
	}
	c := Count(posts)
	logger.Info("Found %d posts (%d content files, %d images).", c.Posts, c.Content, c.Images)
	if c.Undated > 0 {
		logger.Info("%d post folders have no YYYY-MM-DD date in their name.", c.Undated)
	}
	logger.Info("Scan complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems formats and prints information about skipped items
func DisplaySkippedItems(
	logger Logger,
	skippedItems []walker.SkippedItem,
	output io.Writer,
	quiet bool,
) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		infoLog("No items were skipped.")
		infoLog("--- End Skipped Items ---")
		return
	}

	items := make([]walker.SkippedItem, len(skippedItems))
	copy(items, skippedItems)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n",
			typeStr,
			50, // Max width for path column
			item.Path,
			item.Reason,
		)
	}
	infoLog("--- End Skipped Items ---")
}
