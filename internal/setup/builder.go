// Package setup wires configuration into a manifest builder.
package setup

import (
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"

	"github.com/bethropolis/devblog-manifest/internal/config"
	"github.com/bethropolis/devblog-manifest/internal/ignore"
	"github.com/bethropolis/devblog-manifest/internal/logger"
	"github.com/bethropolis/devblog-manifest/internal/manifest"
	"github.com/bethropolis/devblog-manifest/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...interface{})

// BuilderConfig holds all parameters needed to configure a manifest builder
type BuilderConfig struct {
	IgnoreHidden   bool
	UseGitignore   bool
	CustomPatterns []string
	ShowProgress   bool
	Quiet          bool
	WorkingDir     string
	Logger         logger.Interface
	// Progress receives the progress line; usually stderr.
	Progress io.Writer
}

// FromConfig extracts the builder settings from cfg.
func FromConfig(cfg *config.Config, log logger.Interface, progress io.Writer) BuilderConfig {
	return BuilderConfig{
		IgnoreHidden:   cfg.IgnoreHidden,
		UseGitignore:   cfg.UseGitignore,
		CustomPatterns: cfg.CustomPatterns(),
		ShowProgress:   cfg.ShowProgress,
		Quiet:          cfg.Quiet,
		WorkingDir:     cfg.WorkingDir,
		Logger:         log,
		Progress:       progress,
	}
}

// NewBuilder returns a builder over fsys configured from cfg.
func NewBuilder(fsys billy.Filesystem, cfg BuilderConfig, infoLog InfoLogger) *manifest.Builder {
	if len(cfg.CustomPatterns) > 0 {
		infoLog("Using custom ignore patterns: %v", cfg.CustomPatterns)
	}
	if cfg.IgnoreHidden {
		infoLog("Ignoring hidden directories (starting with '.').")
	} else {
		infoLog("Including hidden directories.")
	}
	if cfg.UseGitignore {
		infoLog("Applying %s rules from the blog-post directory.", ignore.GitignoreFile)
	}

	opts := []manifest.BuilderOption{
		manifest.WithLogger(cfg.Logger),
		manifest.WithIgnoreOptions(
			ignore.WithHiddenIgnore(cfg.IgnoreHidden),
			ignore.WithGitignore(cfg.UseGitignore),
			ignore.WithCustomRules(cfg.CustomPatterns),
		),
	}
	if cfg.WorkingDir != "" {
		wd := cfg.WorkingDir
		opts = append(opts, manifest.WithWorkingDir(func() (string, error) { return wd, nil }))
	}
	if cfg.ShowProgress && !cfg.Quiet && cfg.Progress != nil {
		if cfg.Logger != nil {
			cfg.Logger.Debug("Progress display enabled")
		}
		opts = append(opts, manifest.WithWalkOptions(walker.WithProgress(progressPrinter(cfg.Progress))))
	}
	return manifest.NewBuilder(fsys, opts...)
}

func progressPrinter(out io.Writer) walker.ProgressCallback {
	return func(stats walker.ProgressStats) {
		if stats.Done {
			// Finish the progress line so later output starts on its own.
			if stats.Posts > 0 {
				fmt.Fprintln(out)
			}
			return
		}
		path := stats.CurrentPost
		if len(path) > 40 {
			path = "..." + path[len(path)-37:]
		}
		// Carriage return overwrites the previous line.
		fmt.Fprintf(out, "\rScanning: %-40s | Posts: %d | Files: %d | Skipped: %d",
			path, stats.Posts, stats.Files, stats.Skipped)
	}
}
