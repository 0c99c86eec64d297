// Package config turns command-line flags into the tool's settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/bethropolis/devblog-manifest/internal/manifest"
)

// Version is reported by -version.
const Version = "1.0.0"

// Config holds all application configuration settings
type Config struct {
	// Manifest settings
	TargetDir      string
	BlogPostDir    string
	BlogFolderName string
	ManifestName   string
	Headless       bool
	DryRun         bool
	Stdout         bool

	// Logging settings
	Verbose   bool
	Quiet     bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	// Filtering settings
	IgnoreHidden bool
	UseGitignore bool
	CustomIgnore string

	// Reporting
	ShowSkipped  bool
	ShowProgress bool

	ShowVersion bool
	Version     string

	// WorkingDir anchors relative paths and the default blog folder.
	WorkingDir string
}

// New parses os.Args, exiting on bad flags.
func New() *Config {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	c, err := Parse(os.Args[1:], cwd, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	c.UseColors = !c.NoColor && isTerminal(os.Stderr)
	return c
}

// Parse reads args relative to cwd. Usage and errors go to errOut.
func Parse(args []string, cwd string, errOut io.Writer) (*Config, error) {
	c := &Config{
		Version:    Version,
		WorkingDir: cwd,
	}

	fs := flag.NewFlagSet("devblog-manifest", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.StringVar(&c.TargetDir, "target-directory", "", "Directory the manifest is written to (default <cwd>/<blog-folder-name>)")
	fs.StringVar(&c.TargetDir, "t", "", "Shorthand for -target-directory")
	fs.StringVar(&c.BlogPostDir, "blog-post-directory", "", "Root of the year/month/post tree (default the target directory)")
	fs.StringVar(&c.BlogPostDir, "b", "", "Shorthand for -blog-post-directory")
	fs.StringVar(&c.BlogFolderName, "blog-folder-name", manifest.DefaultBlogFolderName, "Blog folder under the working directory used for defaults")
	fs.StringVar(&c.BlogFolderName, "f", manifest.DefaultBlogFolderName, "Shorthand for -blog-folder-name")
	fs.StringVar(&c.ManifestName, "manifest-name", manifest.DefaultManifestName, "Manifest file name")
	fs.StringVar(&c.ManifestName, "m", manifest.DefaultManifestName, "Shorthand for -manifest-name")
	fs.BoolVar(&c.Headless, "headless", false, "Generate immediately instead of showing the menu")
	fs.BoolVar(&c.Headless, "h", false, "Shorthand for -headless")
	fs.BoolVar(&c.DryRun, "dry-run", false, "Build the manifest without writing it")
	fs.BoolVar(&c.Stdout, "stdout", false, "Print the manifest JSON to stdout")

	fs.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	fs.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	fs.StringVar(&c.LogLevel, "log-level", "", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable color output")

	fs.BoolVar(&c.IgnoreHidden, "hidden", true, "Ignore hidden directories (starting with '.')")
	fs.BoolVar(&c.UseGitignore, "gitignore", false, "Apply the blog root's .gitignore rules")
	fs.StringVar(&c.CustomIgnore, "ignore", "", "Custom ignore patterns (comma-separated, gitignore syntax)")

	fs.BoolVar(&c.ShowSkipped, "show-skipped", false, "List skipped files/directories and reasons at the end")
	fs.BoolVar(&c.ShowProgress, "progress", false, "Show progress information")
	fs.BoolVar(&c.ShowVersion, "version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected argument: %s", fs.Arg(0))
		fmt.Fprintln(errOut, err)
		fs.Usage()
		return nil, err
	}
	return c, nil
}

// ManifestOptions converts the flags into builder options with every
// relative path anchored at WorkingDir.
func (c *Config) ManifestOptions() manifest.Options {
	return manifest.Options{
		TargetDir:      c.abs(c.TargetDir),
		BlogPostDir:    c.abs(c.BlogPostDir),
		BlogFolderName: c.BlogFolderName,
		ManifestName:   c.ManifestName,
		Save:           !c.DryRun,
	}.Resolve(c.WorkingDir)
}

// CustomPatterns splits -ignore into trimmed patterns.
func (c *Config) CustomPatterns() []string {
	var patterns []string
	for _, p := range strings.Split(c.CustomIgnore, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func (c *Config) abs(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.WorkingDir, p)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return isTerminal(os.Stdin)
}
