// Package app ties configuration, the builder and the console together.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/bethropolis/devblog-manifest/internal/config"
	"github.com/bethropolis/devblog-manifest/internal/console"
	"github.com/bethropolis/devblog-manifest/internal/logger"
	"github.com/bethropolis/devblog-manifest/internal/manifest"
	"github.com/bethropolis/devblog-manifest/internal/printer"
	"github.com/bethropolis/devblog-manifest/internal/setup"
	"github.com/bethropolis/devblog-manifest/internal/summary"
)

// App encapsulates the main application functionality
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	fs      billy.Filesystem
	builder *manifest.Builder

	In     io.Reader
	Output io.Writer
	ErrOut io.Writer
	// ClearScreen redraws the menu on a clean screen.
	ClearScreen bool
}

// New creates an App on the OS filesystem and standard streams.
func New(cfg *config.Config) *App {
	a := NewWithIO(cfg, osfs.New(""), os.Stdin, os.Stdout, os.Stderr)
	a.ClearScreen = config.IsInteractive() && cfg.UseColors
	return a
}

// NewWithIO creates an App over the given filesystem and streams.
func NewWithIO(cfg *config.Config, fsys billy.Filesystem, in io.Reader, out, errOut io.Writer) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(errOut, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	a := &App{
		cfg:    cfg,
		log:    log,
		fs:     fsys,
		In:     in,
		Output: out,
		ErrOut: errOut,
	}
	a.builder = setup.NewBuilder(fsys, setup.FromConfig(cfg, log, errOut), a.infoLog)
	return a
}

// Run executes the main application logic. Generation failures are reported
// on the console and returned.
func (a *App) Run() error {
	if a.cfg.ShowVersion {
		fmt.Fprintf(a.Output, "devblog-manifest version %s\n", a.cfg.Version)
		return nil
	}

	if a.log.IsDebug() {
		a.log.Debug("Verbose mode enabled")
		a.log.Debug("Color output: %v", a.cfg.UseColors)
		a.log.Debug("Working directory: %s", a.cfg.WorkingDir)
		a.log.Debug("Headless: %v, dry run: %v", a.cfg.Headless, a.cfg.DryRun)
	}

	if a.cfg.Headless {
		return a.generate(a.cfg.ManifestOptions())
	}

	opts := a.cfg.ManifestOptions()
	state := console.State{
		TargetDir:      opts.TargetDir,
		BlogPostDir:    opts.BlogPostDir,
		BlogFolderName: opts.BlogFolderName,
		ManifestName:   opts.ManifestName,
		WorkingDir:     a.cfg.WorkingDir,
	}
	menu := console.NewMenu(a.In, a.Output, a.fs, a.ClearScreen, a.cfg.UseColors)
	_, err := menu.Run(state, func(s console.State) error {
		return a.generate(s.Options(!a.cfg.DryRun))
	})
	return err
}

func (a *App) generate(opts manifest.Options) error {
	start := time.Now()
	status := printer.New().WithOutput(a.statusOut()).WithColors(a.cfg.UseColors)

	res, err := a.builder.Generate(opts)
	if err != nil {
		resolved := opts.Resolve(a.cfg.WorkingDir)
		a.log.Error("Failed to generate manifest: %v", err)
		status.PrintFailure(filepath.Join(resolved.TargetDir, resolved.ManifestName), err)
		return err
	}

	if a.cfg.Stdout {
		printer.New().WithOutput(a.Output).PrintManifest(res.JSON)
	}
	summary.DisplayResults(a.log, res.Posts, time.Since(start), a.cfg.Quiet)
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, res.Skipped, a.ErrOut, a.cfg.Quiet)
	}
	status.PrintResult(res)
	return nil
}

// statusOut keeps status lines off stdout when stdout carries the manifest.
func (a *App) statusOut() io.Writer {
	if a.cfg.Stdout {
		return a.ErrOut
	}
	return a.Output
}

func (a *App) infoLog(format string, args ...interface{}) {
	if !a.cfg.Quiet {
		a.log.Info(format, args...)
	}
}
