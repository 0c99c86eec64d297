package manifest

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"

	"github.com/bethropolis/devblog-manifest/internal/filetypes"
	"github.com/bethropolis/devblog-manifest/internal/ignore"
	"github.com/bethropolis/devblog-manifest/internal/logger"
	"github.com/bethropolis/devblog-manifest/internal/output"
	"github.com/bethropolis/devblog-manifest/internal/walker"
)

// Result is a successful Generate.
type Result struct {
	Posts []Post
	// JSON is the serialized manifest.
	JSON []byte
	// OutputPath is TargetDir/ManifestName, set even when nothing was saved.
	OutputPath string
	// Saved reports whether JSON was written to OutputPath.
	Saved   bool
	Skipped []walker.SkippedItem
	Options Options
}

// Builder scans blog trees and produces manifests.
type Builder struct {
	fs         billy.Filesystem
	log        logger.Interface
	ignoreOpts []ignore.Option
	walkOpts   []walker.Option
	writer     *output.Writer
	workingDir func() (string, error)
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger; the default discards output.
func WithLogger(l logger.Interface) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// WithIgnoreOptions configures the matcher built for each scanned root.
func WithIgnoreOptions(opts ...ignore.Option) BuilderOption {
	return func(b *Builder) {
		b.ignoreOpts = append(b.ignoreOpts, opts...)
	}
}

// WithWalkOptions passes options through to walker.Walk.
func WithWalkOptions(opts ...walker.Option) BuilderOption {
	return func(b *Builder) {
		b.walkOpts = append(b.walkOpts, opts...)
	}
}

// WithWorkingDir overrides how the working directory used for defaults is found.
func WithWorkingDir(fn func() (string, error)) BuilderOption {
	return func(b *Builder) {
		if fn != nil {
			b.workingDir = fn
		}
	}
}

// NewBuilder creates a Builder reading and writing through fsys.
func NewBuilder(fsys billy.Filesystem, opts ...BuilderOption) *Builder {
	b := &Builder{
		fs:         fsys,
		log:        logger.Nop{},
		writer:     output.NewWriter(fsys),
		workingDir: os.Getwd,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Generate resolves opts, creates the target and blog-post directories when
// they are missing, scans the blog tree and serializes the manifest. With
// opts.Save the manifest is written to the target directory, replacing any
// previous one. On error no Result is returned and no manifest is written.
func (b *Builder) Generate(opts Options) (*Result, error) {
	cwd, err := b.workingDir()
	if err != nil {
		return nil, fmt.Errorf("manifest: working directory: %w", err)
	}
	opts = opts.Resolve(cwd)
	b.log.Debug("manifest: target=%s blog=%s name=%s save=%v", opts.TargetDir, opts.BlogPostDir, opts.ManifestName, opts.Save)

	for _, dir := range []string{opts.TargetDir, opts.BlogPostDir} {
		if err := b.ensureDir(dir); err != nil {
			return nil, err
		}
	}

	posts, skipped, err := b.Scan(opts.BlogPostDir)
	if err != nil {
		return nil, err
	}

	data, err := Marshal(posts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Posts:      posts,
		JSON:       data,
		OutputPath: b.writer.Path(opts.TargetDir, opts.ManifestName),
		Skipped:    skipped,
		Options:    opts,
	}
	if opts.Save {
		if _, err := b.Save(data, opts.TargetDir, opts.ManifestName); err != nil {
			return nil, err
		}
		res.Saved = true
	}
	return res, nil
}

// Scan walks the blog tree at blogPostDir and returns its posts in
// year, month, post order together with the entries left out.
func (b *Builder) Scan(blogPostDir string) ([]Post, []walker.SkippedItem, error) {
	ignoreOpts := append([]ignore.Option{ignore.WithLogger(b.log)}, b.ignoreOpts...)
	matcher, err := ignore.New(b.fs, blogPostDir, ignoreOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("manifest: ignore rules: %w", err)
	}

	tracker := walker.NewSkippedTracker(16)
	posts := []Post{}
	collect := func(dir walker.PostDir) error {
		posts = append(posts, classify(dir, tracker))
		return nil
	}

	b.log.Info("Scanning blog posts in %s", blogPostDir)
	walkOpts := append([]walker.Option{walker.WithLogger(b.log), walker.WithTracker(tracker)}, b.walkOpts...)
	skipped, err := walker.Walk(b.fs, blogPostDir, matcher, collect, walkOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("manifest: scan %s: %w", blogPostDir, err)
	}
	b.log.Debug("manifest: %d posts, %d entries skipped", len(posts), len(skipped))
	return posts, skipped, nil
}

// Save writes an already serialized manifest to targetDir/name.
func (b *Builder) Save(data []byte, targetDir, name string) (string, error) {
	if name == "" {
		return "", ErrEmptyManifestName
	}
	path, err := b.writer.Write(targetDir, name, data)
	if err != nil {
		return "", fmt.Errorf("manifest: save: %w", err)
	}
	b.log.Debug("manifest: wrote %d bytes to %s", len(data), path)
	return path, nil
}

func classify(dir walker.PostDir, tracker *walker.SkippedTracker) Post {
	post := Post{
		Date:         ExtractDate(dir.Name),
		Title:        dir.Name,
		ContentFiles: []string{},
		ImageFiles:   []string{},
	}
	for _, name := range dir.Files {
		rel := dir.FilePath(name)
		switch filetypes.Classify(name) {
		case filetypes.Document:
			post.ContentFiles = append(post.ContentFiles, rel)
		case filetypes.Image:
			post.ImageFiles = append(post.ImageFiles, rel)
		default:
			tracker.Track(rel, walker.ReasonUnclassified, false)
		}
	}
	return post
}

func (b *Builder) ensureDir(dir string) error {
	info, err := b.fs.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return nil
	case err == nil:
		return fmt.Errorf("manifest: %s: %w", dir, ErrNotDirectory)
	case !os.IsNotExist(err):
		return fmt.Errorf("manifest: stat %s: %w", dir, err)
	}

	b.log.Info("Creating missing directory %s", dir)
	if err := b.writer.EnsureDir(dir); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return nil
}
