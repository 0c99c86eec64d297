package config

import (
	"bytes"
	"errors"
	"flag"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/devblog-manifest/internal/manifest"
)

var cwd = filepath.FromSlash("/work")

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	c, err := Parse(args, cwd, &bytes.Buffer{})
	require.NoError(t, err)
	return c
}

func TestParseDefaults(t *testing.T) {
	c := parse(t)

	assert.Equal(t, "DevBlog", c.BlogFolderName)
	assert.Equal(t, "Dev_Blog_Manifest.json", c.ManifestName)
	assert.False(t, c.Headless)
	assert.True(t, c.IgnoreHidden)
	assert.False(t, c.UseGitignore)
	assert.Equal(t, Version, c.Version)

	assert.Equal(t, manifest.Options{
		TargetDir:      filepath.Join(cwd, "DevBlog"),
		BlogPostDir:    filepath.Join(cwd, "DevBlog"),
		BlogFolderName: "DevBlog",
		ManifestName:   "Dev_Blog_Manifest.json",
		Save:           true,
	}, c.ManifestOptions())
}

func TestParseLongAndShortFlags(t *testing.T) {
	long := parse(t, "-target-directory", "/site", "-blog-post-directory", "posts", "-manifest-name", "m.json", "-headless")
	short := parse(t, "-t", "/site", "-b", "posts", "-m", "m.json", "-h")

	for _, c := range []*Config{long, short} {
		assert.True(t, c.Headless)
		assert.Equal(t, manifest.Options{
			TargetDir:      filepath.FromSlash("/site"),
			BlogPostDir:    filepath.Join(cwd, "posts"),
			BlogFolderName: "DevBlog",
			ManifestName:   "m.json",
			Save:           true,
		}, c.ManifestOptions())
	}
}

func TestBlogFolderNameDerivesDirectories(t *testing.T) {
	c := parse(t, "-f", "Posts", "--dry-run")

	opts := c.ManifestOptions()
	assert.Equal(t, filepath.Join(cwd, "Posts"), opts.TargetDir)
	assert.Equal(t, filepath.Join(cwd, "Posts"), opts.BlogPostDir)
	assert.False(t, opts.Save)
}

func TestCustomPatterns(t *testing.T) {
	c := parse(t, "-ignore", " wip-* , ,*.bak,")
	assert.Equal(t, []string{"wip-*", "*.bak"}, c.CustomPatterns())

	assert.Nil(t, parse(t).CustomPatterns())
}

func TestParseErrors(t *testing.T) {
	var out bytes.Buffer

	_, err := Parse([]string{"-nope"}, cwd, &out)
	assert.Error(t, err)
	assert.Contains(t, out.String(), "flag provided but not defined")

	out.Reset()
	_, err = Parse([]string{"stray"}, cwd, &out)
	assert.EqualError(t, err, "unexpected argument: stray")

	out.Reset()
	_, err = Parse([]string{"-help"}, cwd, &out)
	assert.True(t, errors.Is(err, flag.ErrHelp))
	assert.Contains(t, out.String(), "-target-directory")
}
