package manifest

import (
	"path/filepath"
	"strings"
)

const (
	// DefaultBlogFolderName is the blog folder looked for under the working
	// directory when nothing else is given.
	DefaultBlogFolderName = "DevBlog"
	// DefaultManifestName is the file name of the written manifest.
	DefaultManifestName = "Dev_Blog_Manifest.json"
)

// Options selects what Generate scans and where it writes.
type Options struct {
	// TargetDir receives the manifest file. Defaults to
	// <working directory>/<BlogFolderName>.
	TargetDir string
	// BlogPostDir is the root of the year/month/post tree. Defaults to
	// TargetDir.
	BlogPostDir string
	// BlogFolderName is only used to derive TargetDir. Defaults to
	// DefaultBlogFolderName.
	BlogFolderName string
	// ManifestName defaults to DefaultManifestName.
	ManifestName string
	// Save writes the manifest to TargetDir/ManifestName.
	Save bool
}

// Resolve fills the empty fields of o from cwd and the defaults.
func (o Options) Resolve(cwd string) Options {
	if strings.TrimSpace(o.BlogFolderName) == "" {
		o.BlogFolderName = DefaultBlogFolderName
	}
	if o.TargetDir == "" {
		o.TargetDir = filepath.Join(cwd, o.BlogFolderName)
	}
	if o.BlogPostDir == "" {
		o.BlogPostDir = o.TargetDir
	}
	if strings.TrimSpace(o.ManifestName) == "" {
		o.ManifestName = DefaultManifestName
	}
	return o
}
