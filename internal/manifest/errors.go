package manifest

import "errors"

var (
	// ErrNotDirectory indicates a target or blog-post path exists as a file.
	ErrNotDirectory = errors.New("path exists and is not a directory")

	// ErrEmptyManifestName indicates the resolved manifest file name is blank.
	ErrEmptyManifestName = errors.New("manifest file name cannot be empty")
)
