package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Post is one post folder of the blog tree.
type Post struct {
	Date         Date     `json:"Date"`
	Title        string   `json:"Title"`
	ContentFiles []string `json:"ContentFiles"`
	ImageFiles   []string `json:"ImageFiles"`
}

// Marshal renders posts as the manifest document: an indented JSON array
// with no trailing newline. Empty file lists are written as [].
func Marshal(posts []Post) ([]byte, error) {
	if posts == nil {
		posts = []Post{}
	}
	normalized := make([]Post, len(posts))
	for i, p := range posts {
		if p.ContentFiles == nil {
			p.ContentFiles = []string{}
		}
		if p.ImageFiles == nil {
			p.ImageFiles = []string{}
		}
		normalized[i] = p
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalized); err != nil {
		return nil, fmt.Errorf("manifest: serialize: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Unmarshal parses a manifest document.
func Unmarshal(data []byte) ([]Post, error) {
	var posts []Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("manifest: parse: %w", err)
	}
	return posts, nil
}
