// Package filetypes classifies files by their extension.
package filetypes

import (
	"path"
	"sort"
	"strings"
)

// Category is the kind of file an extension denotes.
type Category int

const (
	Other Category = iota
	Document
	Image
	Video
)

func (c Category) String() string {
	switch c {
	case Document:
		return "document"
	case Image:
		return "image"
	case Video:
		return "video"
	default:
		return "other"
	}
}

var extensions = map[string]Category{
	".md":       Document,
	".markdown": Document,
	".txt":      Document,
	".pdf":      Document,
	".doc":      Document,
	".docx":     Document,
	".odt":      Document,

	".png":  Image,
	".jpg":  Image,
	".jpeg": Image,
	".gif":  Image,
	".bmp":  Image,
	".tiff": Image,
	".svg":  Image,

	".mp4":  Video,
	".webm": Video,
	".ogg":  Video,
	".mov":  Video,
	".avi":  Video,
	".wmv":  Video,
	".flv":  Video,
	".mkv":  Video,
}

// Ext returns the lowercase extension of name, including the dot.
func Ext(name string) string {
	return strings.ToLower(path.Ext(name))
}

// ForExtension returns the category of a lowercase, dotted extension.
func ForExtension(ext string) Category {
	return extensions[ext]
}

// Classify returns the category of a file name.
func Classify(name string) Category {
	return ForExtension(Ext(name))
}

// Extensions lists the extensions of a category in sorted order.
func Extensions(c Category) []string {
	var out []string
	for ext, cat := range extensions {
		if cat == c {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}
