package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsResolve(t *testing.T) {
	cwd := filepath.FromSlash("/work")

	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{
			name: "all defaults",
			want: Options{
				TargetDir:      filepath.Join(cwd, "DevBlog"),
				BlogPostDir:    filepath.Join(cwd, "DevBlog"),
				BlogFolderName: "DevBlog",
				ManifestName:   "Dev_Blog_Manifest.json",
			},
		},
		{
			name: "folder name drives target",
			in:   Options{BlogFolderName: "Posts"},
			want: Options{
				TargetDir:      filepath.Join(cwd, "Posts"),
				BlogPostDir:    filepath.Join(cwd, "Posts"),
				BlogFolderName: "Posts",
				ManifestName:   "Dev_Blog_Manifest.json",
			},
		},
		{
			name: "explicit target, blog defaults to target",
			in:   Options{TargetDir: "/site/out", ManifestName: "m.json", Save: true},
			want: Options{
				TargetDir:      "/site/out",
				BlogPostDir:    "/site/out",
				BlogFolderName: "DevBlog",
				ManifestName:   "m.json",
				Save:           true,
			},
		},
		{
			name: "separate blog dir",
			in:   Options{TargetDir: "/site/out", BlogPostDir: "/content/blog", ManifestName: "  "},
			want: Options{
				TargetDir:      "/site/out",
				BlogPostDir:    "/content/blog",
				BlogFolderName: "DevBlog",
				ManifestName:   "Dev_Blog_Manifest.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Resolve(cwd))
		})
	}
}
