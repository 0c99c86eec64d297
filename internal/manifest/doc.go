// Package manifest builds the JSON manifest of a dev blog.
//
// A blog-post root is laid out as <year>/<month>/<post>/<files>. Every post
// folder becomes one Post: its title is the folder name, its date is the first
// YYYY-MM-DD found in that name, and its files are split into content and
// image lists by extension. Paths in the manifest are relative to the
// blog-post root and always use forward slashes.
//
// # Output
//
// The manifest is a bare, two-space indented JSON array:
//
//	[
//	  {
//	    "Date": "2024-03-15T00:00:00",
//	    "Title": "2024-03-15-hello",
//	    "ContentFiles": [
//	      "2024/03/2024-03-15-hello/a.md"
//	    ],
//	    "ImageFiles": [
//	      "2024/03/2024-03-15-hello/b.png"
//	    ]
//	  }
//	]
//
// Folders without a date get "0001-01-01T00:00:00".
//
// # Usage
//
//	b := manifest.NewBuilder(osfs.New(""))
//	res, err := b.Generate(manifest.Options{TargetDir: "/srv/site/DevBlog", Save: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("wrote", res.OutputPath)
package manifest
