package manifest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalShape(t *testing.T) {
	posts := []Post{
		{
			Date:         NewDate(2024, time.March, 15),
			Title:        "2024-03-15-hello",
			ContentFiles: []string{"2024/03/2024-03-15-hello/a.md"},
			ImageFiles:   []string{"2024/03/2024-03-15-hello/b.png"},
		},
		{Title: "undated & <raw>"},
	}

	data, err := Marshal(posts)
	require.NoError(t, err)

	want := `[
  {
    "Date": "2024-03-15T00:00:00",
    "Title": "2024-03-15-hello",
    "ContentFiles": [
      "2024/03/2024-03-15-hello/a.md"
    ],
    "ImageFiles": [
      "2024/03/2024-03-15-hello/b.png"
    ]
  },
  {
    "Date": "0001-01-01T00:00:00",
    "Title": "undated & <raw>",
    "ContentFiles": [],
    "ImageFiles": []
  }
]`
	assert.Equal(t, want, string(data))
}

func TestMarshalEmpty(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestUnmarshalReadsMarshalOutput(t *testing.T) {
	in := []Post{{
		Date:         NewDate(2021, time.July, 4),
		Title:        "2021-07-04-fireworks",
		ContentFiles: []string{"2021/07/2021-07-04-fireworks/post.md"},
		ImageFiles:   []string{},
	}}
	data, err := Marshal(in)
	require.NoError(t, err)

	out, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].Title, out[0].Title)
	assert.True(t, in[0].Date.Equal(out[0].Date.Time))
	assert.Equal(t, in[0].ContentFiles, out[0].ContentFiles)

	_, err = Unmarshal([]byte(`{"not":"an array"}`))
	assert.Error(t, err)
}
