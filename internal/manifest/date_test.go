package manifest

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		want   Date
	}{
		{name: "prefix", folder: "2024-03-15-hello", want: NewDate(2024, time.March, 15)},
		{name: "exact", folder: "1999-12-31", want: NewDate(1999, time.December, 31)},
		{name: "embedded", folder: "post_2023-01-02_final", want: NewDate(2023, time.January, 2)},
		{name: "first match wins", folder: "2020-02-29 to 2021-01-01", want: NewDate(2020, time.February, 29)},
		{name: "leap day in non leap year", folder: "2023-02-29-oops", want: Date{}},
		{name: "invalid month", folder: "2024-13-01-post", want: Date{}},
		{name: "no date", folder: "hello-world", want: Date{}},
		{name: "wrong separators", folder: "2024_03_15-hello", want: Date{}},
		{name: "too short", folder: "24-03-15", want: Date{}},
		{name: "empty", folder: "", want: Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDate(tt.folder)
			assert.True(t, tt.want.Equal(got.Time), "got %s, want %s", got, tt.want)
			assert.Equal(t, tt.want.IsSet(), got.IsSet())
		})
	}
}

func TestDateJSON(t *testing.T) {
	data, err := json.Marshal(NewDate(2024, time.March, 15))
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T00:00:00"`, string(data))

	data, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, `"0001-01-01T00:00:00"`, string(data))
}

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{in: `"2024-03-15T00:00:00"`, want: NewDate(2024, time.March, 15)},
		{in: `"2024-03-15"`, want: NewDate(2024, time.March, 15)},
		{in: `"2024-03-15T00:00:00Z"`, want: NewDate(2024, time.March, 15)},
		{in: `"0001-01-01T00:00:00"`, want: Date{}},
		{in: `null`, want: Date{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.True(t, tt.want.Equal(d.Time), "got %s", d)
		})
	}

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}
