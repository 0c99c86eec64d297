package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

const (
	// DateLayout is the date format looked for in folder names.
	DateLayout = "2006-01-02"
	// WireLayout is how dates are written to the manifest.
	WireLayout = "2006-01-02T15:04:05"
)

var folderDate = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Date is a calendar date. The zero value, 0001-01-01, marks a post whose
// folder name carries no date.
type Date struct {
	time.Time
}

// NewDate returns the date y-m-d.
func NewDate(y int, m time.Month, d int) Date {
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ExtractDate returns the first YYYY-MM-DD in folderName. Names without one,
// or whose first match is not a real date such as 2024-13-45, yield the zero
// Date.
func ExtractDate(folderName string) Date {
	match := folderDate.FindString(folderName)
	if match == "" {
		return Date{}
	}
	t, err := time.Parse(DateLayout, match)
	if err != nil {
		return Date{}
	}
	return Date{t}
}

// IsSet reports whether d is a real date rather than the sentinel.
func (d Date) IsSet() bool {
	return !d.Time.IsZero()
}

func (d Date) String() string {
	return d.Time.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(WireLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("manifest: date: %w", err)
	}
	for _, layout := range []string{WireLayout, DateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t.Year(), t.Month(), t.Day())
			return nil
		}
	}
	return fmt.Errorf("manifest: date %q is not in %s form", s, WireLayout)
}
