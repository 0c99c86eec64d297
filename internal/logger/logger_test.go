package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedLogger(buf *bytes.Buffer, verbose bool) *Logger {
	l := New(buf, verbose, false)
	l.now = func() time.Time { return time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC) }
	return l
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, false)

	l.Info("found %d posts", 3)

	assert.Equal(t, "[09:30:00.000 INFO] found 3 posts\n", buf.String())
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		verbose bool
		want    []string
	}{
		{name: "default info", want: []string{"INFO", "WARN", "ERROR"}},
		{name: "verbose", verbose: true, want: []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{name: "warn", level: "warn", want: []string{"WARN", "ERROR"}},
		{name: "error uppercase", level: "ERROR", want: []string{"ERROR"}},
		{name: "off", level: "off", want: nil},
		{name: "unknown falls back to info", level: "chatty", want: []string{"INFO", "WARN", "ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := fixedLogger(&buf, tt.verbose)
			if tt.level != "" {
				l.SetLevel(tt.level)
			}

			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")

			for _, name := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
				if contains(tt.want, name) {
					assert.Contains(t, buf.String(), " "+name+"]")
				} else {
					assert.NotContains(t, buf.String(), " "+name+"]")
				}
			}
		})
	}
}

func TestNopSatisfiesInterface(t *testing.T) {
	var l Interface = Nop{}
	assert.NotPanics(t, func() { l.Error("ignored %v", 1) })
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
