// Package printer writes the manifest and the outcome of a run to the console.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/bethropolis/devblog-manifest/internal/manifest"
)

// Printer handles output formatting and writing to the configured output destination
type Printer struct {
	output    io.Writer
	useColors bool
}

// New creates a Printer writing to stdout.
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// PrintManifest writes the serialized manifest followed by a newline.
func (p *Printer) PrintManifest(data []byte) {
	fmt.Fprintf(p.output, "%s\n", data)
}

// PrintResult reports a successful run.
func (p *Printer) PrintResult(res *manifest.Result) {
	if res.Saved {
		fmt.Fprintf(p.output, "%s %s\n", p.paint(color.FgGreen, "Manifest generated at"), res.OutputPath)
		return
	}
	fmt.Fprintf(p.output, "%s %s (not saved)\n", p.paint(color.FgYellow, "Manifest built for"), res.OutputPath)
}

// PrintFailure reports a failed run for the given output path.
func (p *Printer) PrintFailure(outputPath string, err error) {
	fmt.Fprintf(p.output, "%s %s: %v\n", p.paint(color.FgRed, "Failed to generate manifest at"), outputPath, err)
}

func (p *Printer) paint(attr color.Attribute, s string) string {
	if !p.useColors {
		return s
	}
	c := color.New(attr, color.Bold)
	c.EnableColor()
	return c.Sprint(s)
}
