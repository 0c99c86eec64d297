package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/devblog-manifest/internal/manifest"
)

func TestPrintManifest(t *testing.T) {
	var buf bytes.Buffer
	New().WithOutput(&buf).PrintManifest([]byte("[]"))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := New().WithOutput(&buf).WithColors(false)

	p.PrintResult(&manifest.Result{OutputPath: "/out/m.json", Saved: true})
	p.PrintResult(&manifest.Result{OutputPath: "/out/m.json"})
	p.PrintFailure("/out/m.json", errors.New("permission denied"))

	assert.Equal(t,
		"Manifest generated at /out/m.json\n"+
			"Manifest built for /out/m.json (not saved)\n"+
			"Failed to generate manifest at /out/m.json: permission denied\n",
		buf.String())
}

func TestPrintResultColored(t *testing.T) {
	var buf bytes.Buffer
	New().WithOutput(&buf).WithColors(true).PrintResult(&manifest.Result{OutputPath: "/x", Saved: true})
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "/x")
}
