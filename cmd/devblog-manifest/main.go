package main

import (
	"github.com/bethropolis/devblog-manifest/internal/app"
	"github.com/bethropolis/devblog-manifest/internal/config"
)

func main() {
	// Load configuration from command-line flags
	cfg := config.New()

	// Generation failures are already reported on the console
	_ = app.New(cfg).Run()
}
