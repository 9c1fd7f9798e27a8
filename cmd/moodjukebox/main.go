// Command moodjukebox runs the MoodJukebox web application.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/justestif/moodjukebox/internal/config"
	"github.com/justestif/moodjukebox/internal/logging"
	"github.com/justestif/moodjukebox/internal/web"
	webfs "github.com/justestif/moodjukebox/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logging.Setup(cfg, os.Stderr)

	// Create sub-filesystems for templates and static files
	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	server, err := web.NewServer(web.ServerConfig{
		Addr:        cfg.Addr,
		TemplatesFS: templates,
		StaticFS:    static,
		Logger:      &log.Logger,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}
