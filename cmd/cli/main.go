package main

import (
	"fmt"
	"os"

	"github.com/amirasaad/minibank/infra/initializer"
	"github.com/amirasaad/minibank/pkg/app"
	"github.com/amirasaad/minibank/pkg/config"
	log "github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	// Only warnings and errors reach the terminal, on stderr, so they do not
	// interleave with the session.
	if cfg.Log.Level < int(log.WarnLevel) {
		cfg.Log.Level = int(log.WarnLevel)
	}
	logger := initializer.SetupLogger(cfg.Log, os.Stderr)

	deps, err := initializer.NewDeps(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a := app.New(deps, cfg)

	s := newSession(a, os.Stdin, os.Stdout)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		s.readSecret = func(prompt string) (string, error) {
			fmt.Fprint(s.out, prompt)
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(s.out)
			return string(b), err
		}
	}
	return s.Run()
}
