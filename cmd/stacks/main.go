package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/stacksapp/stacks/internal/api"
	"github.com/stacksapp/stacks/internal/config"
	"github.com/stacksapp/stacks/internal/log"
	"github.com/stacksapp/stacks/internal/service"
	"github.com/stacksapp/stacks/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var serverURL string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&serverURL, "server", "", "library server URL (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("stacks %s\n", Version)
		return
	}

	if err := run(serverURL); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(serverURL string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stacks must be run in a terminal")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting stacks", "version", Version, "server", cfg.Server.URL)

	client := api.NewClient(cfg.Server.URL, logger)

	sessionSvc := service.NewSessionService()
	authSvc := service.NewAuthService(client, logger)
	catalogSvc := service.NewCatalogService(client, logger)
	circulationSvc := service.NewCirculationService(client, client, logger)
	directorySvc := service.NewDirectoryService(client, logger)

	model := tui.NewModel(sessionSvc, authSvc, catalogSvc, circulationSvc, directorySvc)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
