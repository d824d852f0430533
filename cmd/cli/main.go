package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ArmyClaw/open-stitch-studio/internal/catalog"
	"github.com/ArmyClaw/open-stitch-studio/internal/cli/commands"
	"github.com/ArmyClaw/open-stitch-studio/internal/config"
	"github.com/ArmyClaw/open-stitch-studio/internal/document"
	"github.com/ArmyClaw/open-stitch-studio/internal/parser"
	"github.com/ArmyClaw/open-stitch-studio/pkg/logger"
)

// Version is set by build flags
var Version = "1.0-dev"

func main() {
	if err := Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Run runs the CLI application
func Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Default.SetLevelName(cfg.App.LogLevel)

	if err := document.EnsureDocumentsDir(cfg.App.DocumentsDir, cfg.App.SamplesDir); err != nil {
		return err
	}

	db, err := catalog.NewDatabase(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize the catalog: %w", err)
	}
	store := catalog.NewStore(db)
	defer store.Close()

	service := document.NewService(
		document.NewRegistry(),
		nil,
		parser.AppInfo{Name: cfg.App.Name, Version: cfg.App.Version},
		cfg.App.DocumentsDir,
		cfg.Fonts.Dirs,
	)

	app := &cli.App{
		Name:    "stitch",
		Version: Version,
		Usage:   "Open Stitch Studio: cross-stitch pattern tooling",
		Description: `Headless tooling around the Open Stitch Studio document core.

Quick Start:
  stitch info pattern.oxs              Print a pattern summary
  stitch convert in.oxs out.embproj    Convert between formats
  stitch palette brands               List catalog brands`,
		Commands: commands.BuildCommands(service, store, cfg),
		Action: func(c *cli.Context) error {
			fmt.Println("Open Stitch Studio v" + Version)
			fmt.Println("\nUse 'stitch --help' to see available commands")
			return nil
		},
	}

	return app.Run(os.Args)
}

func loadConfig() (*config.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	loader := config.NewLoader(filepath.Join(homeDir, ".open-stitch-studio"), "config")
	return loader.Load()
}
