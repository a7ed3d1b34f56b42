package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"
	"github.com/mark3labs/mcp-go/server"

	"jot/internal/adapters/filesystem"
	mcpadapter "jot/internal/adapters/mcp"
	"jot/internal/adapters/sqlite"
	"jot/internal/application"
	"jot/internal/config"
)

func main() {
	homeFlag := flag.String("home", "", "directory holding config.toml and vaults.toml (default $JOT_HOME)")
	verbose := flag.Bool("verbose", false, "log debug output to stderr")
	flag.Parse()

	home := *homeFlag
	if home == "" {
		var err error
		if home, err = config.Home(); err != nil {
			log.Fatalf("jot-mcp: %v", err)
		}
	}

	cfg, err := config.Load(filepath.Join(home, config.ConfigFileName))
	if err != nil {
		log.Fatalf("jot-mcp: %v", err)
	}
	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	// stdout carries the protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	registry, err := filesystem.LoadRegistry(filepath.Join(home, filesystem.RegistryFileName))
	if err != nil {
		log.Fatalf("jot-mcp: %v", err)
	}

	app := &application.App{
		Config:  cfg,
		Manager: application.NewManager(registry, logger),
		History: sqlite.NewHistory(logger),
		Logger:  logger,
	}

	if err := server.ServeStdio(mcpadapter.NewServer(app)); err != nil {
		log.Fatalf("jot-mcp: %v", err)
	}
}
