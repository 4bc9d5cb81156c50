package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/mhennig/kalender/internal/cli"
	"github.com/mhennig/kalender/internal/db"
	"github.com/mhennig/kalender/internal/generation"
	"github.com/mhennig/kalender/internal/llm"
	"github.com/mhennig/kalender/internal/repository"
	"github.com/mhennig/kalender/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.kalender/kalender.db
	dbPath := os.Getenv("KALENDER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".kalender", "kalender.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// First run gets the default lists and the example theme.
	if err := db.Seed(database); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	optionRepo := repository.NewSQLiteOptionRepo(database)
	themeRepo := repository.NewSQLiteThemeRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	settingsSvc := service.NewSettingsService(optionRepo, themeRepo, uow)

	// Wire the OpenAI client only when a key is configured; without one
	// the calendar falls back to theme example ideas.
	llmCfg := llm.LoadConfig()
	var llmClient llm.Client
	var generator generation.TextGenerator
	if llmCfg.Enabled() {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOpenAIClient(llmCfg, observer)
		generator = llmClient
	}

	app := &cli.App{
		Settings:  settingsSvc,
		Calendar:  service.NewCalendarService(settingsSvc, generator),
		LLMConfig: llmCfg,
		LLMClient: llmClient,
	}

	// Detect interactive terminal for wizards and the list editor.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
