package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/rrmudry/labgrader/conf"
	"github.com/rrmudry/labgrader/gemini"
	"github.com/rrmudry/labgrader/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := conf.FromEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// bubbletea owns the terminal, so diagnostics go to a file.
	if cfg.LogFile == "" {
		cfg.LogFile = "gradetui.log"
	}
	if _, err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	client, err := gemini.New(context.Background(), cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(initialModel(cfg, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
