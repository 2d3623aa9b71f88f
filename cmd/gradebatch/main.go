package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rrmudry/labgrader/conf"
	"github.com/rrmudry/labgrader/gemini"
	"github.com/rrmudry/labgrader/grader"
	"github.com/rrmudry/labgrader/logger"
	"github.com/rrmudry/labgrader/pdfrender"
	"github.com/rrmudry/labgrader/qrscan"
)

func main() {
	// .env is optional; environment variables set directly still win.
	_ = godotenv.Load()

	dir := flag.String("dir", "", "input directory with PDF submissions")
	out := flag.String("out", "", "output CSV path")
	configPath := flag.String("config", "", "optional grader.toml path")
	listModels := flag.Bool("list-models", false, "list models available to the API key and exit")
	flag.Parse()

	cfg := conf.FromEnv()
	if *configPath != "" {
		if err := cfg.LoadTOML(*configPath); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *dir != "" {
		cfg.InputDir = *dir
	}
	if *out != "" {
		cfg.OutputCSV = *out
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if _, err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := gemini.New(ctx, cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *listModels {
		names, err := client.ListModels(ctx)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("--- Models available to this key ---")
		for _, name := range names {
			fmt.Printf("  > %s\n", name)
		}
		return
	}

	if _, err := os.Stat(cfg.InputDir); os.IsNotExist(err) {
		fmt.Printf("Creating input directory: %s\n", cfg.InputDir)
		if err := os.MkdirAll(cfg.InputDir, 0755); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Please put PDF files in this folder and run again.")
		return
	}

	svc := grader.New(cfg, pdfrender.New(cfg.DPI), qrscan.Scanner{}, client)

	_, err = svc.Run(ctx, consoleSink)
	if errors.Is(err, grader.ErrNoSubmissions) {
		fmt.Printf("No PDF files found in %s\n", cfg.InputDir)
		return
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nDone! Grades saved to %s\n", cfg.OutputCSV)
}

func consoleSink(ev grader.Event) {
	switch e := ev.(type) {
	case grader.RunStarted:
		fmt.Printf("Found %d submissions. Processing...\n", e.Total)
	case grader.SubmissionStarted:
		fmt.Printf("\nProcessing (%d/%d): %s\n", e.Index, e.Total, e.Filename)
	case grader.IdentifierFound:
		if e.Source == grader.SourceQR {
			fmt.Printf("  QR found SID: %s\n", e.SID)
		} else {
			fmt.Printf("  AI fallback found SID: %s\n", e.SID)
		}
	case grader.SubmissionGraded:
		fmt.Printf("  Score: %d | SID: %s\n", e.Row.Score, e.Row.StudentID)
	case grader.SubmissionSkipped:
		fmt.Printf("  Error: %v\n", e.Err)
	}
}
