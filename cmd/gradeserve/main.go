package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/rrmudry/labgrader/conf"
	"github.com/rrmudry/labgrader/httpapi"
	"github.com/rrmudry/labgrader/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := conf.FromEnv()
	if _, err := logger.Setup(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	server := httpapi.New(cfg)

	slog.Info("starting results review server",
		"address", cfg.ListenAddr, "csv", cfg.OutputCSV)
	err := server.Start(cfg.ListenAddr)
	slog.Error("server stopped", "error", err)
	os.Exit(1)
}
