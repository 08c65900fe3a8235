package main

import (
	"log/slog"
	"os"

	"github.com/leetforge/problem-importer/database"
)

func main() {
	db, err := database.Connect(database.GetDSNFromEnv(), false)
	if err != nil {
		slog.Error("Failed to connect db", "err", err)
		os.Exit(1)
	}

	if err := database.AutoMigrate(db); err != nil {
		slog.Error("Migration failed", "err", err)
		os.Exit(1)
	}
	slog.Info("Migration finished")
}
