package main

import (
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/leetforge/problem-importer/database"
	"gorm.io/gorm"
)

type taxonomy struct {
	Difficulties []string
	Tags         []string
}

func main() {
	problemsDir := flag.String("dir", "./sample_problems", "directory containing taxonomy.toml")
	flag.Parse()

	db, err := database.Connect(database.GetDSNFromEnv(), false)
	if err != nil {
		slog.Error("Failed to connect db", "err", err)
		os.Exit(1)
	}

	if err := uploadTaxonomy(*problemsDir, db); err != nil {
		slog.Error("Failed to update taxonomy", "err", err)
		os.Exit(1)
	}
}

func loadTaxonomy(dir string) (taxonomy, error) {
	var data taxonomy
	if _, err := toml.DecodeFile(path.Join(dir, "taxonomy.toml"), &data); err != nil {
		return taxonomy{}, err
	}
	return data, nil
}

func uploadTaxonomy(dir string, db *gorm.DB) error {
	data, err := loadTaxonomy(dir)
	if err != nil {
		return err
	}
	slog.Info("Save taxonomy", "difficulties", len(data.Difficulties), "tags", len(data.Tags))
	if err := database.SaveDifficulties(db, data.Difficulties); err != nil {
		return err
	}
	return database.SaveTags(db, data.Tags)
}
