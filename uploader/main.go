package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/disgoorg/disgo/webhook"
	"github.com/leetforge/problem-importer/config"
	"github.com/leetforge/problem-importer/database"
	"github.com/leetforge/problem-importer/importer"
	"github.com/leetforge/problem-importer/storage"
)

var (
	app = kingpin.New("uploader", "Import problem statements and test cases")

	problemsDir = app.Flag("dir", "directory of problems").Default(config.DefaultProblemsDir).String()
	backendName = app.Flag("backend", "where to store problems").Default(config.BackendSupabase).Enum(config.BackendSupabase, config.BackendPostgres)
	envFile     = app.Flag("env-file", "dotenv file with credentials").Default(config.DefaultEnvFile).String()
	discordUrl  = app.Flag("discordwebhook", "webhook URL of discord").Envar("DISCORD_WEBHOOK_URL").String()
	archive     = app.Flag("archive", "upload test case archives to object storage").Bool()
	migrate     = app.Flag("migrate", "create tables before importing (postgres backend only)").Bool()
	debug       = app.Flag("debug", "verbose logging").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*envFile, *backendName)
	if err != nil {
		slog.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}

	backend, err := connectBackend(cfg)
	if err != nil {
		slog.Error("Failed to connect backend", "backend", cfg.Backend, "err", err)
		os.Exit(1)
	}

	var hooks []importer.Hook

	// connect discord
	if *discordUrl != "" {
		dc, err := webhook.NewWithURL(*discordUrl)
		if err != nil {
			slog.Error("Failed to init discord client", "err", err)
			os.Exit(1)
		}
		hooks = append(hooks, discordHook{client: dc})
	}

	// connect storage client
	if *archive {
		storageClient, err := storage.Connect(ctx, cfg.Storage)
		if err != nil {
			slog.Error("Failed to connect to storage", "err", err)
			os.Exit(1)
		}
		hooks = append(hooks, archiveHook{client: storageClient})
	}

	slog.Info("Import problems", "dir", *problemsDir, "backend", cfg.Backend)
	report, err := importer.New(backend, hooks...).Walk(ctx, *problemsDir)
	if err != nil {
		slog.Error("Import failed", "imported", report.Imported, "err", err)
		os.Exit(1)
	}
	slog.Info("Import finished", "imported", report.Imported, "skipped", report.Skipped, "test_cases", report.TestCases)
}

func connectBackend(cfg *config.Config) (importer.Backend, error) {
	switch cfg.Backend {
	case config.BackendPostgres:
		db, err := database.Connect(cfg.DSN, *debug)
		if err != nil {
			return nil, err
		}
		if *migrate {
			if err := database.AutoMigrate(db); err != nil {
				return nil, err
			}
		}
		return importer.NewDatabaseBackend(db), nil
	default:
		return importer.NewSupabaseBackend(cfg.Supabase.URL, cfg.Supabase.Key)
	}
}
