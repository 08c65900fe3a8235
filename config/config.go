// Package config reads importer settings from the environment and an optional dotenv file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/leetforge/problem-importer/database"
	"github.com/leetforge/problem-importer/storage"
)

const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"

	DefaultEnvFile     = ".env.local"
	DefaultProblemsDir = "./sample_problems"
)

var ErrMissingCredentials = errors.New("missing Supabase credentials")

// SupabaseConfig is the project URL and the key sent with every REST request.
type SupabaseConfig struct {
	URL string
	Key string
}

func (c SupabaseConfig) Validate() error {
	if c.URL == "" || c.Key == "" {
		return ErrMissingCredentials
	}
	return nil
}

type Config struct {
	Backend  string
	Supabase SupabaseConfig
	DSN      string
	Storage  storage.Config
}

// Load reads envFile (a missing file is ignored) and returns the settings of the given backend.
// Variables already present in the environment win over the file.
func Load(envFile, backend string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	c := &Config{
		Backend: backend,
		Storage: storage.GetConfigFromEnv(),
	}
	switch backend {
	case BackendSupabase:
		c.Supabase = SupabaseConfig{
			URL: strings.TrimSpace(os.Getenv("NEXT_PUBLIC_SUPABASE_URL")),
			Key: strings.TrimSpace(os.Getenv("NEXT_PUBLIC_SUPABASE_ANON_KEY")),
		}
		if err := c.Supabase.Validate(); err != nil {
			return nil, fmt.Errorf("%w: set NEXT_PUBLIC_SUPABASE_URL and NEXT_PUBLIC_SUPABASE_ANON_KEY in %s", err, envFile)
		}
	case BackendPostgres:
		c.DSN = database.GetDSNFromEnv()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
	return c, nil
}
