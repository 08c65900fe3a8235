package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSupabaseFromFile(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "")
	os.Unsetenv("NEXT_PUBLIC_SUPABASE_URL")
	os.Unsetenv("NEXT_PUBLIC_SUPABASE_ANON_KEY")

	envFile := filepath.Join(t.TempDir(), ".env.local")
	if err := os.WriteFile(envFile, []byte("NEXT_PUBLIC_SUPABASE_URL=https://abc.supabase.co\nNEXT_PUBLIC_SUPABASE_ANON_KEY=anon\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(envFile, BackendSupabase)
	if err != nil {
		t.Fatal(err)
	}
	if c.Supabase.URL != "https://abc.supabase.co" || c.Supabase.Key != "anon" {
		t.Fatalf("unexpected config: %+v", c.Supabase)
	}
}

func TestLoadEnvironmentWins(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "https://env.supabase.co")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "env-key")

	envFile := filepath.Join(t.TempDir(), ".env.local")
	if err := os.WriteFile(envFile, []byte("NEXT_PUBLIC_SUPABASE_URL=https://file.supabase.co\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(envFile, BackendSupabase)
	if err != nil {
		t.Fatal(err)
	}
	if c.Supabase.URL != "https://env.supabase.co" || c.Supabase.Key != "env-key" {
		t.Fatalf("unexpected config: %+v", c.Supabase)
	}
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"), BackendSupabase)
	if !errors.Is(err, ErrMissingCredentials) {
		t.Fatal("expected ErrMissingCredentials:", err)
	}
}

func TestLoadPostgres(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/problems")

	c, err := Load("", BackendPostgres)
	if err != nil {
		t.Fatal(err)
	}
	if c.DSN != "postgres://u:p@db:5432/problems" {
		t.Fatal("unexpected dsn:", c.DSN)
	}

	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRE_HOST", "pg")
	c, err = Load("", BackendPostgres)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(c.DSN, "host=pg") || !strings.Contains(c.DSN, "port=5432") {
		t.Fatal("unexpected dsn:", c.DSN)
	}
}

func TestLoadUnknownBackend(t *testing.T) {
	if _, err := Load("", "mysql"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoadBlankCredentials(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "  ")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "anon")

	if _, err := Load("", BackendSupabase); !errors.Is(err, ErrMissingCredentials) {
		t.Fatal("expected ErrMissingCredentials:", err)
	}
}
