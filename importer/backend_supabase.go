package importer

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
)

const (
	difficultiesTable = "problem_difficulties"
	tagsTable         = "tags"
	problemsTable     = "problems"
	problemTagsTable  = "problem_tags"
	testCasesTable    = "test_cases"
)

type idRow struct {
	ID int64 `json:"id"`
}

type problemRow struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DifficultyID int64      `json:"difficulty_id"`
	CreatedBy    *uuid.UUID `json:"created_by"`
}

type problemTagRow struct {
	ProblemID int64 `json:"problem_id"`
	TagID     int64 `json:"tag_id"`
}

type testCaseRow struct {
	ProblemID      int64  `json:"problem_id"`
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
	IsHidden       bool   `json:"is_hidden"`
}

// SupabaseBackend stores problems through the PostgREST endpoint of a Supabase project.
// postgrest-go takes no context, so cancellation is only checked between requests.
type SupabaseBackend struct {
	client *postgrest.Client
}

// NewSupabaseBackend authenticates every request with key as both apikey and bearer token.
func NewSupabaseBackend(projectURL, key string) (*SupabaseBackend, error) {
	projectURL = strings.TrimRight(strings.TrimSpace(projectURL), "/")
	u, err := url.Parse(projectURL)
	if err != nil {
		return nil, fmt.Errorf("parse supabase url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid supabase url: %q", projectURL)
	}
	key = strings.TrimSpace(key)
	client := postgrest.NewClient(projectURL+"/rest/v1", "public", map[string]string{
		"apikey":        key,
		"Authorization": "Bearer " + key,
	})
	if client.ClientError != nil {
		return nil, client.ClientError
	}
	return &SupabaseBackend{client: client}, nil
}

func (b *SupabaseBackend) FetchDifficultyID(ctx context.Context, name string) (int64, error) {
	return b.fetchID(ctx, difficultiesTable, "difficulty_name", name)
}

func (b *SupabaseBackend) FetchTagID(ctx context.Context, name string) (int64, error) {
	return b.fetchID(ctx, tagsTable, "tag_name", name)
}

func (b *SupabaseBackend) fetchID(ctx context.Context, table, column, name string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var rows []idRow
	if _, err := b.client.From(table).Select("id", "", false).Eq(column, name).ExecuteTo(&rows); err != nil {
		return 0, fmt.Errorf("select %s %q: %w", table, name, err)
	}
	if len(rows) == 0 {
		return 0, ErrNotFound
	}
	return rows[0].ID, nil
}

func (b *SupabaseBackend) InsertProblem(ctx context.Context, p Problem) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var rows []idRow
	row := problemRow{
		Title:        p.Title,
		Description:  p.Description,
		DifficultyID: p.DifficultyID,
		CreatedBy:    p.CreatedBy,
	}
	if _, err := b.client.From(problemsTable).Insert(row, false, "", "representation", "").ExecuteTo(&rows); err != nil {
		return 0, fmt.Errorf("insert problem %q: %w", p.Title, err)
	}
	if len(rows) == 0 {
		return 0, ErrNoProblemCreated
	}
	return rows[0].ID, nil
}

func (b *SupabaseBackend) InsertProblemTag(ctx context.Context, problemID, tagID int64) error {
	if err := b.insert(ctx, problemTagsTable, problemTagRow{ProblemID: problemID, TagID: tagID}); err != nil {
		return fmt.Errorf("insert tag %d of problem %d: %w", tagID, problemID, err)
	}
	return nil
}

func (b *SupabaseBackend) InsertTestCase(ctx context.Context, tc TestCase) error {
	if err := b.insert(ctx, testCasesTable, testCaseRow(tc)); err != nil {
		return fmt.Errorf("insert test case of problem %d: %w", tc.ProblemID, err)
	}
	return nil
}

// insert writes row without asking for it back; the response body is empty.
func (b *SupabaseBackend) insert(ctx context.Context, table string, row any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, _, err := b.client.From(table).Insert(row, false, "", "minimal", "").Execute()
	return err
}
