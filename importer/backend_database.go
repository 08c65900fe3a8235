package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/leetforge/problem-importer/database"
	"gorm.io/gorm"
)

// DatabaseBackend stores problems directly in Postgres through gorm.
type DatabaseBackend struct {
	db *gorm.DB
}

func NewDatabaseBackend(db *gorm.DB) *DatabaseBackend {
	return &DatabaseBackend{db: db}
}

func (b *DatabaseBackend) FetchDifficultyID(ctx context.Context, name string) (int64, error) {
	id, err := database.FetchDifficultyID(b.db.WithContext(ctx), name)
	if errors.Is(err, database.ErrNotExist) {
		return 0, ErrNotFound
	} else if err != nil {
		return 0, fmt.Errorf("fetch difficulty %q: %w", name, err)
	}
	return id, nil
}

func (b *DatabaseBackend) FetchTagID(ctx context.Context, name string) (int64, error) {
	id, err := database.FetchTagID(b.db.WithContext(ctx), name)
	if errors.Is(err, database.ErrNotExist) {
		return 0, ErrNotFound
	} else if err != nil {
		return 0, fmt.Errorf("fetch tag %q: %w", name, err)
	}
	return id, nil
}

func (b *DatabaseBackend) InsertProblem(ctx context.Context, p Problem) (int64, error) {
	id, err := database.InsertProblem(b.db.WithContext(ctx), database.Problem{
		Title:        p.Title,
		Description:  p.Description,
		DifficultyID: p.DifficultyID,
		CreatedBy:    p.CreatedBy,
	})
	if err != nil {
		return 0, fmt.Errorf("insert problem %q: %w", p.Title, err)
	}
	return id, nil
}

func (b *DatabaseBackend) InsertProblemTag(ctx context.Context, problemID, tagID int64) error {
	if err := database.InsertProblemTag(b.db.WithContext(ctx), problemID, tagID); err != nil {
		return fmt.Errorf("insert tag %d of problem %d: %w", tagID, problemID, err)
	}
	return nil
}

func (b *DatabaseBackend) InsertTestCase(ctx context.Context, tc TestCase) error {
	if _, err := database.InsertTestCase(b.db.WithContext(ctx), database.TestCase{
		ProblemID:      tc.ProblemID,
		Input:          tc.Input,
		ExpectedOutput: tc.ExpectedOutput,
		IsHidden:       tc.IsHidden,
	}); err != nil {
		return fmt.Errorf("insert test case of problem %d: %w", tc.ProblemID, err)
	}
	return nil
}
