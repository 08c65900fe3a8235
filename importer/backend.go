// Package importer loads problem directories (statement plus input/output test cases) into a backend.
package importer

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by Backend lookups when no row matches the name.
	ErrNotFound = errors.New("not found")
	// ErrNoProblemCreated is returned when the backend accepted a problem insert but reported no row.
	ErrNoProblemCreated = errors.New("backend returned no inserted problem")
)

// Problem is a problem row to be inserted.
type Problem struct {
	Title        string
	Description  string
	DifficultyID int64
	CreatedBy    *uuid.UUID
}

// TestCase is a test case row to be inserted.
type TestCase struct {
	ProblemID      int64
	Input          string
	ExpectedOutput string
	IsHidden       bool
}

// Backend is the table-oriented store problems are written to.
type Backend interface {
	FetchDifficultyID(ctx context.Context, name string) (int64, error)
	FetchTagID(ctx context.Context, name string) (int64, error)
	InsertProblem(ctx context.Context, p Problem) (int64, error)
	InsertProblemTag(ctx context.Context, problemID, tagID int64) error
	InsertTestCase(ctx context.Context, tc TestCase) error
}
