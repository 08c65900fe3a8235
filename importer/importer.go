package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// publicTestCases is the number of leading test cases visible to users.
const publicTestCases = 2

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// TestCaseFile is one input/output file pair and the visibility given to it.
type TestCaseFile struct {
	InputPath  string
	OutputPath string
	IsHidden   bool
}

// ImportedProblem describes a problem after its rows were written.
type ImportedProblem struct {
	ID        int64
	Dir       string
	Statement Statement
	TestCases []TestCaseFile
}

// Hook runs after a problem and its test cases were stored.
type Hook interface {
	AfterImport(ctx context.Context, p ImportedProblem) error
}

type HookFunc func(ctx context.Context, p ImportedProblem) error

func (f HookFunc) AfterImport(ctx context.Context, p ImportedProblem) error {
	return f(ctx, p)
}

type Importer struct {
	backend  Backend
	resolver *Resolver
	hooks    []Hook
}

func New(backend Backend, hooks ...Hook) *Importer {
	return &Importer{
		backend:  backend,
		resolver: NewResolver(backend),
		hooks:    hooks,
	}
}

// ImportProblem inserts the problem and links its known tags.
// It returns ErrUnknownDifficulty without writing anything when the difficulty cannot be resolved.
func (im *Importer) ImportProblem(ctx context.Context, title, description, difficulty string, tags []string) (int64, error) {
	difficultyID, err := im.resolver.DifficultyID(ctx, difficulty)
	if errors.Is(err, ErrNotFound) {
		slog.Warn("Invalid difficulty", "difficulty", difficulty, "title", title)
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, difficulty)
	} else if err != nil {
		return 0, err
	}

	problemID, err := im.backend.InsertProblem(ctx, Problem{
		Title:        title,
		Description:  description,
		DifficultyID: difficultyID,
	})
	if err != nil {
		return 0, err
	}

	tagIDs, err := im.resolver.TagIDs(ctx, tags)
	if err != nil {
		return problemID, err
	}
	for _, tagID := range tagIDs {
		if err := im.backend.InsertProblemTag(ctx, problemID, tagID); err != nil {
			return problemID, err
		}
	}
	slog.Info("Problem created", "id", problemID, "title", title, "tags", len(tagIDs))
	return problemID, nil
}

// PairTestCaseFiles pairs inputs and outputs by index, dropping the surplus of the longer list.
func PairTestCaseFiles(inputs, outputs []string) []TestCaseFile {
	n := min(len(inputs), len(outputs))
	files := make([]TestCaseFile, 0, n)
	for i := 0; i < n; i++ {
		files = append(files, TestCaseFile{
			InputPath:  inputs[i],
			OutputPath: outputs[i],
			IsHidden:   i >= publicTestCases,
		})
	}
	return files
}

// ImportTestCases inserts one test case per input/output pair. The lists must already be sorted.
func (im *Importer) ImportTestCases(ctx context.Context, problemID int64, inputs, outputs []string) ([]TestCaseFile, error) {
	if len(inputs) != len(outputs) {
		slog.Warn("Input and output counts differ", "problem", problemID, "input", len(inputs), "output", len(outputs))
	}
	files := PairTestCaseFiles(inputs, outputs)
	for _, f := range files {
		in, err := readTrimmed(f.InputPath)
		if err != nil {
			return nil, err
		}
		out, err := readTrimmed(f.OutputPath)
		if err != nil {
			return nil, err
		}
		if err := im.backend.InsertTestCase(ctx, TestCase{
			ProblemID:      problemID,
			Input:          in,
			ExpectedOutput: out,
			IsHidden:       f.IsHidden,
		}); err != nil {
			return nil, err
		}
	}
	return files, nil
}

func readTrimmed(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
