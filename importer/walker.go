package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"
)

// Report summarises a Walk.
type Report struct {
	Imported  int
	Skipped   int
	TestCases int
}

// Walk imports every immediate subdirectory of root in name order.
// Malformed problems are skipped; backend and filesystem errors stop the walk.
func (im *Importer) Walk(ctx context.Context, root string) (Report, error) {
	var report Report
	entries, err := os.ReadDir(root)
	if err != nil {
		return report, err
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		dir := filepath.Join(root, entry.Name())
		if !isDir(dir) {
			continue
		}
		p, err := im.importDir(ctx, dir)
		if errors.Is(err, errSkip) {
			report.Skipped++
			continue
		} else if err != nil {
			return report, fmt.Errorf("import %s: %w", dir, err)
		}
		report.Imported++
		report.TestCases += len(p.TestCases)

		for _, h := range im.hooks {
			if err := h.AfterImport(ctx, p); err != nil {
				slog.Error("Post-import hook failed", "dir", dir, "id", p.ID, "err", err)
			}
		}
	}
	return report, nil
}

var errSkip = errors.New("skip problem")

func (im *Importer) importDir(ctx context.Context, dir string) (ImportedProblem, error) {
	statementPath := filepath.Join(dir, StatementFile)
	if _, err := os.Stat(statementPath); errors.Is(err, os.ErrNotExist) {
		slog.Debug("No statement", "dir", dir)
		return ImportedProblem{}, errSkip
	}

	s, err := ReadStatement(statementPath)
	if errors.Is(err, ErrInvalidStatement) {
		slog.Debug("Invalid format", "dir", dir, "err", err)
		return ImportedProblem{}, errSkip
	} else if err != nil {
		return ImportedProblem{}, err
	}

	id, err := im.ImportProblem(ctx, s.Title, s.Description, s.Difficulty, s.TagNames())
	if errors.Is(err, ErrUnknownDifficulty) || errors.Is(err, ErrNoProblemCreated) {
		return ImportedProblem{}, errSkip
	} else if err != nil {
		return ImportedProblem{}, err
	}

	p := ImportedProblem{ID: id, Dir: dir, Statement: s}
	inputDir, outputDir := filepath.Join(dir, InputDir), filepath.Join(dir, OutputDir)
	if !isDir(inputDir) || !isDir(outputDir) {
		return p, nil
	}
	inputs, err := listFiles(inputDir)
	if err != nil {
		return p, err
	}
	outputs, err := listFiles(outputDir)
	if err != nil {
		return p, err
	}
	files, err := im.ImportTestCases(ctx, id, inputs, outputs)
	if err != nil {
		return p, err
	}
	p.TestCases = files
	slog.Info("Test cases created", "id", id, "count", len(files))
	return p, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// listFiles returns the sorted paths of the non-directory entries of dir.
func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return filepath.Join(dir, e.Name()), !e.IsDir()
	})
	slices.Sort(paths)
	return paths, nil
}
