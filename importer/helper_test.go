package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// memBackend is an in-memory Backend recording every write.
type memBackend struct {
	difficulties map[string]int64
	tags         map[string]int64
	problems     []Problem
	links        [][2]int64
	testCases    []TestCase

	failOn    string
	tagLookup []string
}

func newMemBackend() *memBackend {
	return &memBackend{
		difficulties: map[string]int64{"Easy": 1, "Medium": 2, "Hard": 3},
		tags:         map[string]int64{"array": 10, "hashmap": 11, "dp": 12},
	}
}

func (b *memBackend) fail(op string) error {
	if b.failOn == op {
		return fmt.Errorf("%s: connection reset", op)
	}
	return nil
}

func (b *memBackend) FetchDifficultyID(_ context.Context, name string) (int64, error) {
	if err := b.fail("difficulty"); err != nil {
		return 0, err
	}
	if id, ok := b.difficulties[name]; ok {
		return id, nil
	}
	return 0, ErrNotFound
}

func (b *memBackend) FetchTagID(_ context.Context, name string) (int64, error) {
	b.tagLookup = append(b.tagLookup, name)
	if err := b.fail("tag"); err != nil {
		return 0, err
	}
	if id, ok := b.tags[name]; ok {
		return id, nil
	}
	return 0, ErrNotFound
}

func (b *memBackend) InsertProblem(_ context.Context, p Problem) (int64, error) {
	if err := b.fail("problem"); err != nil {
		return 0, err
	}
	b.problems = append(b.problems, p)
	return int64(100 + len(b.problems)), nil
}

func (b *memBackend) InsertProblemTag(_ context.Context, problemID, tagID int64) error {
	if err := b.fail("link"); err != nil {
		return err
	}
	b.links = append(b.links, [2]int64{problemID, tagID})
	return nil
}

func (b *memBackend) InsertTestCase(_ context.Context, tc TestCase) error {
	if err := b.fail("testcase"); err != nil {
		return err
	}
	b.testCases = append(b.testCases, tc)
	return nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeProblem lays out root/name with a statement and numbered test case files.
func writeProblem(t *testing.T, root, name, statement string, cases int) string {
	t.Helper()
	dir := filepath.Join(root, name)
	writeFile(t, filepath.Join(dir, StatementFile), statement)
	for i := 1; i <= cases; i++ {
		writeFile(t, filepath.Join(dir, InputDir, fmt.Sprintf("%d.txt", i)), fmt.Sprintf("\n in %d \n", i))
		writeFile(t, filepath.Join(dir, OutputDir, fmt.Sprintf("%d.txt", i)), fmt.Sprintf("out %d\n", i))
	}
	return dir
}

const twoSum = "Two Sum\nEasy\narray, hashmap\n\n\nGiven nums..."
