package importer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

const (
	StatementFile = "statement.md"
	InputDir      = "input"
	OutputDir     = "output"

	// line 1 title, 2 difficulty, 3 tags, 4-5 reserved, 6+ description
	minStatementLines = 6
	descriptionLine   = 5
)

var ErrInvalidStatement = errors.New("invalid statement format")

// Statement is the parsed header and body of a statement.md file.
type Statement struct {
	Title       string
	Difficulty  string
	Tags        string
	Description string
}

// TagNames splits the comma separated tag line into trimmed, non-empty names.
func (s Statement) TagNames() []string {
	names := lo.Map(strings.Split(s.Tags, ","), func(name string, _ int) string {
		return strings.TrimSpace(name)
	})
	return lo.Filter(names, func(name string, _ int) bool {
		return name != ""
	})
}

func ReadStatement(path string) (Statement, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Statement{}, err
	}
	return ParseStatement(string(b))
}

func ParseStatement(text string) (Statement, error) {
	lines := splitLines(text)
	if len(lines) < minStatementLines {
		return Statement{}, fmt.Errorf("%w: %d lines, want at least %d", ErrInvalidStatement, len(lines), minStatementLines)
	}
	s := Statement{
		Title:       strings.TrimSpace(lines[0]),
		Difficulty:  strings.TrimSpace(lines[1]),
		Tags:        strings.TrimSpace(lines[2]),
		Description: strings.TrimSpace(strings.Join(lines[descriptionLine:], "")),
	}
	return s, nil
}

// splitLines splits text into lines that keep their "\n" terminator.
// "\r\n" and a lone "\r" also end a line.
// A trailing terminator does not start an extra empty line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
