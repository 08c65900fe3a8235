package importer

import (
	"errors"
	"slices"
	"testing"
)

func TestParseStatement(t *testing.T) {
	s, err := ParseStatement("  Two Sum \nEasy\narray, hashmap\n\n\nGiven nums...\n\nReturn indices.\n")
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "Two Sum" {
		t.Fatalf("title = %q", s.Title)
	}
	if s.Difficulty != "Easy" {
		t.Fatalf("difficulty = %q", s.Difficulty)
	}
	if s.Description != "Given nums...\n\nReturn indices." {
		t.Fatalf("description = %q", s.Description)
	}
	if names := s.TagNames(); !slices.Equal(names, []string{"array", "hashmap"}) {
		t.Fatalf("tags = %q", names)
	}
}

func TestParseStatementCRLF(t *testing.T) {
	s, err := ParseStatement("A\r\nHard\r\ndp\r\n\r\n\r\nline1\r\nline2")
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "A" || s.Difficulty != "Hard" || s.Description != "line1\nline2" {
		t.Fatalf("unexpected statement: %+v", s)
	}
}

func TestParseStatementTooShort(t *testing.T) {
	for _, text := range []string{
		"",
		"Title\nEasy\ntag\n\n",
		// five lines; the trailing newline does not open a sixth
		"Title\nEasy\ntag\n\n\n",
	} {
		if _, err := ParseStatement(text); !errors.Is(err, ErrInvalidStatement) {
			t.Fatalf("%q: expected ErrInvalidStatement, got %v", text, err)
		}
	}

	// exactly six lines with an empty description is accepted
	s, err := ParseStatement("Title\nEasy\ntag\n\n\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if s.Description != "" {
		t.Fatalf("description = %q", s.Description)
	}
}

func TestParseStatementBlankHeader(t *testing.T) {
	s, err := ParseStatement("   \nEasy\ntag\n\n\nbody")
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "" || s.Difficulty != "Easy" || s.Description != "body" {
		t.Fatalf("unexpected statement: %+v", s)
	}

	// a blank difficulty is left to the lookup, which reports it
	s, err = ParseStatement("Title\n \ntag\n\n\nbody")
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "Title" || s.Difficulty != "" {
		t.Fatalf("unexpected statement: %+v", s)
	}
}

func TestParseStatementCR(t *testing.T) {
	s, err := ParseStatement("A\rEasy\rdp\r\r\rbody")
	if err != nil {
		t.Fatal(err)
	}
	if s.Title != "A" || s.Difficulty != "Easy" || s.Tags != "dp" || s.Description != "body" {
		t.Fatalf("unexpected statement: %+v", s)
	}
}

func TestTagNames(t *testing.T) {
	for _, tc := range []struct {
		tags string
		want []string
	}{
		{"", []string{}},
		{"array", []string{"array"}},
		{" a ,b,, c ", []string{"a", "b", "c"}},
	} {
		if got := (Statement{Tags: tc.tags}).TagNames(); !slices.Equal(got, tc.want) {
			t.Fatalf("%q: got %q, want %q", tc.tags, got, tc.want)
		}
	}
}
