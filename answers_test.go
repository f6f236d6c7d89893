package aoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAnswers(t *testing.T) {
	answers, err := loadAnswers("testdata/answers.yaml")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		day  int
		part string
		want string
	}{
		{1, "1", "514579"},
		{1, "2", "241861950"},
		{16, "1", "71"},
		{16, "2", "1"},
		{16, "3", ""},
		{99, "1", ""},
	}
	for _, tt := range tests {
		if got := answers.lookup(tt.day, tt.part); got != tt.want {
			t.Errorf("lookup(%d, %q) = %q, want %q", tt.day, tt.part, got, tt.want)
		}
	}
}

func TestLoadAnswersMissingFile(t *testing.T) {
	_, err := loadAnswers("testdata/no-such-file.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadAnswersMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte("1: [oops"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadAnswers(path); err == nil {
		t.Fatal("loadAnswers succeeded on malformed yaml")
	}
}

func TestLookupNil(t *testing.T) {
	var answers answerFile
	if got := answers.lookup(16, "1"); got != "" {
		t.Errorf(`nil lookup = %q, want ""`, got)
	}
}
