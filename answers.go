package aoc

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// dayAnswers holds the recorded answers for one day.
type dayAnswers struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// answerFile maps day number to that day's recorded answers. Answers are
// strings; a few puzzles answer with words rather than numbers.
type answerFile map[int]dayAnswers

// loadAnswers reads recorded answers from the YAML file at path.
func loadAnswers(path string) (answerFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var answers answerFile
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return answers, nil
}

// loadAnswersOrDie loads the answers file named by the --answers flag.
// The default file is allowed to be missing; a file named explicitly on
// the command line is not.
func loadAnswersOrDie(path string) answerFile {
	if path == "" {
		return nil
	}
	answers, err := loadAnswers(path)
	if errors.Is(err, os.ErrNotExist) && !pflag.CommandLine.Changed("answers") {
		return nil
	}
	if err != nil {
		log.Fatalf("reading recorded answers: %v", err)
	}
	return answers
}

// lookup returns the recorded answer for a day and part ("1" or "2"), or
// "" if there isn't one.
func (a answerFile) lookup(dayNum int, part string) string {
	answers, ok := a[dayNum]
	if !ok {
		return ""
	}
	switch part {
	case "1":
		return answers.Part1
	case "2":
		return answers.Part2
	}
	return ""
}
