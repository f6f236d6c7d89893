// Package aoc are quick & dirty utilities for helping Maisem
// solve Advent of Code problems. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(funcName, comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) map[string]sample {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "aoc.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("parsing source to extract samples: %v", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(funcName, c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
}

// Input returns the input for the current puzzle: the sample embedded in
// the solver's doc comment in sample mode, the real input otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return readInput(p.year, p.day.day)
}

// readInput reads the puzzle input from {year}/{day}.input. Inputs are
// personal, so they live next to the binary rather than in the repo.
func readInput(year, dayNum int) []byte {
	filename := fmt.Sprintf("%d/%d.input", year, dayNum)
	in, err := os.ReadFile(filename)
	if err != nil {
		log.Fatalf("reading input for day %d: %v (save your puzzle input as %s)", dayNum, err, filename)
	}
	return in
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

func (p *Puzzle) Debug(v ...any) {
	if flagDebug {
		fmt.Println(v...)
	}
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if flagDebug && p.SampleMode {
		fmt.Printf(format+"\n", args...)
	}
}

// ForLines calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must match the
// signature of PuzzleSolver.
func extractMethods(x any) map[int]day {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Register: got %T; want struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		mn := mt.Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m := v.Method(i).Interface().(func() interface{})
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagAnswers    string
)

func init() {
	pflag.IntVar(&flagCurDay, "day", -1, "day to run")
	pflag.BoolVar(&flagOnlySample, "sample", false, "only run samples")
	pflag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample verification")
	pflag.BoolVar(&flagDebug, "debug", false, "debug mode")
	pflag.StringVar(&flagPart, "part", "", "part to run")
	pflag.StringVar(&flagAnswers, "answers", "answers.yaml", "recorded answers to check against; empty disables checking")
}

var initFlags = sync.OnceFunc(pflag.Parse)

// runDay runs the selected parts of one day and reports whether any of
// them failed. Each part runs against its sample first; a wrong sample
// answer fails the part without touching the real input. Real answers go
// to stdout as "Part N: ...", everything else goes to stderr.
func runDay(slvr any, year int, d day, samples map[string]sample, answers answerFile) (failed bool) {
	p := Puzzle{
		year:    year,
		day:     d,
		samples: samples,
	}
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range d.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		if !flagSkipSample {
			p.SampleMode = true
			t0 := time.Now()
			got := ps.fn()
			if err, ok := got.(error); ok {
				fmt.Fprintf(os.Stderr, "day %d part %s sample: %v\n", d.day, ps.Part, err)
				failed = true
				continue
			}
			if want := p.Sample().want; fmt.Sprint(got) != want {
				fmt.Fprintf(os.Stderr, "day %d part %s sample: %v ❌; want %v\n", d.day, ps.Part, got, want)
				failed = true
				continue
			}
			if flagOnlySample {
				fmt.Printf("part %s sample: %v ✅ (%v)\n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
		if flagOnlySample {
			continue
		}

		p.SampleMode = false
		t0 := time.Now()
		got := ps.fn()
		if err, ok := got.(error); ok {
			fmt.Fprintf(os.Stderr, "day %d part %s: %v\n", d.day, ps.Part, err)
			failed = true
			continue
		}
		fmt.Printf("Part %s: %v\n", ps.Part, got)
		if flagDebug {
			fmt.Fprintf(os.Stderr, "day %d part %s took %v\n", d.day, ps.Part, time.Since(t0).Round(time.Microsecond))
		}
		if want := answers.lookup(d.day, ps.Part); want != "" && fmt.Sprint(got) != want {
			fmt.Fprintf(os.Stderr, "day %d part %s: %v ❌; recorded answer is %v\n", d.day, ps.Part, got, want)
			failed = true
		}
	}
	return failed
}

// Run runs the D{day}p{part} methods of slvr, selected by the --day and
// --part flags; with no --day it runs every day in order. src is the
// source of the file declaring those methods, from which the samples in
// their doc comments are extracted. Run exits non-zero if any part fails
// its sample or disagrees with a recorded answer.
func Run(year int, src []byte, slvr any) {
	samples := extractSamples(src)
	days := extractMethods(slvr)
	initFlags()
	answers := loadAnswersOrDie(flagAnswers)

	failed := false
	if flagCurDay != -1 {
		d, ok := days[flagCurDay]
		if !ok {
			log.Fatalf("no day %d", flagCurDay)
		}
		failed = runDay(slvr, year, d, samples, answers)
	} else {
		dayNums := maps.Keys(days)
		slices.Sort(dayNums)
		for _, dayNum := range dayNums {
			fmt.Println("Running day", dayNum)
			if runDay(slvr, year, days[dayNum], samples, answers) {
				failed = true
			}
			fmt.Println()
		}
	}
	if failed {
		os.Exit(1)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func Parallel[I, O any](in []I, f func(I) O) []O {
	var wg sync.WaitGroup
	wg.Add(len(in))
	out := make([]O, len(in))
	for i, v := range in {
		go func(i int, v I) {
			defer wg.Done()
			out[i] = f(v)
		}(i, v)
	}
	wg.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}
