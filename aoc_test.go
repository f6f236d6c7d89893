package aoc

import (
	"errors"
	"strconv"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=71`,
			want: sample{
				want: "71",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample("foo", tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

func TestExtractSamples(t *testing.T) {
	src := `package main

/*
want=3

1
2
*/
func (s solver) D1p1() any { return nil }

// want=5
func (s solver) D1p2() any { return nil }

// helper is not a solver and has no sample.
func (s solver) helper() {}
`
	samples := extractSamples([]byte(src))
	if len(samples) != 2 {
		t.Fatalf("extracted %d samples, want 2: %v", len(samples), samples)
	}
	if got, want := samples["D1p1"], (sample{want: "3", input: "1\n2\n"}); got != want {
		t.Errorf("D1p1 sample = %#v, want %#v", got, want)
	}
	// A want-only comment inherits the previous sample's input.
	if got, want := samples["D1p2"], (sample{want: "5", input: "1\n2\n"}); got != want {
		t.Errorf("D1p2 sample = %#v, want %#v", got, want)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "a", "b"); got != "a" {
		t.Errorf(`Or("", "a", "b") = %q, want "a"`, got)
	}
	if got := Or(0, 7); got != 7 {
		t.Errorf("Or(0, 7) = %v, want 7", got)
	}
	if got := Or("", ""); got != "" {
		t.Errorf(`Or("", "") = %q, want ""`, got)
	}
}

func TestMustGet(t *testing.T) {
	if got := MustGet(strconv.Atoi("42")); got != 42 {
		t.Errorf("MustGet = %v, want 42", got)
	}
}

func TestMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGet did not panic")
		}
	}()
	MustGet(0, errors.New("boom"))
}

func TestMustDoPanics(t *testing.T) {
	MustDo(nil)
	defer func() {
		if recover() == nil {
			t.Error("MustDo did not panic")
		}
	}()
	MustDo(errors.New("boom"))
}

func TestFold(t *testing.T) {
	in := []int{1, 2, 3, 4}
	if got := Fold(in, func(acc, v int) int { return acc + v }, 0); got != 10 {
		t.Errorf("sum fold = %v, want 10", got)
	}
	if got := Fold(in, func(acc, v int) int { return acc * v }, 1); got != 24 {
		t.Errorf("product fold = %v, want 24", got)
	}
	if got := Fold(nil, func(acc, v int) int { return acc * v }, 1); got != 1 {
		t.Errorf("empty fold = %v, want the default", got)
	}
}

func TestParallel(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	got := Parallel(in, func(v int) int { return v * v })
	want := []int{1, 4, 9, 16, 25}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Parallel = %v, want %v", got, want)
		}
	}
}
