// Command aoc2020 runs my Advent of Code 2020 solutions. Each part is a
// D{day}p{part} method whose doc comment carries the sample input and
// expected answer; the runner checks the sample before touching the
// real input.
package main

import (
	_ "embed"

	aoc "github.com/maisem/aoc2020"
	"github.com/maisem/aoc2020/day01"
	"github.com/maisem/aoc2020/day16"
)

func main() {
	aoc.Run(2020, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=514579

1721
979
366
299
675
1456
*/
func (s solver) D1p1() any {
	v, err := day01.PairProduct(s.entries(), 2020)
	if err != nil {
		return err
	}
	return v
}

// want=241861950
func (s solver) D1p2() any {
	v, err := day01.TripleProduct(s.entries(), 2020)
	if err != nil {
		return err
	}
	return v
}

func (s solver) entries() []int {
	var entries []int
	s.ForLines(func(line string) {
		entries = append(entries, aoc.Int(line))
	})
	return entries
}

/*
want=71

class: 1-3 or 5-7
row: 6-11 or 33-44
seat: 13-40 or 45-50

your ticket:
7,1,14

nearby tickets:
7,3,47
40,4,50
55,2,20
38,6,12
*/
func (s solver) D16p1() any {
	notes, err := day16.Parse(string(s.Input()))
	if err != nil {
		return err
	}
	return notes.ErrorRate()
}

/*
want=1

class: 0-1 or 4-19
row: 0-5 or 8-19
seat: 0-13 or 16-19

your ticket:
11,12,13

nearby tickets:
3,9,18
15,1,5
5,14,9
*/
func (s solver) D16p2() any {
	notes, err := day16.Parse(string(s.Input()))
	if err != nil {
		return err
	}
	fields, err := notes.Decypher()
	if err != nil {
		return err
	}
	s.Debugf("decyphered ticket: %v", fields)
	return day16.DepartureProduct(fields)
}
