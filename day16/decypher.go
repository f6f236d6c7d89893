package day16

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aoc2020"
)

// ErrorRate returns the ticket scanning error rate: the sum of every
// value on a nearby ticket that satisfies none of the rules.
func (n *Notes) ErrorRate() int {
	var bad []int
	for _, t := range n.Nearby {
		for _, v := range t {
			if !n.anyRuleMatches(v) {
				bad = append(bad, v)
			}
		}
	}
	return aoc.Sum(bad...)
}

func (n *Notes) anyRuleMatches(v int) bool {
	for _, r := range n.Rules {
		if r.Match(v) {
			return true
		}
	}
	return false
}

// validNearby returns the nearby tickets that could be real: a single
// value matching no rule discards the whole ticket.
func (n *Notes) validNearby() []Ticket {
	var valid []Ticket
	for _, t := range n.Nearby {
		if !slices.ContainsFunc(t, func(v int) bool { return !n.anyRuleMatches(v) }) {
			valid = append(valid, t)
		}
	}
	return valid
}

// candidates returns, for each ticket column, the set of field names
// whose rule accepts every observed value in that column.
func (n *Notes) candidates(valid []Ticket) ([]map[string]bool, error) {
	rows := make(aoc.Grid[int], 0, len(valid))
	for _, t := range valid {
		rows = append(rows, t)
	}
	cols := rows.Transpose()

	cands := make([]map[string]bool, len(cols))
	for i, col := range cols {
		names := make(map[string]bool)
		for _, r := range n.Rules {
			if matchesAll(r, col) {
				names[r.Name] = true
			}
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("%w: no field fits column %d", ErrUnresolvable, i)
		}
		cands[i] = names
	}
	return cands, nil
}

func matchesAll(r Rule, values []int) bool {
	for _, v := range values {
		if !r.Match(v) {
			return false
		}
	}
	return true
}

// Decypher works out which field each ticket column holds and returns
// your ticket as a field name to value map.
//
// Candidate fields are computed per column from the valid nearby
// tickets. A column with a single candidate pins that field; the field
// is then struck from every other column, which may pin more columns.
// Real inputs always resolve this way. If elimination stalls with
// ambiguous columns left, or strikes a column's last candidate,
// Decypher returns ErrUnresolvable rather than guess.
func (n *Notes) Decypher() (map[string]int, error) {
	valid := n.validNearby()
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: no valid nearby tickets", ErrUnresolvable)
	}
	cands, err := n.candidates(valid)
	if err != nil {
		return nil, err
	}

	var ready aoc.Queue[int]
	for col, names := range cands {
		if len(names) == 1 {
			ready.Push(col)
		}
	}

	fields := make(map[string]int, len(cands))
	assigned := make([]bool, len(cands))
	done := 0
	ready.While(func(col int) bool {
		var name string
		for f := range cands[col] {
			name = f
		}
		fields[name] = n.Yours[col]
		assigned[col] = true
		done++
		for other, names := range cands {
			if assigned[other] || !names[name] {
				continue
			}
			delete(names, name)
			switch len(names) {
			case 1:
				ready.Push(other)
			case 0:
				err = fmt.Errorf("%w: no field left for column %d", ErrUnresolvable, other)
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if done != len(cands) {
		return nil, fmt.Errorf("%w: pinned %d of %d columns and stalled", ErrUnresolvable, done, len(cands))
	}
	return fields, nil
}

// DepartureProduct multiplies the values of the fields whose name starts
// with "departure". The product of no such fields is 1.
func DepartureProduct(fields map[string]int) int {
	var departures []int
	for name, v := range fields {
		if strings.HasPrefix(name, "departure") {
			departures = append(departures, v)
		}
	}
	return aoc.Fold(departures, func(product, v int) int { return product * v }, 1)
}
