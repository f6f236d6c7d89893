// Package day16 solves the ticket translation puzzle. The input is a
// set of field rules, your own ticket, and a pile of nearby tickets
// scanned off strangers: part 1 sums the values that cannot belong to
// any field, part 2 works out which field lives in which ticket column.
package day16

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrBadInput reports input that does not have the expected
	// rules / your ticket / nearby tickets shape.
	ErrBadInput = errors.New("day16: bad input")

	// ErrUnresolvable reports that elimination cannot assign a unique
	// field to every ticket column.
	ErrUnresolvable = errors.New("day16: cannot resolve fields")
)

// Range is an inclusive run of integers.
type Range struct {
	Lo, Hi int
}

// Contains reports whether v falls within the range, endpoints included.
func (r Range) Contains(v int) bool { return v >= r.Lo && v <= r.Hi }

// Rule names a ticket field and the two value ranges it accepts. The
// ranges may overlap.
type Rule struct {
	Name string
	A, B Range
}

// Match reports whether v is acceptable for this field.
func (r Rule) Match(v int) bool { return r.A.Contains(v) || r.B.Contains(v) }

// Ticket is the ordered list of values printed on one ticket.
type Ticket []int

// Notes is a parsed puzzle input. Every ticket, yours included, has
// exactly one value per rule.
type Notes struct {
	Rules  []Rule
	Yours  Ticket
	Nearby []Ticket
}

// Rule lines look like "departure time: 46-147 or 153-958". Field names
// may contain spaces.
var ruleRx = regexp.MustCompile(`^([\w ]+): (\d+)-(\d+) or (\d+)-(\d+)$`)

// Parse parses the three blank-line-separated sections of the puzzle
// input: field rules, your ticket, nearby tickets.
func Parse(text string) (*Notes, error) {
	sections := strings.Split(strings.TrimSpace(text), "\n\n")
	if len(sections) != 3 {
		return nil, fmt.Errorf("%w: %d sections, want rules, your ticket, nearby tickets", ErrBadInput, len(sections))
	}

	var n Notes
	for _, line := range strings.Split(sections[0], "\n") {
		rule, err := parseRule(line)
		if err != nil {
			return nil, err
		}
		n.Rules = append(n.Rules, rule)
	}

	yours, err := parseTickets(sections[1], "your ticket:")
	if err != nil {
		return nil, err
	}
	if len(yours) != 1 {
		return nil, fmt.Errorf("%w: your ticket section has %d tickets, want 1", ErrBadInput, len(yours))
	}
	n.Yours = yours[0]

	n.Nearby, err = parseTickets(sections[2], "nearby tickets:")
	if err != nil {
		return nil, err
	}

	// Field deduction matches columns against rules; a ticket of the
	// wrong width would misalign every column after it.
	for _, t := range append([]Ticket{n.Yours}, n.Nearby...) {
		if len(t) != len(n.Rules) {
			return nil, fmt.Errorf("%w: ticket %v has %d values, want %d", ErrBadInput, t, len(t), len(n.Rules))
		}
	}
	return &n, nil
}

func parseRule(line string) (Rule, error) {
	line = strings.TrimSpace(line)
	m := ruleRx.FindStringSubmatch(line)
	if m == nil {
		return Rule{}, fmt.Errorf("%w: rule %q", ErrBadInput, line)
	}
	v, err := atois(m[2:])
	if err != nil {
		return Rule{}, fmt.Errorf("%w: rule %q: %v", ErrBadInput, line, err)
	}
	return Rule{
		Name: m[1],
		A:    Range{Lo: v[0], Hi: v[1]},
		B:    Range{Lo: v[2], Hi: v[3]},
	}, nil
}

// parseTickets parses a ticket section: a header line followed by one
// comma-separated ticket per line.
func parseTickets(section, header string) ([]Ticket, error) {
	lines := strings.Split(strings.TrimSpace(section), "\n")
	if strings.TrimSpace(lines[0]) != header {
		return nil, fmt.Errorf("%w: section starts with %q, want %q", ErrBadInput, lines[0], header)
	}
	var tickets []Ticket
	for _, line := range lines[1:] {
		vals, err := atois(strings.Split(strings.TrimSpace(line), ","))
		if err != nil {
			return nil, fmt.Errorf("%w: ticket %q: %v", ErrBadInput, line, err)
		}
		tickets = append(tickets, vals)
	}
	return tickets, nil
}

func atois(s []string) ([]int, error) {
	out := make([]int, len(s))
	for i, v := range s {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
