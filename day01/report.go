// Package day01 fixes the expense report: find the entries that sum to
// 2020 and multiply them together.
package day01

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoSolution reports that no combination of entries sums to the
// target.
var ErrNoSolution = errors.New("day01: no solution")

// PairProduct returns the product of two entries that sum to target.
func PairProduct(entries []int, target int) (int, error) {
	seen := make(map[int]bool, len(entries))
	for _, v := range entries {
		if seen[target-v] {
			return v * (target - v), nil
		}
		seen[v] = true
	}
	return 0, fmt.Errorf("%w: no two entries sum to %d", ErrNoSolution, target)
}

// TripleProduct returns the product of three entries that sum to target.
func TripleProduct(entries []int, target int) (int, error) {
	sorted := slices.Clone(entries)
	slices.Sort(sorted)
	for i, v := range sorted {
		lo, hi := i+1, len(sorted)-1
		for lo < hi {
			switch sum := v + sorted[lo] + sorted[hi]; {
			case sum == target:
				return v * sorted[lo] * sorted[hi], nil
			case sum < target:
				lo++
			default:
				hi--
			}
		}
	}
	return 0, fmt.Errorf("%w: no three entries sum to %d", ErrNoSolution, target)
}
