package aoc

import "testing"

func TestQueue(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	if got := q.Len(); got != 3 {
		t.Fatalf("Len = %v, want 3", got)
	}
	for _, want := range []int{1, 2, 3} {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("Pop = %v, %v; want %v, true", got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop on an empty queue reported ok")
	}
}

func TestQueueWhile(t *testing.T) {
	q := NewQueue(1, 2, 3)
	var seen []int
	q.While(func(v int) bool {
		seen = append(seen, v)
		if v == 1 {
			q.Push(4) // pushing while draining is allowed
		}
		return v != 2
	})
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("seen = %v, want [1 2]", seen)
	}
	if got := q.Len(); got != 2 {
		t.Errorf("Len after early stop = %v, want 2", got)
	}
}
