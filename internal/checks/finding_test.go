package checks

import "testing"

func TestJoinSorted(t *testing.T) {
	names := []string{"rate limiting", "helmet", "cors"}

	got := joinSorted(names)
	if got != "cors, helmet, rate limiting" {
		t.Errorf("joinSorted() = %q, want sorted order", got)
	}

	// Input slice stays as the caller built it.
	if names[0] != "rate limiting" {
		t.Errorf("input slice reordered: %v", names)
	}
}

func TestJoinSortedEmpty(t *testing.T) {
	if got := joinSorted(nil); got != "" {
		t.Errorf("joinSorted(nil) = %q, want empty", got)
	}
}
