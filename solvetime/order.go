package solvetime

import (
	"cmp"
	"slices"
)

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Compare orders results for ranking: complete results by packed value,
// then DNF, then DNS, then skipped attempts. It returns -1, 0 or +1.
func (s SolveTime) Compare(other SolveTime) int {
	if c := cmp.Compare(flag(s.IsSkipped()), flag(other.IsSkipped())); c != 0 {
		return c
	}
	if c := cmp.Compare(flag(s.IsDNS()), flag(other.IsDNS())); c != 0 {
		return c
	}
	if c := cmp.Compare(flag(s.IsDNF()), flag(other.IsDNF())); c != 0 {
		return c
	}
	return cmp.Compare(s.value, other.value)
}

// Less reports whether s ranks before other.
func (s SolveTime) Less(other SolveTime) bool { return s.Compare(other) < 0 }

// Sort orders values in place, best first. Equal values keep their order.
func Sort(values []SolveTime) {
	slices.SortStableFunc(values, SolveTime.Compare)
}
