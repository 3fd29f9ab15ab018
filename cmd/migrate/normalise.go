package main

import (
	"github.com/padraicbc/wcaresults/models"
	"github.com/padraicbc/wcaresults/solvetime"
)

// normaliseResult re-encodes every multi-blindfolded value of r in the
// packing of its event's format and returns how many values changed. Other
// events are left untouched.
func normaliseResult(r *models.Result, ev *models.Event) int {
	if !ev.IsMultipleBlindfolded() {
		return 0
	}

	changed := 0
	for _, p := range []*int64{&r.Best, &r.Value1, &r.Value2, &r.Value3, &r.Value4, &r.Value5} {
		v, ok := normaliseValue(ev, *p)
		if ok && v != *p {
			*p = v
			changed++
		}
	}
	return changed
}

func normaliseValue(ev *models.Event, value int64) (int64, bool) {
	s := solvetime.New(ev, solvetime.Single, value)
	if s.IsIncomplete() || s.MultiFormat() == solvetime.MultiFormatUnknown {
		return value, false
	}
	if s.Solved() < 0 || s.Solved() >= 100 || s.Attempted() < 0 || s.Attempted() >= 100 ||
		s.Solved() > s.Attempted() {
		return value, false
	}
	return s.WithSolved(s.Solved()).Value(), true
}
