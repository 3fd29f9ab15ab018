package solvetime

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	clockLayout     = "%d:%02d:%02d.%02d"
	unknownDuration = "?:??:??"
)

// CentisecondsToClock renders cs as H:MM:SS.cc with leading zero groups
// removed, e.g. 6000 -> "1:00.00" and 60 -> "0.60".
func CentisecondsToClock(cs int64) string {
	hours := cs / 360_000
	minutes := (cs % 360_000) / 6000
	seconds := (cs % 6000) / 100
	centis := cs % 100

	clock := strings.TrimLeft(fmt.Sprintf(clockLayout, hours, minutes, seconds, centis), "0:")
	if strings.HasPrefix(clock, ".") {
		clock = "0" + clock
	}
	return clock
}

// ClockFormat renders the value for display: "DNF", "DNS", an empty string
// for skipped attempts, otherwise a shape specific rendering.
func (s SolveTime) ClockFormat() string {
	switch {
	case s.IsDNS():
		return "DNS"
	case s.IsDNF():
		return "DNF"
	case s.IsSkipped():
		return ""
	}

	switch s.kind.shape {
	case FewestMoves:
		if s.field == Average {
			return s.moves.StringFixed(2)
		}
		return s.moves.StringFixed(0)
	case MultiBlindfolded:
		return fmt.Sprintf("%d/%d %s", s.solved, s.attempted, s.multiDuration())
	default:
		return CentisecondsToClock(s.centis)
	}
}

// multiDuration renders whole seconds as M:SS or H:MM:SS, always with a
// minutes group ("2/2 0:45" rather than "2/2 45").
func (s SolveTime) multiDuration() string {
	if !s.hasCentis {
		return unknownDuration
	}

	seconds := s.centis / 100
	if seconds < 60 {
		return "0:" + strconv.FormatInt(seconds, 10)
	}

	var out string
	for seconds >= 60 {
		out = fmt.Sprintf(":%02d%s", seconds%60, out)
		seconds /= 60
	}
	return strconv.FormatInt(seconds, 10) + out
}

// Units is the suffix shown after ClockFormat: " seconds" for complete timed
// results under a minute, empty otherwise.
func (s SolveTime) Units() string {
	if s.IsIncomplete() {
		return ""
	}
	if s.kind.shape == Timed && s.TimeMinutes() < 1 {
		return " seconds"
	}
	return ""
}

// ClockFormatWithUnits is ClockFormat followed by Units.
func (s SolveTime) ClockFormatWithUnits() string {
	return s.ClockFormat() + s.Units()
}
