package solvetime

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel packed values.
const (
	DNFValue     int64 = -1
	DNSValue     int64 = -2
	SkippedValue int64 = 0
)

// Range limits for structured fields.
const (
	MaxCentiseconds int64 = 99_999 * 100
	maxCount              = 100

	unknownSeconds int64 = 99_999
)

// Well-known sentinel results, represented against a timed event.
var (
	DNF     = New(cube3, Single, DNFValue)
	DNS     = New(cube3, Single, DNSValue)
	Skipped = New(cube3, Single, SkippedValue)
)

// SolveTime is a single result value together with the fields decoded from
// it. The zero value is not usable; build one with New or a From*
// constructor.
type SolveTime struct {
	kind  kind
	field Field
	value int64

	moves     decimal.Decimal
	centis    int64
	hasCentis bool
	solved    int
	attempted int
}

// New decodes a packed value for the given event and field.
func New(ev Event, field Field, value int64) SolveTime {
	s := SolveTime{kind: classify(ev), field: field}
	s.decode(value)
	return s
}

// FromCentiseconds builds a timed result from a duration. It panics if cs is
// out of range or the event is not timed.
func FromCentiseconds(ev Event, field Field, cs int64) SolveTime {
	checkCentiseconds(cs)
	s := SolveTime{kind: classify(ev), field: field, centis: cs, hasCentis: true}
	if s.kind.shape != Timed {
		panic(fmt.Sprintf("solvetime: %s event %q built from a duration", s.kind.shape, s.kind.id))
	}
	s.encode()
	return s
}

// FromMoveCount builds a fewest moves result. raw is in stored units: a move
// count for singles, the mean multiplied by 100 for averages. It panics if
// the event is not fewest moves.
func FromMoveCount(ev Event, field Field, raw int64) SolveTime {
	s := SolveTime{kind: classify(ev), field: field}
	if s.kind.shape != FewestMoves {
		panic(fmt.Sprintf("solvetime: %s event %q built from a move count", s.kind.shape, s.kind.id))
	}
	s.setMoves(raw)
	s.encode()
	return s
}

// FromMultiBlind builds a multi-blindfolded result. A negative cs means the
// time is unknown. It panics on out of range input, on an event that is not
// multi-blindfolded, or when the event has no known multi-blindfolded format.
func FromMultiBlind(ev Event, solved, attempted int, cs int64) SolveTime {
	checkCount("solved", solved)
	checkCount("attempted", attempted)
	s := SolveTime{kind: classify(ev), field: Single, solved: solved, attempted: attempted}
	if s.kind.shape != MultiBlindfolded {
		panic(fmt.Sprintf("solvetime: %s event %q built from cube counts", s.kind.shape, s.kind.id))
	}
	if cs >= 0 {
		checkCentiseconds(cs)
		s.centis, s.hasCentis = cs, true
	}
	s.encode()
	return s
}

// WithValue returns a copy holding value, fully re-decoded.
func (s SolveTime) WithValue(value int64) SolveTime {
	s.decode(value)
	return s
}

// WithCentiseconds returns a copy with the duration replaced and the packed
// value recomputed.
func (s SolveTime) WithCentiseconds(cs int64) SolveTime {
	s.mustBeMutable("centiseconds")
	if s.kind.shape == FewestMoves {
		panic(fmt.Sprintf("solvetime: centiseconds set on fewest moves event %q", s.kind.id))
	}
	checkCentiseconds(cs)
	s.centis, s.hasCentis = cs, true
	s.encode()
	return s
}

// WithSolved returns a copy with the solved count replaced.
func (s SolveTime) WithSolved(solved int) SolveTime {
	s.mustBeMutable("solved")
	s.mustBeMulti("solved")
	checkCount("solved", solved)
	s.solved = solved
	s.encode()
	return s
}

// WithAttempted returns a copy with the attempted count replaced.
func (s SolveTime) WithAttempted(attempted int) SolveTime {
	s.mustBeMutable("attempted")
	s.mustBeMulti("attempted")
	checkCount("attempted", attempted)
	s.attempted = attempted
	s.encode()
	return s
}

// WithMoveCount returns a copy with the move count replaced. raw is in
// stored units, see FromMoveCount.
func (s SolveTime) WithMoveCount(raw int64) SolveTime {
	s.mustBeMutable("move count")
	if s.kind.shape != FewestMoves {
		panic(fmt.Sprintf("solvetime: move count set on %s event %q", s.kind.shape, s.kind.id))
	}
	s.setMoves(raw)
	s.encode()
	return s
}

func (s *SolveTime) setMoves(raw int64) {
	if raw < 1 {
		panic(fmt.Sprintf("solvetime: move count %d out of range", raw))
	}
	s.moves = moveCount(s.field, raw)
}

// Structured fields of sentinel results have no meaning.
func (s SolveTime) mustBeMutable(what string) {
	if s.value <= SkippedValue {
		panic(fmt.Sprintf("solvetime: cannot set %s on %s result", what, s.statusName()))
	}
}

func (s SolveTime) mustBeMulti(what string) {
	if s.kind.shape != MultiBlindfolded {
		panic(fmt.Sprintf("solvetime: %s set on %s event %q", what, s.kind.shape, s.kind.id))
	}
}

func checkCentiseconds(cs int64) {
	if cs < 0 || cs > MaxCentiseconds {
		panic(fmt.Sprintf("solvetime: time out of range: %d", cs))
	}
}

func checkCount(name string, n int) {
	if n < 0 || n >= maxCount {
		panic(fmt.Sprintf("solvetime: %s out of range: %d", name, n))
	}
}

// Value returns the packed value.
func (s SolveTime) Value() int64 { return s.value }

// EventID returns the identifier of the event the value was built for.
func (s SolveTime) EventID() string { return s.kind.id }

func (s SolveTime) Shape() Shape { return s.kind.shape }

func (s SolveTime) Field() Field { return s.field }

// MultiFormat returns the multi-blindfolded format of the event, or
// MultiFormatUnknown for other shapes.
func (s SolveTime) MultiFormat() MultiFormat { return s.kind.format }

// Centiseconds returns the duration and whether it is known. Fewest moves
// results never have one.
func (s SolveTime) Centiseconds() (int64, bool) { return s.centis, s.hasCentis }

// MoveCount returns the move count. Averages carry two decimal places.
func (s SolveTime) MoveCount() decimal.Decimal { return s.moves }

func (s SolveTime) Solved() int { return s.solved }

func (s SolveTime) Attempted() int { return s.attempted }

// Missed is the number of cubes attempted but not solved.
func (s SolveTime) Missed() int { return s.attempted - s.solved }

// Points is solved minus missed.
func (s SolveTime) Points() int { return s.solved - s.Missed() }

// TimeSeconds returns the duration in seconds, zero when unknown.
func (s SolveTime) TimeSeconds() float64 { return float64(s.centis) / 100.0 }

func (s SolveTime) TimeMinutes() float64 { return s.TimeSeconds() / 60.0 }

func (s SolveTime) IsDNF() bool { return s.value == DNFValue }

func (s SolveTime) IsDNS() bool { return s.value == DNSValue }

func (s SolveTime) IsSkipped() bool { return s.value == SkippedValue }

// IsDN reports DNF or DNS.
func (s SolveTime) IsDN() bool { return s.IsDNF() || s.IsDNS() }

// IsComplete reports a result that is neither DNF, DNS nor skipped.
func (s SolveTime) IsComplete() bool { return !s.IsDN() && !s.IsSkipped() }

func (s SolveTime) IsIncomplete() bool { return !s.IsComplete() }

func (s SolveTime) statusName() string {
	switch {
	case s.IsDNF():
		return "DNF"
	case s.IsDNS():
		return "DNS"
	case s.IsSkipped():
		return "skipped"
	default:
		return "invalid"
	}
}

func (s SolveTime) String() string { return s.ClockFormat() }

// MultiBlindPoints decodes value as a 333mbf single and returns its points.
func MultiBlindPoints(value int64) int {
	return New(cube3Multi, Single, value).Points()
}
