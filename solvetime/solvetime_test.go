package solvetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cube2       = staticEvent{id: "222", shape: Timed}
	fewestMoves = staticEvent{id: "333fm", shape: FewestMoves}
	multiOld    = staticEvent{id: "333mbo", shape: MultiBlindfolded}
	multiOther  = staticEvent{id: "444mbx", shape: MultiBlindfolded}
)

func TestSentinels(t *testing.T) {
	assert.True(t, DNF.IsDNF())
	assert.True(t, DNS.IsDNS())
	assert.True(t, Skipped.IsSkipped())

	for _, s := range []SolveTime{DNF, DNS, Skipped} {
		assert.Equal(t, Timed, s.Shape())
		assert.Equal(t, "333", s.EventID())
		assert.True(t, s.IsIncomplete())
		_, ok := s.Centiseconds()
		assert.False(t, ok)
	}
	assert.True(t, DNF.IsDN())
	assert.True(t, DNS.IsDN())
	assert.False(t, Skipped.IsDN())
}

func TestNewTimed(t *testing.T) {
	s := New(cube3, Single, 1234)

	cs, ok := s.Centiseconds()
	require.True(t, ok)
	assert.Equal(t, int64(1234), cs)
	assert.True(t, s.IsComplete())
	assert.InDelta(t, 12.34, s.TimeSeconds(), 1e-9)
}

func TestTimedFixedPoint(t *testing.T) {
	for _, v := range []int64{1, 99, 100, 6000, 59_999, 360_000, MaxCentiseconds} {
		first := New(cube3, Single, v)
		cs, ok := first.Centiseconds()
		require.True(t, ok)

		second := first.WithCentiseconds(cs)
		assert.Equal(t, first, second, "value %d", v)
	}
}

func TestWithCentiseconds(t *testing.T) {
	s := New(cube2, Average, 500).WithCentiseconds(750)
	assert.Equal(t, int64(750), s.Value())
	assert.Equal(t, Average, s.Field())

	original := New(cube2, Single, 500)
	_ = original.WithCentiseconds(900)
	assert.Equal(t, int64(500), original.Value(), "transitions must not mutate the receiver")
}

func TestWithValueRedecodes(t *testing.T) {
	s := New(cube3Multi, Single, 950120001).WithValue(DNFValue)
	assert.True(t, s.IsDNF())
	assert.Zero(t, s.Solved())
	assert.Zero(t, s.Attempted())
	_, ok := s.Centiseconds()
	assert.False(t, ok)
}

func TestSettersPanicOnOutOfRange(t *testing.T) {
	timed := New(cube3, Single, 1000)
	multi := New(cube3Multi, Single, 950120001)

	tests := []struct {
		name string
		fn   func()
	}{
		{"negative time", func() { timed.WithCentiseconds(-1) }},
		{"time above limit", func() { timed.WithCentiseconds(MaxCentiseconds + 1) }},
		{"solved too large", func() { multi.WithSolved(100) }},
		{"solved negative", func() { multi.WithSolved(-1) }},
		{"attempted too large", func() { multi.WithAttempted(100) }},
		{"solved on timed", func() { timed.WithSolved(2) }},
		{"moves on timed", func() { timed.WithMoveCount(30) }},
		{"time on fewest moves", func() { New(fewestMoves, Single, 30).WithCentiseconds(100) }},
		{"time on DNF", func() { DNF.WithCentiseconds(100) }},
		{"solved on DNS", func() { New(cube3Multi, Single, DNSValue).WithSolved(1) }},
		{"time on skipped", func() { Skipped.WithCentiseconds(100) }},
		{"unknown multi format", func() { FromMultiBlind(multiOther, 2, 2, 6000) }},
		{"duration for fewest moves", func() { FromCentiseconds(fewestMoves, Single, 100) }},
		{"move count for timed", func() { FromMoveCount(cube3, Single, 50) }},
		{"move count for multi", func() { FromMoveCount(cube3Multi, Single, 50) }},
		{"cube counts for timed", func() { FromMultiBlind(cube3, 2, 3, 6000) }},
		{"cube counts for fewest moves", func() { FromMultiBlind(fewestMoves, 2, 3, 6000) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, tc.fn)
		})
	}
}

func TestSettersAcceptBoundaries(t *testing.T) {
	timed := New(cube3, Single, 1000)
	assert.NotPanics(t, func() { timed.WithCentiseconds(0) })
	assert.NotPanics(t, func() { timed.WithCentiseconds(MaxCentiseconds) })

	multi := New(cube3Multi, Single, 950120001)
	assert.NotPanics(t, func() { multi.WithAttempted(99) })
	assert.NotPanics(t, func() { multi.WithSolved(0) })
}

func TestUnknownMultiFormatStillDecodes(t *testing.T) {
	s := New(multiOther, Single, 950120001)
	assert.Equal(t, MultiFormatUnknown, s.MultiFormat())
	assert.Equal(t, 5, s.Solved())
	assert.Equal(t, "5/6 20:00", s.ClockFormat())
}

func TestMultiBlindPoints(t *testing.T) {
	assert.Equal(t, 4, MultiBlindPoints(950120001))
	assert.Equal(t, 2, MultiBlindPoints(970360000))
}

func TestParseField(t *testing.T) {
	assert.Equal(t, Single, ParseField("single"))
	assert.Equal(t, Single, ParseField("best"))
	assert.Equal(t, Average, ParseField(" Average "))
	assert.Equal(t, Other, ParseField("value3"))
}

func TestClassifyPanicsOnUnknownShape(t *testing.T) {
	assert.Panics(t, func() { New(staticEvent{id: "magic", shape: Shape(42)}, Single, 1) })
	assert.Panics(t, func() { New(nil, Single, 1) })
}
