package solvetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentisecondsToClock(t *testing.T) {
	tests := []struct {
		cs   int64
		want string
	}{
		{0, "0.00"},
		{7, "0.07"},
		{60, "0.60"},
		{100, "1.00"},
		{1234, "12.34"},
		{6000, "1:00.00"},
		{6543, "1:05.43"},
		{60100, "10:01.00"},
		{360000, "1:00:00.00"},
		{366101, "1:01:01.01"},
		{MaxCentiseconds, "27:46:39.00"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, CentisecondsToClock(tc.cs))
		})
	}
}

func TestClockFormat(t *testing.T) {
	tests := []struct {
		name  string
		value SolveTime
		clock string
		units string
	}{
		{"DNF", DNF, "DNF", ""},
		{"DNS", DNS, "DNS", ""},
		{"skipped", Skipped, "", ""},
		{"multi DNF", New(cube3Multi, Single, DNFValue), "DNF", ""},
		{"timed under a minute", New(cube3, Single, 1234), "12.34", " seconds"},
		{"timed one minute", New(cube3, Single, 6000), "1:00.00", ""},
		{"fewest moves single", New(fewestMoves, Single, 28), "28", ""},
		{"fewest moves mean", New(fewestMoves, Average, 3367), "33.67", ""},
		{"fewest moves round mean", New(fewestMoves, Average, 3000), "30.00", ""},
		{"multi under a minute", FromMultiBlind(cube3Multi, 2, 2, 4500), "2/2 0:45", ""},
		{"multi short", FromMultiBlind(cube3Multi, 2, 2, 500), "2/2 0:5", ""},
		{"multi minutes", New(cube3Multi, Single, 950120001), "5/6 20:00", ""},
		{"multi hour", New(cube3Multi, Single, 970360000), "2/2 1:00:00", ""},
		{"multi odd time", FromMultiBlind(cube3Multi, 9, 10, 225900), "9/10 37:39", ""},
		{"multi unknown time", New(cube3Multi, Single, 979999901), "3/4 ?:??:??", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.clock, tc.value.ClockFormat())
			assert.Equal(t, tc.units, tc.value.Units())
			assert.Equal(t, tc.clock+tc.units, tc.value.ClockFormatWithUnits())
		})
	}
}

func TestStringer(t *testing.T) {
	assert.Equal(t, "1:05.43", New(cube3, Single, 6543).String())
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", SkippedValue},
		{"dnf", DNFValue},
		{"DNS", DNSValue},
		{"0.60", 60},
		{"12.34", 1234},
		{"12.3", 1230},
		{"59", 5900},
		{"1:05.43", 6543},
		{"1:05", 6500},
		{"1:00:00.00", 360000},
		{" 10:01.50 ", 60150},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseClock(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseClockRoundTrip(t *testing.T) {
	for _, cs := range []int64{1, 60, 6543, 360000, 366101, MaxCentiseconds} {
		got, err := ParseClock(CentisecondsToClock(cs))
		require.NoError(t, err)
		assert.Equal(t, cs, got)
	}
}

func TestParseClockRejects(t *testing.T) {
	for _, in := range []string{"abc", "1:60.00", "1.234", "1.", ".5", "1:2:3:4", "-5", "28:00:00.00", "1:x",
		"100000", "4611686018427387908", "76861433640456465:0", "9223372036854775807.99", "99999:59"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseClock(in)
			assert.ErrorIs(t, err, ErrMalformedClock)
		})
	}
}
