package solvetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		value SolveTime
		want  []error
	}{
		{"plain time", New(cube3, Single, 1234), nil},
		{"DNF", DNF, nil},
		{"DNS", DNS, nil},
		{"skipped", Skipped, nil},
		{"below DNS", New(cube3, Single, -3), []error{ErrInvalidValue}},
		{"unrounded over 10 minutes", New(cube3, Single, 601*100+50), []error{ErrNotRounded}},
		{"exactly 10 minutes", New(cube3, Single, 600*100), nil},
		{"unrounded at 10 minutes", New(cube3, Single, 600*100+50), []error{ErrNotRounded}},
		{"unrounded under 10 minutes", New(cube3, Single, 599*100+50), nil},
		{"rounded over 10 minutes", New(cube3, Single, 601*100), nil},
		{"fewest moves ignores rounding", New(fewestMoves, Average, 6010050), nil},
		{"multi within limit", FromMultiBlind(cube3Multi, 5, 6, 120000), nil},
		{"multi at limit", FromMultiBlind(cube3Multi, 2, 3, 180000), nil},
		{"multi over limit", FromMultiBlind(cube3Multi, 2, 3, 180100), []error{ErrTimeLimit}},
		{"multi over hour cap", FromMultiBlind(cube3Multi, 9, 10, 360100), []error{ErrTimeLimit}},
		{"multi over limit and unrounded", FromMultiBlind(cube3Multi, 1, 1, 60150), []error{ErrTimeLimit, ErrNotRounded}},
		{"old style has no limit", FromMultiBlind(multiOld, 1, 1, 360000), nil},
		{"old style must be rounded", FromMultiBlind(multiOld, 1, 1, 60150), []error{ErrNotRounded}},
		{"multi unknown time", New(cube3Multi, Single, 979999901), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.value.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				assert.Empty(t, tc.value.Messages())
				return
			}

			errs := multierr.Errors(err)
			if assert.Len(t, errs, len(tc.want)) {
				for i, want := range tc.want {
					assert.ErrorIs(t, errs[i], want)
				}
			}
			assert.Len(t, tc.value.Messages(), len(tc.want))
		})
	}
}

func TestTimeLimitMessage(t *testing.T) {
	msgs := FromMultiBlind(cube3Multi, 2, 3, 180100).Messages()
	assert.Equal(t, []string{"time limit exceeded: should be less than or equal to 30 minutes"}, msgs)
}

func TestCompare(t *testing.T) {
	fast := New(cube3, Single, 999)
	slow := New(cube3, Single, 1000)

	assert.Equal(t, -1, fast.Compare(slow))
	assert.Equal(t, 1, slow.Compare(fast))
	assert.Equal(t, 0, slow.Compare(New(cube2, Single, 1000)))
	assert.True(t, slow.Less(DNF))
	assert.True(t, DNF.Less(DNS))
	assert.True(t, DNS.Less(Skipped))
	assert.False(t, Skipped.Less(DNS))
	assert.Equal(t, 0, DNF.Compare(New(cube3Multi, Single, DNFValue)))
}

func TestSort(t *testing.T) {
	timed := New(cube3, Single, 1000)
	values := []SolveTime{Skipped, DNS, DNF, timed}

	Sort(values)

	assert.Equal(t, []SolveTime{timed, DNF, DNS, Skipped}, values)
}

func TestSortMultiBlindByPackedValue(t *testing.T) {
	better := FromMultiBlind(cube3Multi, 6, 6, 300000)
	worse := FromMultiBlind(cube3Multi, 5, 6, 120000)
	values := []SolveTime{DNF, worse, better}

	Sort(values)

	assert.Equal(t, []int64{better.Value(), worse.Value(), DNFValue},
		[]int64{values[0].Value(), values[1].Value(), values[2].Value()})
}
