package models

import (
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/multierr"

	"github.com/padraicbc/wcaresults/solvetime"
)

// Result is one competitor's result in one round. Attempt, best and average
// columns hold packed values as understood by package solvetime.
type Result struct {
	bun.BaseModel `bun:"table:results,alias:r"`

	ID            int    `bun:"id,pk,autoincrement" json:"id"`
	CompetitionID string `bun:"competition_id,notnull" json:"competitionId"`
	EventID       string `bun:"event_id,notnull" json:"eventId"`
	RoundTypeID   string `bun:"round_type_id,notnull" json:"roundTypeId"`
	FormatID      string `bun:"format_id,notnull" json:"formatId"`
	Pos           int    `bun:"pos,notnull" json:"pos"`
	PersonID      string `bun:"person_id,notnull" json:"personId"`
	PersonName    string `bun:"person_name,notnull" json:"personName"`
	Best          int64  `bun:"best,notnull,default:0" json:"best"`
	Average       int64  `bun:"average,notnull,default:0" json:"average"`
	Value1        int64  `bun:"value1,notnull,default:0" json:"value1"`
	Value2        int64  `bun:"value2,notnull,default:0" json:"value2"`
	Value3        int64  `bun:"value3,notnull,default:0" json:"value3"`
	Value4        int64  `bun:"value4,notnull,default:0" json:"value4"`
	Value5        int64  `bun:"value5,notnull,default:0" json:"value5"`

	Event *Event `bun:"rel:belongs-to,join:event_id=id" json:"-"`
}

// Values returns the five attempt values in order.
func (r *Result) Values() []int64 {
	return []int64{r.Value1, r.Value2, r.Value3, r.Value4, r.Value5}
}

// SetValues stores up to five attempt values; missing ones are skipped.
func (r *Result) SetValues(values []int64) {
	dst := []*int64{&r.Value1, &r.Value2, &r.Value3, &r.Value4, &r.Value5}
	for i, p := range dst {
		*p = solvetime.SkippedValue
		if i < len(values) {
			*p = values[i]
		}
	}
}

// Attempts decodes the attempt values for ev.
func (r *Result) Attempts(ev solvetime.Event) []solvetime.SolveTime {
	vals := r.Values()
	out := make([]solvetime.SolveTime, len(vals))
	for i, v := range vals {
		out[i] = solvetime.New(ev, solvetime.Other, v)
	}
	return out
}

// BestTime decodes the best column for ev.
func (r *Result) BestTime(ev solvetime.Event) solvetime.SolveTime {
	return solvetime.New(ev, solvetime.Single, r.Best)
}

// AverageTime decodes the average column for ev.
func (r *Result) AverageTime(ev solvetime.Event) solvetime.SolveTime {
	return solvetime.New(ev, solvetime.Average, r.Average)
}

// Validate checks every attempt and the best and average columns, and
// returns all failures prefixed with the column they came from.
func (r *Result) Validate(ev solvetime.Event) error {
	var err error
	for i, a := range r.Attempts(ev) {
		err = appendColumnErrors(err, fmt.Sprintf("value%d", i+1), a)
	}
	err = appendColumnErrors(err, "best", r.BestTime(ev))
	err = appendColumnErrors(err, "average", r.AverageTime(ev))
	return err
}

func appendColumnErrors(err error, column string, s solvetime.SolveTime) error {
	for _, e := range multierr.Errors(s.Validate()) {
		err = multierr.Append(err, fmt.Errorf("%s: %w", column, e))
	}
	return err
}
