package solvetime

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrInvalidValue = errors.New("invalid")
	ErrTimeLimit    = errors.New("time limit exceeded")
	ErrNotRounded   = errors.New("times over 10 minutes should be rounded")
)

// Validate runs every check and returns all failures combined with
// multierr, or nil. Use multierr.Errors to list them.
func (s SolveTime) Validate() error {
	var err error
	err = multierr.Append(err, s.validateValue())
	err = multierr.Append(err, s.validateMultiBlindTimeLimit())
	err = multierr.Append(err, s.validateRounding())
	return err
}

// Messages returns the text of every validation failure.
func (s SolveTime) Messages() []string {
	errs := multierr.Errors(s.Validate())
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return msgs
}

func (s SolveTime) validateValue() error {
	if s.value < DNSValue {
		return fmt.Errorf("%w: %d", ErrInvalidValue, s.value)
	}
	return nil
}

// Regulation H1b: 10 minutes per cube, at most 60 minutes.
func (s SolveTime) validateMultiBlindTimeLimit() error {
	if s.kind.format != MultiFormatCurrent || !s.hasCentis {
		return nil
	}
	limit := min(60, s.attempted*10)
	if s.TimeMinutes() > float64(limit) {
		return fmt.Errorf("%w: should be less than or equal to %d minutes", ErrTimeLimit, limit)
	}
	return nil
}

func (s SolveTime) validateRounding() error {
	if s.kind.shape == FewestMoves || !s.hasCentis {
		return nil
	}
	if s.TimeMinutes() > 10 && s.centis%100 != 0 {
		return ErrNotRounded
	}
	return nil
}
