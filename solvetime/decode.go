package solvetime

import "github.com/shopspring/decimal"

// decode replaces every structured field with the ones packed in value.
// Non-positive values are sentinels (or invalid) and carry no fields.
func (s *SolveTime) decode(value int64) {
	s.value = value
	s.moves = decimal.Zero
	s.centis, s.hasCentis = 0, false
	s.solved, s.attempted = 0, 0

	if value <= 0 {
		return
	}

	switch s.kind.shape {
	case FewestMoves:
		s.moves = moveCount(s.field, value)
	case MultiBlindfolded:
		s.decodeMulti(value)
	case Timed:
		s.centis, s.hasCentis = value, true
	}
}

// The mean of fewest moves attempts is stored as the sum of the moves
// multiplied by 100.
func moveCount(field Field, raw int64) decimal.Decimal {
	if field == Average {
		return decimal.New(raw, -2)
	}
	return decimal.NewFromInt(raw)
}

func (s *SolveTime) decodeMulti(v int64) {
	var seconds int64
	if PackingOf(v) == PackingOld {
		// 1SSAATTTTT
		seconds = v % 100_000
		v /= 100_000
		s.attempted = int(v % 100)
		v /= 100
		s.solved = 99 - int(v%100)
	} else {
		// 0DDTTTTTMM
		missed := int(v % 100)
		v /= 100
		seconds = v % 100_000
		v /= 100_000
		difference := 99 - int(v%100)
		s.solved = difference + missed
		s.attempted = s.solved + missed
	}

	if seconds != unknownSeconds {
		s.centis, s.hasCentis = seconds*100, true
	}
}
