package solvetime

import "fmt"

// encode recomputes the packed value from the structured fields. Values are
// always written in the packing of the event's multi-blindfolded format, so a
// value decoded from an old generation packing may change here.
func (s *SolveTime) encode() {
	switch s.kind.shape {
	case FewestMoves:
		if s.field == Average {
			s.value = s.moves.Shift(2).IntPart()
		} else {
			s.value = s.moves.IntPart()
		}
	case MultiBlindfolded:
		s.value = s.encodeMulti()
	case Timed:
		s.value = s.centis
	}
}

func (s *SolveTime) encodeMulti() int64 {
	seconds := unknownSeconds
	if s.hasCentis {
		seconds = s.centis / 100
	}

	switch s.kind.format {
	case MultiFormatCurrent:
		missed := int64(s.attempted - s.solved)
		dd := 99 - (int64(s.solved) - missed)
		return dd*10_000_000 + seconds*100 + missed
	case MultiFormatOld:
		ss := 99 - int64(s.solved)
		aa := int64(s.attempted)
		return 1_000_000_000 + ss*10_000_000 + aa*100_000 + seconds
	default:
		panic(fmt.Sprintf("solvetime: cannot encode multi-blindfolded value for event %q", s.kind.id))
	}
}
