package solvetime

import (
	"fmt"
	"strings"
)

// Event is the part of an event descriptor the codec depends on.
type Event interface {
	IsFewestMoves() bool
	IsMultipleBlindfolded() bool
	IsTimedEvent() bool
	Identifier() string
}

// Shape selects how a packed value is interpreted.
type Shape int

const (
	Timed Shape = iota
	FewestMoves
	MultiBlindfolded
)

func (s Shape) String() string {
	switch s {
	case FewestMoves:
		return "fewest_moves"
	case MultiBlindfolded:
		return "multi_blindfolded"
	default:
		return "timed"
	}
}

// Field is the result column a value was read from. Only fewest moves
// decoding depends on it.
type Field int

const (
	Single Field = iota
	Average
	Other
)

func (f Field) String() string {
	switch f {
	case Single:
		return "single"
	case Average:
		return "average"
	default:
		return "other"
	}
}

// ParseField maps a column name to a Field. "best" is accepted as an alias
// of "single"; unknown names map to Other.
func ParseField(s string) Field {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "best":
		return Single
	case "average", "mean":
		return Average
	default:
		return Other
	}
}

// MultiFormat is the competition format of a multi-blindfolded event. It
// decides how values are encoded. Both formats are live; this is unrelated
// to the packing generation detected while decoding.
type MultiFormat int

const (
	// MultiFormatUnknown is a multi-blindfolded event whose identifier
	// matches no known format. Such values decode but cannot be encoded.
	MultiFormatUnknown MultiFormat = iota
	// MultiFormatCurrent is the points based format, identifiers ending "mbf".
	MultiFormatCurrent
	// MultiFormatOld is the old style format, identifiers ending "mbo".
	MultiFormatOld
)

func (m MultiFormat) String() string {
	switch m {
	case MultiFormatCurrent:
		return "mbf"
	case MultiFormatOld:
		return "mbo"
	default:
		return "unknown"
	}
}

// Packing is the generation of a packed multi-blindfolded value.
type Packing int

const (
	PackingCurrent Packing = iota
	PackingOld
)

// PackingOf reports which generation a multi-blindfolded value was packed
// with.
func PackingOf(value int64) Packing {
	if value/1_000_000_000 != 0 {
		return PackingOld
	}
	return PackingCurrent
}

// kind is the classification of an Event, resolved once at construction.
type kind struct {
	id     string
	shape  Shape
	format MultiFormat
}

func classify(ev Event) kind {
	if ev == nil {
		panic("solvetime: nil event")
	}
	k := kind{id: ev.Identifier()}
	switch {
	case ev.IsFewestMoves():
		k.shape = FewestMoves
	case ev.IsMultipleBlindfolded():
		k.shape = MultiBlindfolded
		switch {
		case strings.HasSuffix(k.id, "mbf"):
			k.format = MultiFormatCurrent
		case strings.HasSuffix(k.id, "mbo"):
			k.format = MultiFormatOld
		}
	case ev.IsTimedEvent():
		k.shape = Timed
	default:
		panic(fmt.Sprintf("solvetime: unrecognized event type %q", k.id))
	}
	return k
}

// staticEvent is a minimal Event used for the package level sentinels and
// MultiBlindPoints.
type staticEvent struct {
	id    string
	shape Shape
}

func (e staticEvent) IsFewestMoves() bool { return e.shape == FewestMoves }
func (e staticEvent) IsMultipleBlindfolded() bool { return e.shape == MultiBlindfolded }
func (e staticEvent) IsTimedEvent() bool { return e.shape == Timed }
func (e staticEvent) Identifier() string { return e.id }

var (
	cube3      = staticEvent{id: "333", shape: Timed}
	cube3Multi = staticEvent{id: "333mbf", shape: MultiBlindfolded}
)
