package models

import (
	"fmt"

	"github.com/uptrace/bun"
)

// Event formats as stored in the events table.
const (
	FormatTime   = "time"
	FormatNumber = "number"
	FormatMulti  = "multi"
)

// Event is a competition event such as "333" or "333mbf".
// It satisfies solvetime.Event.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:ev"`

	ID     string `bun:"id,pk" json:"id"`
	Name   string `bun:"name,notnull" json:"name"`
	Format string `bun:"format,notnull" json:"format"`
	Rank   int    `bun:"rank,notnull" json:"rank"`
}

func (e *Event) IsFewestMoves() bool { return e.Format == FormatNumber }
func (e *Event) IsMultipleBlindfolded() bool { return e.Format == FormatMulti }
func (e *Event) IsTimedEvent() bool { return e.Format == FormatTime }
func (e *Event) Identifier() string { return e.ID }

// OfficialEvents is the event catalogue seeded into the events table,
// including the retired ones still present in historical results.
var OfficialEvents = []Event{
	{ID: "333", Name: "3x3x3 Cube", Format: FormatTime, Rank: 10},
	{ID: "222", Name: "2x2x2 Cube", Format: FormatTime, Rank: 20},
	{ID: "444", Name: "4x4x4 Cube", Format: FormatTime, Rank: 30},
	{ID: "555", Name: "5x5x5 Cube", Format: FormatTime, Rank: 40},
	{ID: "666", Name: "6x6x6 Cube", Format: FormatTime, Rank: 50},
	{ID: "777", Name: "7x7x7 Cube", Format: FormatTime, Rank: 60},
	{ID: "333bf", Name: "3x3x3 Blindfolded", Format: FormatTime, Rank: 70},
	{ID: "333fm", Name: "3x3x3 Fewest Moves", Format: FormatNumber, Rank: 80},
	{ID: "333oh", Name: "3x3x3 One-Handed", Format: FormatTime, Rank: 90},
	{ID: "clock", Name: "Clock", Format: FormatTime, Rank: 110},
	{ID: "minx", Name: "Megaminx", Format: FormatTime, Rank: 120},
	{ID: "pyram", Name: "Pyraminx", Format: FormatTime, Rank: 130},
	{ID: "skewb", Name: "Skewb", Format: FormatTime, Rank: 140},
	{ID: "sq1", Name: "Square-1", Format: FormatTime, Rank: 150},
	{ID: "444bf", Name: "4x4x4 Blindfolded", Format: FormatTime, Rank: 160},
	{ID: "555bf", Name: "5x5x5 Blindfolded", Format: FormatTime, Rank: 170},
	{ID: "333mbf", Name: "3x3x3 Multi-Blind", Format: FormatMulti, Rank: 180},
	{ID: "333ft", Name: "3x3x3 With Feet", Format: FormatTime, Rank: 996},
	{ID: "magic", Name: "Magic", Format: FormatTime, Rank: 997},
	{ID: "mmagic", Name: "Master Magic", Format: FormatTime, Rank: 998},
	{ID: "333mbo", Name: "3x3x3 Multi-Blind Old Style", Format: FormatMulti, Rank: 999},
}

var eventsByID = func() map[string]*Event {
	m := make(map[string]*Event, len(OfficialEvents))
	for i := range OfficialEvents {
		m[OfficialEvents[i].ID] = &OfficialEvents[i]
	}
	return m
}()

// FindEvent looks an event up in the catalogue.
func FindEvent(id string) (*Event, error) {
	ev, ok := eventsByID[id]
	if !ok {
		return nil, fmt.Errorf("unknown event %q", id)
	}
	return ev, nil
}
