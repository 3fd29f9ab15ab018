package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/padraicbc/wcaresults/models"
	"github.com/padraicbc/wcaresults/solvetime"
)

// solveTimeView is the JSON rendering of a decoded value.
type solveTimeView struct {
	EventID        string   `json:"eventId"`
	Field          string   `json:"field"`
	Value          int64    `json:"value"`
	Status         string   `json:"status"`
	Clock          string   `json:"clock"`
	ClockWithUnits string   `json:"clockWithUnits"`
	Centiseconds   *int64   `json:"centiseconds,omitempty"`
	MoveCount      *string  `json:"moveCount,omitempty"`
	Solved         *int     `json:"solved,omitempty"`
	Attempted      *int     `json:"attempted,omitempty"`
	Points         *int     `json:"points,omitempty"`
	Packing        string   `json:"packing,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

func newSolveTimeView(s solvetime.SolveTime) solveTimeView {
	v := solveTimeView{
		EventID:        s.EventID(),
		Field:          s.Field().String(),
		Value:          s.Value(),
		Status:         status(s),
		Clock:          s.ClockFormat(),
		ClockWithUnits: s.ClockFormatWithUnits(),
		Errors:         s.Messages(),
	}
	if s.IsIncomplete() {
		return v
	}

	if cs, ok := s.Centiseconds(); ok {
		v.Centiseconds = &cs
	}
	switch s.Shape() {
	case solvetime.FewestMoves:
		mc := s.MoveCount().String()
		v.MoveCount = &mc
	case solvetime.MultiBlindfolded:
		solved, attempted, points := s.Solved(), s.Attempted(), s.Points()
		v.Solved, v.Attempted, v.Points = &solved, &attempted, &points
		v.Packing = "current"
		if solvetime.PackingOf(s.Value()) == solvetime.PackingOld {
			v.Packing = "old"
		}
	}
	return v
}

func status(s solvetime.SolveTime) string {
	switch {
	case s.IsDNF():
		return "DNF"
	case s.IsDNS():
		return "DNS"
	case s.IsSkipped():
		return "skipped"
	default:
		return "complete"
	}
}

// Decode renders a packed value for an event.
func (h *Handler) Decode(c echo.Context) error {
	ev, err := findEvent(c.QueryParam("event"))
	if err != nil {
		return err
	}

	raw := c.QueryParam("value")
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid value %q", raw))
	}

	s := solvetime.New(ev, solvetime.ParseField(c.QueryParam("field")), value)
	return c.JSON(http.StatusOK, newSolveTimeView(s))
}

type encodeRequest struct {
	Event string `json:"event"`
	Field string `json:"field"`
	// Clock is a formatted time ("1:02.34"), "DNF", "DNS" or empty.
	Clock        *string `json:"clock,omitempty"`
	Centiseconds *int64  `json:"centiseconds,omitempty"`
	// Moves is in stored units: means are multiplied by 100.
	Moves     *int64 `json:"moves,omitempty"`
	Solved    *int   `json:"solved,omitempty"`
	Attempted *int   `json:"attempted,omitempty"`
}

// Encode builds a packed value from structured input.
func (h *Handler) Encode(c echo.Context) error {
	var req encodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ev, err := findEvent(req.Event)
	if err != nil {
		return err
	}

	s, err := buildSolveTime(ev, solvetime.ParseField(req.Field), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view := newSolveTimeView(s)
	if len(view.Errors) > 0 {
		zap.L().Debug("encoded value fails validation",
			zap.String("event", ev.ID),
			zap.Int64("value", s.Value()),
			zap.Strings("errors", view.Errors),
		)
	}
	return c.JSON(http.StatusOK, view)
}

// buildSolveTime checks every range the solvetime constructors would panic
// on, so untrusted input surfaces as an error.
func buildSolveTime(ev *models.Event, field solvetime.Field, req encodeRequest) (solvetime.SolveTime, error) {
	var cs *int64
	if req.Clock != nil {
		v, err := solvetime.ParseClock(*req.Clock)
		if err != nil {
			return solvetime.SolveTime{}, err
		}
		if v <= solvetime.SkippedValue {
			return solvetime.New(ev, field, v), nil
		}
		cs = &v
	} else if req.Centiseconds != nil {
		cs = req.Centiseconds
	}
	if cs != nil && (*cs < 0 || *cs > solvetime.MaxCentiseconds) {
		return solvetime.SolveTime{}, fmt.Errorf("centiseconds %d out of range", *cs)
	}

	switch {
	case ev.IsFewestMoves():
		if req.Moves == nil {
			return solvetime.SolveTime{}, fmt.Errorf("moves required for %s", ev.ID)
		}
		if *req.Moves < 1 {
			return solvetime.SolveTime{}, fmt.Errorf("moves %d out of range", *req.Moves)
		}
		return solvetime.FromMoveCount(ev, field, *req.Moves), nil

	case ev.IsMultipleBlindfolded():
		if req.Solved == nil || req.Attempted == nil {
			return solvetime.SolveTime{}, fmt.Errorf("solved and attempted required for %s", ev.ID)
		}
		if solvetime.New(ev, field, solvetime.SkippedValue).MultiFormat() == solvetime.MultiFormatUnknown {
			return solvetime.SolveTime{}, fmt.Errorf("event %s has no multi-blindfolded format", ev.ID)
		}
		solved, attempted := *req.Solved, *req.Attempted
		if solved < 0 || attempted > 99 || solved > attempted {
			return solvetime.SolveTime{}, fmt.Errorf("solved %d / attempted %d out of range", solved, attempted)
		}
		unknown := int64(-1)
		if cs == nil {
			cs = &unknown
		}
		return solvetime.FromMultiBlind(ev, solved, attempted, *cs), nil

	default:
		if cs == nil {
			return solvetime.SolveTime{}, fmt.Errorf("clock or centiseconds required for %s", ev.ID)
		}
		return solvetime.FromCentiseconds(ev, field, *cs), nil
	}
}

type sortRequest struct {
	Event  string  `json:"event"`
	Field  string  `json:"field"`
	Values []int64 `json:"values"`
}

// Sort orders packed values of one event best first.
func (h *Handler) Sort(c echo.Context) error {
	var req sortRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ev, err := findEvent(req.Event)
	if err != nil {
		return err
	}

	field := solvetime.ParseField(req.Field)
	values := make([]solvetime.SolveTime, len(req.Values))
	for i, v := range req.Values {
		values[i] = solvetime.New(ev, field, v)
	}
	solvetime.Sort(values)

	out := make([]solveTimeView, len(values))
	for i, s := range values {
		out[i] = newSolveTimeView(s)
	}
	return c.JSON(http.StatusOK, out)
}
