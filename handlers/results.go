package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/padraicbc/wcaresults/models"
	"github.com/padraicbc/wcaresults/solvetime"
)

type resultRow struct {
	ID          int      `json:"id"`
	RoundTypeID string   `json:"roundTypeId"`
	Pos         int      `json:"pos"`
	PersonID    string   `json:"personId"`
	PersonName  string   `json:"personName"`
	Attempts    []string `json:"attempts"`
	Best        string   `json:"best"`
	Average     string   `json:"average"`
}

type resultRequest struct {
	CompetitionID string  `json:"competitionId"`
	EventID       string  `json:"eventId"`
	RoundTypeID   string  `json:"roundTypeId"`
	FormatID      string  `json:"formatId"`
	Pos           int     `json:"pos"`
	PersonID      string  `json:"personId"`
	PersonName    string  `json:"personName"`
	Values        []int64 `json:"values"`
	Best          int64   `json:"best"`
	Average       int64   `json:"average"`
}

// Results returns the stored results of one event at a competition with
// every value rendered, grouped by round and ordered by position.
func (h *Handler) Results(c echo.Context) error {
	competitionID, eventID := c.QueryParam("competitionId"), c.QueryParam("eventId")
	if competitionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing competitionId param")
	}
	ev, err := findEvent(eventID)
	if err != nil {
		return err
	}

	var results []models.Result
	err = h.db.NewSelect().Model(&results).
		Where("r.competition_id = ?", competitionID).
		Where("r.event_id = ?", ev.ID).
		OrderExpr("r.round_type_id, r.pos, r.id").
		Scan(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	out := make([]resultRow, len(results))
	for i := range results {
		out[i] = renderResult(&results[i], ev)
	}
	return c.JSON(http.StatusOK, out)
}

func renderResult(r *models.Result, ev *models.Event) resultRow {
	row := resultRow{
		ID:          r.ID,
		RoundTypeID: r.RoundTypeID,
		Pos:         r.Pos,
		PersonID:    r.PersonID,
		PersonName:  r.PersonName,
		Best:        r.BestTime(ev).ClockFormat(),
		Average:     r.AverageTime(ev).ClockFormat(),
	}
	for _, a := range r.Attempts(ev) {
		row.Attempts = append(row.Attempts, a.ClockFormat())
	}
	return row
}

// SaveResult validates and stores one competitor's round result. When best
// is omitted it is taken from the attempts.
func (h *Handler) SaveResult(c echo.Context) error {
	var req resultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.CompetitionID == "" || req.RoundTypeID == "" || req.PersonID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "competitionId, roundTypeId and personId are required")
	}
	if len(req.Values) == 0 || len(req.Values) > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "between 1 and 5 values are required")
	}
	ev, err := findEvent(req.EventID)
	if err != nil {
		return err
	}

	r := &models.Result{
		CompetitionID: req.CompetitionID,
		EventID:       ev.ID,
		RoundTypeID:   req.RoundTypeID,
		FormatID:      req.FormatID,
		Pos:           req.Pos,
		PersonID:      req.PersonID,
		PersonName:    req.PersonName,
		Best:          req.Best,
		Average:       req.Average,
	}
	r.SetValues(req.Values)
	if r.Best == solvetime.SkippedValue {
		r.Best = bestOf(r.Attempts(ev))
	}

	if err := r.Validate(ev); err != nil {
		msgs := make([]string, 0)
		for _, e := range multierr.Errors(err) {
			msgs = append(msgs, e.Error())
		}
		zap.L().Info("rejected result",
			zap.String("competition", r.CompetitionID),
			zap.String("event", r.EventID),
			zap.String("person", r.PersonID),
			zap.Strings("errors", msgs),
		)
		return c.JSON(http.StatusUnprocessableEntity, map[string][]string{"errors": msgs})
	}

	_, err = h.db.NewInsert().Model(r).
		On("CONFLICT (competition_id, event_id, round_type_id, person_id) DO UPDATE").
		Set("pos = EXCLUDED.pos").
		Set("format_id = EXCLUDED.format_id").
		Set("person_name = EXCLUDED.person_name").
		Set("best = EXCLUDED.best").
		Set("average = EXCLUDED.average").
		Set("value1 = EXCLUDED.value1").
		Set("value2 = EXCLUDED.value2").
		Set("value3 = EXCLUDED.value3").
		Set("value4 = EXCLUDED.value4").
		Set("value5 = EXCLUDED.value5").
		Returning("id").
		Exec(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, renderResult(r, ev))
}

// bestOf returns the best packed value among attempts, or 0 when every
// attempt was skipped.
func bestOf(attempts []solvetime.SolveTime) int64 {
	sorted := make([]solvetime.SolveTime, len(attempts))
	copy(sorted, attempts)
	solvetime.Sort(sorted)
	if len(sorted) == 0 {
		return solvetime.SkippedValue
	}
	return sorted[0].Value()
}
