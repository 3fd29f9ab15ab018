package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/wcaresults/models"
)

// Events returns the event catalogue.
func (h *Handler) Events(c echo.Context) error {
	return c.JSON(http.StatusOK, models.OfficialEvents)
}

func findEvent(id string) (*models.Event, error) {
	if id == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "missing event param")
	}
	ev, err := models.FindEvent(id)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return ev, nil
}
