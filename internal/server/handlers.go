package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"officesite/internal/store"
)

type handlers struct {
	locations LocationReader
	logger    *zap.Logger
	now       func() time.Time
}

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "OK",
		Message:   "Server is running",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

func (h *handlers) listLocations(c echo.Context) error {
	locs, err := h.locations.ListLocations(c.Request().Context())
	if err != nil {
		h.logger.Error("list locations", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load locations"})
	}
	return c.JSON(http.StatusOK, locs)
}

func (h *handlers) locationDetail(c echo.Context) error {
	slug := c.Param("slug")
	loc, err := h.locations.LocationDetail(c.Request().Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "location not found"})
		}
		h.logger.Error("load location", zap.String("slug", slug), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to load location"})
	}
	return c.JSON(http.StatusOK, loc)
}
