package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"lavajato/internal/errors"
	"lavajato/internal/weather"
)

// WeatherHandler handles the weather passthrough endpoint.
type WeatherHandler struct {
	client *weather.Client
}

// NewWeatherHandler creates a new weather handler.
func NewWeatherHandler(client *weather.Client) *WeatherHandler {
	return &WeatherHandler{client: client}
}

// GetCurrent godoc
// @Summary Current weather for the given coordinates
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Success 200 {object} weather.Report
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /weather/current [get]
func (h *WeatherHandler) GetCurrent(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "latitude inválida",
			Code:  "INVALID_COORDINATES",
		})
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "longitude inválida",
			Code:  "INVALID_COORDINATES",
		})
	}

	report, err := h.client.GetCurrent(c.Request().Context(), latitude, longitude)
	if err != nil {
		mapped := errors.MapErrorToHTTP(errors.ErrWeatherUnavailable)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, report)
}
