package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"lavajato/internal/auth"
	"lavajato/internal/errors"
	"lavajato/internal/service"
)

// VehicleHandler handles vehicle endpoints.
type VehicleHandler struct {
	vehicleService service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// SuccessResponse acknowledges a mutation without returning the entity.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CreateVehicleRequest represents a vehicle creation request.
type CreateVehicleRequest struct {
	Brand string  `json:"brand" validate:"required"`
	Model string  `json:"model" validate:"required"`
	Plate string  `json:"plate" validate:"required"`
	Color *string `json:"color,omitempty"`
	Year  *int    `json:"year,omitempty"`
}

// UpdateVehicleRequest represents a partial vehicle update. Absent fields
// are left unchanged.
type UpdateVehicleRequest struct {
	Brand *string `json:"brand,omitempty" validate:"omitempty,min=1"`
	Model *string `json:"model,omitempty" validate:"omitempty,min=1"`
	Plate *string `json:"plate,omitempty" validate:"omitempty,min=1"`
	Color *string `json:"color,omitempty"`
	Year  *int    `json:"year,omitempty"`
}

func currentUserID(c echo.Context) (uint, *echo.HTTPError) {
	userID, err := auth.UserIDFromContext(c)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "não autenticado",
			Code:  "UNAUTHORIZED",
		})
	}
	return userID, nil
}

func pathID(c echo.Context) (uint, *echo.HTTPError) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "id inválido",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

// List godoc
// @Summary List the caller's vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Vehicle
// @Failure 401 {object} errors.ErrorResponse
// @Router /vehicles [get]
func (h *VehicleHandler) List(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request().Context(), userID)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, vehicles)
}

// GetByID godoc
// @Summary Get one of the caller's vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} model.Vehicle
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c)
	if httpErr != nil {
		return httpErr
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request().Context(), id, userID)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Create godoc
// @Summary Register a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} model.Vehicle
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}

	var req CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: errors.ErrVehicleDataRequired.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request().Context(), userID, req.Brand, req.Model, req.Plate, req.Color, req.Year)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, vehicle)
}

// Update godoc
// @Summary Update one of the caller's vehicles
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Param request body UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) Update(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c)
	if httpErr != nil {
		return httpErr
	}

	var req UpdateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: errors.ErrVehicleDataRequired.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	update := service.VehicleUpdate{
		Brand: req.Brand,
		Model: req.Model,
		Plate: req.Plate,
		Color: req.Color,
		Year:  req.Year,
	}
	if err := h.vehicleService.UpdateVehicle(c.Request().Context(), id, userID, update); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete godoc
// @Summary Delete one of the caller's vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Vehicle ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c)
	if httpErr != nil {
		return httpErr
	}

	if err := h.vehicleService.DeleteVehicle(c.Request().Context(), id, userID); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
