package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lavajato/internal/errors"
	"lavajato/internal/model"
	"lavajato/internal/service"
)

// AppointmentHandler handles appointment endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// CreateAppointmentRequest represents an appointment booking request.
type CreateAppointmentRequest struct {
	VehicleID       uint      `json:"vehicle_id" validate:"required"`
	ServiceType     string    `json:"service_type" validate:"required,oneof=simple complete"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
}

// UpdateAppointmentRequest represents a partial appointment update. Absent
// fields are left unchanged.
type UpdateAppointmentRequest struct {
	VehicleID       *uint      `json:"vehicle_id,omitempty"`
	ServiceType     *string    `json:"service_type,omitempty" validate:"omitempty,oneof=simple complete"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	Status          *string    `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

// List godoc
// @Summary List the caller's appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Appointment
// @Failure 401 {object} errors.ErrorResponse
// @Router /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}

	appointments, err := h.appointmentService.ListAppointments(c.Request().Context(), userID)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, appointments)
}

// GetByID godoc
// @Summary Get one of the caller's appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} model.Appointment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetByID(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c)
	if httpErr != nil {
		return httpErr
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request().Context(), id, userID)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, appointment)
}

// Create godoc
// @Summary Book a wash appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAppointmentRequest true "Booking data"
// @Success 201 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}

	var req CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.appointmentService.CreateAppointment(
		c.Request().Context(), userID, req.VehicleID,
		model.ServiceType(req.ServiceType), req.AppointmentDate)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, appointment)
}

// Update godoc
// @Summary Update one of the caller's appointments
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body UpdateAppointmentRequest true "Fields to update"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c)
	if httpErr != nil {
		return httpErr
	}

	var req UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.AppointmentUpdate{
		VehicleID:       req.VehicleID,
		AppointmentDate: req.AppointmentDate,
	}
	if req.ServiceType != nil {
		serviceType := model.ServiceType(*req.ServiceType)
		update.ServiceType = &serviceType
	}
	if req.Status != nil {
		status := model.AppointmentStatus(*req.Status)
		update.Status = &status
	}

	if err := h.appointmentService.UpdateAppointment(c.Request().Context(), id, userID, update); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// Delete godoc
// @Summary Cancel-and-remove one of the caller's appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	userID, httpErr := currentUserID(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c)
	if httpErr != nil {
		return httpErr
	}

	if err := h.appointmentService.DeleteAppointment(c.Request().Context(), id, userID); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
