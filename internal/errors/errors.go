package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrVehicleNotFound is returned when a vehicle does not exist.
	ErrVehicleNotFound = errors.New("veículo não encontrado")
	// ErrAppointmentNotFound is returned when an appointment does not exist.
	ErrAppointmentNotFound = errors.New("agendamento não encontrado")
	// ErrNotificationNotFound is returned when a notification is absent from
	// the caller's own notification set.
	ErrNotificationNotFound = errors.New("notificação não encontrada")
	// ErrAccessDenied is returned when the entity exists but belongs to
	// another user.
	ErrAccessDenied = errors.New("acesso negado")
	// ErrInvalidVehicle is returned when an appointment references a vehicle
	// that is absent or owned by someone else. The two cases are deliberately
	// indistinguishable so booking never confirms a foreign vehicle's existence.
	ErrInvalidVehicle = errors.New("veículo inválido")
	// ErrVehicleDataRequired is returned when required vehicle fields are empty.
	ErrVehicleDataRequired = errors.New("marca, modelo e placa são obrigatórios")
	// ErrWeatherUnavailable is returned when the weather provider is
	// unreachable or answers with a non-success status.
	ErrWeatherUnavailable = errors.New("erro ao buscar dados do clima")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrVehicleNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "VEHICLE_NOT_FOUND")
	case ErrAppointmentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "APPOINTMENT_NOT_FOUND")
	case ErrNotificationNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOTIFICATION_NOT_FOUND")
	case ErrAccessDenied:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ACCESS_DENIED")
	case ErrInvalidVehicle:
		return NewHTTPError(http.StatusForbidden, err.Error(), "INVALID_VEHICLE")
	case ErrVehicleDataRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case ErrWeatherUnavailable:
		return NewHTTPError(http.StatusBadGateway, err.Error(), "WEATHER_UPSTREAM")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
