package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"lavajato/internal/errors"
	"lavajato/internal/model"
	"lavajato/internal/repository"
)

// AppointmentUpdate carries the optional fields of a partial appointment
// update. Nil fields are left untouched.
type AppointmentUpdate struct {
	VehicleID       *uint
	ServiceType     *model.ServiceType
	AppointmentDate *time.Time
	Status          *model.AppointmentStatus
}

// AppointmentService handles wash appointment operations on behalf of a
// single user, including the vehicle linkage check and the booking
// notification side effect.
type AppointmentService interface {
	ListAppointments(ctx context.Context, userID uint) ([]model.Appointment, error)
	GetAppointment(ctx context.Context, id, userID uint) (*model.Appointment, error)
	CreateAppointment(ctx context.Context, userID, vehicleID uint, serviceType model.ServiceType, appointmentDate time.Time) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id, userID uint, update AppointmentUpdate) error
	DeleteAppointment(ctx context.Context, id, userID uint) error
}

type appointmentService struct {
	repo          repository.AppointmentRepository
	vehicleRepo   repository.VehicleRepository
	notifications NotificationService
	logger        *logrus.Logger
}

// NewAppointmentService creates a new appointment service. Booking
// notifications go through the notification service so its unread-count
// cache stays consistent.
func NewAppointmentService(
	repo repository.AppointmentRepository,
	vehicleRepo repository.VehicleRepository,
	notifications NotificationService,
	logger *logrus.Logger,
) AppointmentService {
	return &appointmentService{
		repo:          repo,
		vehicleRepo:   vehicleRepo,
		notifications: notifications,
		logger:        logger,
	}
}

// ListAppointments returns the user's appointments ordered by appointment
// date descending. Degrades to an empty list when storage is unavailable.
func (s *appointmentService) ListAppointments(ctx context.Context, userID uint) ([]model.Appointment, error) {
	appointments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Warn("list appointments degraded to empty result")
		return []model.Appointment{}, nil
	}
	return appointments, nil
}

// GetAppointment fetches an appointment and checks ownership, keeping the
// not-found and foreign-owner outcomes distinguishable.
func (s *appointmentService) GetAppointment(ctx context.Context, id, userID uint) (*model.Appointment, error) {
	appointment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrAppointmentNotFound
		}
		return nil, err
	}
	if appointment.UserID != userID {
		return nil, errors.ErrAccessDenied
	}
	return appointment, nil
}

// checkVehicleOwnership enforces the vehicle linkage rule for bookings.
// Unlike GetVehicle, a missing vehicle and a foreign vehicle collapse into a
// single failure so booking never confirms whether someone else's vehicle
// exists.
func (s *appointmentService) checkVehicleOwnership(ctx context.Context, vehicleID, userID uint) error {
	vehicle, err := s.vehicleRepo.FindByID(ctx, vehicleID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrInvalidVehicle
		}
		return err
	}
	if vehicle.UserID != userID {
		return errors.ErrInvalidVehicle
	}
	return nil
}

// CreateAppointment books a wash for one of the user's vehicles. The
// appointment starts in the pending state and one booking notification is
// emitted to the same user. The notification write is best-effort: by the
// time it runs the appointment is already committed, so its failure is
// logged and swallowed rather than surfaced.
func (s *appointmentService) CreateAppointment(ctx context.Context, userID, vehicleID uint, serviceType model.ServiceType, appointmentDate time.Time) (*model.Appointment, error) {
	if err := s.checkVehicleOwnership(ctx, vehicleID, userID); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		UserID:          userID,
		VehicleID:       vehicleID,
		ServiceType:     serviceType,
		AppointmentDate: appointmentDate,
		Status:          model.AppointmentStatusPending,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	notification := &model.Notification{
		UserID:  userID,
		Title:   "Agendamento Criado",
		Message: bookingMessage(serviceType, appointmentDate),
		Type:    model.NotificationTypeAppointment,
	}
	if err := s.notifications.CreateNotification(ctx, notification); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":        userID,
			"appointment_id": appointment.ID,
		}).Error("booking notification emission failed")
	}

	return appointment, nil
}

// UpdateAppointment applies the provided fields to an owned appointment.
// A vehicle change is re-validated under the collapsed linkage rule. Status
// values are accepted as-is; there is no transition table.
func (s *appointmentService) UpdateAppointment(ctx context.Context, id, userID uint, update AppointmentUpdate) error {
	if _, err := s.GetAppointment(ctx, id, userID); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if update.VehicleID != nil {
		if err := s.checkVehicleOwnership(ctx, *update.VehicleID, userID); err != nil {
			return err
		}
		fields["vehicle_id"] = *update.VehicleID
	}
	if update.ServiceType != nil {
		fields["service_type"] = *update.ServiceType
	}
	if update.AppointmentDate != nil {
		fields["appointment_date"] = *update.AppointmentDate
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}

	return s.repo.Update(ctx, id, fields)
}

// DeleteAppointment removes an owned appointment. Its booking notification
// is kept.
func (s *appointmentService) DeleteAppointment(ctx context.Context, id, userID uint) error {
	if _, err := s.GetAppointment(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// bookingMessage renders the pt-BR booking summary shown to the user.
func bookingMessage(serviceType model.ServiceType, appointmentDate time.Time) string {
	serviceText := "Lavagem Simples"
	if serviceType == model.ServiceTypeComplete {
		serviceText = "Lavagem Completa"
	}
	return fmt.Sprintf("Seu agendamento de %s para %s foi criado com sucesso.",
		serviceText, appointmentDate.Format("02/01/2006"))
}
