package repository

import (
	"context"

	"gorm.io/gorm"

	"lavajato/internal/model"
)

// AppointmentRepository defines appointment persistence operations.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindByID(ctx context.Context, id uint) (*model.Appointment, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Appointment, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository creates a new appointment repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create creates a new appointment.
func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

// FindByID finds an appointment by ID regardless of owner.
func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

// ListByUser lists a user's appointments ordered by appointment date, most
// recent first.
func (r *appointmentRepository) ListByUser(ctx context.Context, userID uint) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("appointment_date DESC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// Update applies only the provided fields to an appointment.
func (r *appointmentRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes an appointment. Its notification, if any, is left in place.
func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Appointment{}, id).Error
}
