package model

import "time"

// ServiceType represents the kind of wash booked for an appointment.
type ServiceType string

const (
	ServiceTypeSimple   ServiceType = "simple"
	ServiceTypeComplete ServiceType = "complete"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a scheduled wash for one of the user's vehicles.
// The referenced vehicle must belong to the same user; this is checked at
// creation time and again whenever the vehicle reference changes.
type Appointment struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	UserID          uint              `json:"user_id" gorm:"not null;index"`
	VehicleID       uint              `json:"vehicle_id" gorm:"not null;index"`
	ServiceType     ServiceType       `json:"service_type" gorm:"type:varchar(20);not null"`
	AppointmentDate time.Time         `json:"appointment_date" gorm:"not null;index"`
	Status          AppointmentStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	// Relations
	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Vehicle Vehicle `json:"-" gorm:"foreignKey:VehicleID"`
}
