package model

import "time"

// NotificationType classifies a notification.
type NotificationType string

const (
	NotificationTypeAppointment NotificationType = "appointment"
	NotificationTypeReminder    NotificationType = "reminder"
	NotificationTypeGeneric     NotificationType = "generic"
)

// Notification is a message delivered to a single user, created as a side
// effect of appointment booking. Only the owner may mark it read or delete it.
type Notification struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	UserID    uint             `json:"user_id" gorm:"not null;index"`
	Title     string           `json:"title" gorm:"size:255;not null"`
	Message   string           `json:"message" gorm:"size:1000;not null"`
	Type      NotificationType `json:"type" gorm:"type:varchar(20);not null;default:'generic'"`
	IsRead    bool             `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time        `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
