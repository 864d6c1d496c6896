package model

import "time"

// Vehicle represents a car registered by a user for wash appointments.
// It is owned by exactly one user; only the owner may read or mutate it.
type Vehicle struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Brand     string    `json:"brand" gorm:"size:100;not null"`
	Model     string    `json:"model" gorm:"size:100;not null"`
	Plate     string    `json:"plate" gorm:"size:20;not null"`
	Color     *string   `json:"color,omitempty" gorm:"size:50"`
	Year      *int      `json:"year,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
