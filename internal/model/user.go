package model

import "time"

// User represents an authenticated user in the system.
// A row is created on first authentication and never deleted here.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OpenID       string    `json:"open_id" gorm:"uniqueIndex;size:64;not null"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role,omitempty" gorm:"size:50;default:'user'"`
	LastSignedIn time.Time `json:"last_signed_in"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
