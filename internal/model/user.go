package model

import "time"

// User represents a registered account. A user may act as a seller by
// creating products and owns at most one cart.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:100;not null"`
	FullName     string    `json:"full_name,omitempty" gorm:"size:255"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"` // Only mutated out-of-band (seeder)
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
