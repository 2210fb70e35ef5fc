package models

import (
	"time"

	"gorm.io/gorm"
)

// Worker represents a support worker (contractor) profile.
// Latitude/Longitude are pointers because a worker has no coordinates
// until their address has been geocoded by the profile flow.
type Worker struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Mobile    string `gorm:"size:20" json:"mobile"`
	Gender    string `gorm:"size:20" json:"gender"` // Stored title-cased: "Female", "Male", ...
	Age       int    `json:"age"`

	// Comma separated, title-cased: "English,Auslan,Mandarin"
	Languages string `gorm:"size:255" json:"languages"`

	City     string `gorm:"size:100" json:"city"`
	State    string `gorm:"size:50" json:"state"`
	Postcode string `gorm:"size:10" json:"postcode"`
	// Enough integer digits for longitudes (up to ±180)
	Latitude  *float64 `gorm:"type:decimal(11,8)" json:"latitude"`
	Longitude *float64 `gorm:"type:decimal(11,8)" json:"longitude"`

	Introduction string `gorm:"type:text" json:"introduction"`
	PhotoURL     string `gorm:"size:255" json:"photo_url"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Services     []WorkerService           `gorm:"foreignKey:WorkerID" json:"services,omitempty"`
	Requirements []VerificationRequirement `gorm:"foreignKey:WorkerID" json:"requirements,omitempty"`
}

// WorkerService is one offered service category row. A worker can have
// duplicate rows for the same category (legacy data), the projection
// layer dedups them.
type WorkerService struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	WorkerID uint64 `gorm:"not null;index" json:"worker_id"`
	Category string `gorm:"size:100;not null" json:"category"` // Display name: "Personal Care"
}
