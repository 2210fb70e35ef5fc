package models

import "time"

// Review statuses for a verification requirement.
const (
	StatusNotStarted    = "not_started"
	StatusInProgress    = "in_progress"
	StatusPendingReview = "pending_review"
	StatusApproved      = "approved"
	StatusRejected      = "rejected"
)

// Document categories a requirement can belong to.
const (
	CategoryIdentity      = "identity"
	CategoryClearance     = "clearance"
	CategoryQualification = "qualification"
	CategoryTraining      = "training"
	CategoryMedical       = "medical"
)

// Document (requirement) types.
const (
	DocPoliceCheck   = "police-check"
	DocWWCC          = "wwcc"
	DocNDISScreening = "ndis-screening"
	DocFirstAid      = "first-aid"
	DocQualification = "qualification-certificate"
	DocVaccination   = "covid-19-vaccination"
)

// VerificationRequirement links a worker to one required document and
// tracks where it sits in the review workflow. The upload/approval flow
// lives elsewhere, the search pipeline only filters on these rows.
type VerificationRequirement struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	WorkerID     uint64    `gorm:"not null;index" json:"worker_id"`
	DocumentType string    `gorm:"size:50;not null" json:"document_type"`
	Category     string    `gorm:"size:50;not null" json:"category"`
	Status       string    `gorm:"size:30;not null;default:not_started" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
