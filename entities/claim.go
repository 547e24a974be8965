package entities

import (
	"time"

	"github.com/google/uuid"
)

type Claim struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoundReportID    uuid.UUID  `json:"found_report_id"`
	ClaimerID        uuid.UUID  `json:"claimer_id"`
	ProofDescription string     `json:"proof_description"`
	Status           string     `json:"status"` // pending, approved, rejected
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`

	FoundReport *Report `gorm:"foreignKey:FoundReportID"`
	Claimer     *User   `gorm:"foreignKey:ClaimerID"`
	Timestamp
}
