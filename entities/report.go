package entities

import (
	"github.com/google/uuid"
)

type Report struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	ItemID   uuid.UUID `json:"item_id"`
	Status   string    `json:"status"` // lost, found, claimed, returned
	Location string    `json:"location"`
	Date     string    `json:"date"` // reporter-supplied, "2006-01-02" when well-formed

	User   *User    `gorm:"foreignKey:UserID"`
	Item   *Item    `gorm:"foreignKey:ItemID"`
	Claims []*Claim `gorm:"foreignKey:FoundReportID"`
	Timestamp
}
