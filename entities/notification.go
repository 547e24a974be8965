package entities

import (
	"github.com/google/uuid"
)

type AppNotification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	Message string    `json:"message"`
	Type    string    `json:"type"` // claim, match, system
	Link    string    `json:"link,omitempty"`
	Read    bool      `json:"read"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
