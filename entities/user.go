package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name           string    `json:"name"`
	Email          string    `gorm:"uniqueIndex" json:"email"`
	PasswordHash   string    `json:"-"`
	Phone          string    `json:"phone,omitempty"`
	TelegramChatID string    `json:"telegram_chat_id,omitempty"`
	IsAdmin        bool      `json:"is_admin"`
	FinderPoints   int       `json:"finder_points"`

	Reports []*Report `gorm:"foreignKey:UserID"`
	Claims  []*Claim  `gorm:"foreignKey:ClaimerID"`
	Timestamp
}
