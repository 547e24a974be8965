package entities

import (
	"github.com/google/uuid"
)

type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Color       string    `json:"color,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`

	Reports []*Report `gorm:"foreignKey:ItemID"`
	Timestamp
}
