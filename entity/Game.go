package entity

import (
	"gorm.io/gorm"
)

type Game struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Type        string `gorm:"index" json:"type"`
	ImageURL    string `json:"image_url"`
	IsAvailable bool   `json:"is_available"`
}
