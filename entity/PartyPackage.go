package entity

import (
	"gorm.io/gorm"
)

type PartyPackage struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Includes    string  `json:"includes"` // free text, one line per inclusion
	ImageURL    string  `json:"image_url"`
	IsAvailable bool    `json:"is_available"`
}
