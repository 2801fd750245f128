package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `gorm:"index" json:"category"` // free text, grouped client-side
	ImageURL    string  `json:"image_url"`
	// no gorm default here: a default:true tag makes GORM drop explicit
	// false on insert
	IsAvailable bool `json:"is_available"`
}
