package entity

import (
	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
	Date        string `gorm:"not null" json:"date"` // YYYY-MM-DD, no recurrence
	Time        string `json:"time"`
	ImageURL    string `json:"image_url"`
	IsFeatured  bool   `gorm:"default:false" json:"is_featured"`
}
