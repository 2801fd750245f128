package entity

import (
	"gorm.io/gorm"
)

// GalleryItem holds either an image or a video, never both. The media kind
// is derived from the uploaded file's extension.
type GalleryItem struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
	Category    string `gorm:"index" json:"category"`
	IsFeatured  bool   `gorm:"default:false" json:"is_featured"`
}
