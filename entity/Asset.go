package entity

import (
	"gorm.io/gorm"
)

// Asset is the generic file registry. FilePath is the on-disk source of
// truth; FileURL is what the frontend serves.
type Asset struct {
	gorm.Model
	Filename     string `gorm:"not null" json:"filename"`
	OriginalName string `json:"original_name"`
	FilePath     string `gorm:"index" json:"file_path"`
	FileURL      string `json:"file_url"`
	FileType     string `json:"file_type"` // image, video, audio, document
	Category     string `gorm:"index" json:"category"`
	FileSize     int64  `json:"file_size"`
	MimeType     string `json:"mime_type"`
	Description  string `json:"description"`
	Tags         string `json:"tags"`
	IsFeatured   bool   `gorm:"default:false" json:"is_featured"`
	IsPublic     bool   `json:"is_public"`
}
