package entity

import (
	"time"
)

// UserChat is an append-only log. Rows are never updated or deleted by the
// app, so no gorm.Model soft-delete here.
type UserChat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	SessionID string    `gorm:"not null;index" json:"session_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsBot     bool      `gorm:"default:false" json:"is_bot"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}
