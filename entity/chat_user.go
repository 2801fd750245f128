package entity

import (
	"time"

	"gorm.io/gorm"
)

// ChatUser identifies a chat-widget visitor by phone or email. At least one
// of the two must be present (enforced by a DB CHECK as well).
type ChatUser struct {
	gorm.Model
	Phone        *string    `gorm:"uniqueIndex;check:chk_chat_user_identity,phone IS NOT NULL OR email IS NOT NULL" json:"phone"`
	Email        *string    `gorm:"uniqueIndex" json:"email"`
	SessionID    string     `gorm:"uniqueIndex;not null" json:"session_id"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`
	LastLogin    *time.Time `json:"last_login"`
	OTP          *string    `json:"-"`
	OTPExpiresAt *time.Time `json:"-"`

	Chats []UserChat `gorm:"foreignKey:UserID" json:"-"`
}
