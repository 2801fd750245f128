package entity

import (
	"gorm.io/gorm"
)

// Contact message statuses. Admin-set only, no automatic transitions.
const (
	ContactStatusUnread   = "unread"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusUnread, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

type ContactMessage struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null;index" json:"email"`
	Phone   string `json:"phone"`
	Message string `gorm:"type:text;not null" json:"message"`
	Status  string `gorm:"not null;default:unread;index" json:"status"`
}
