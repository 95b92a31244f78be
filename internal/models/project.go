package models

import (
	"time"

	"gorm.io/gorm"
)

// Project represents a portfolio project entry. Projects carry no owner
// reference; mutation routes are gated by authentication only.
type Project struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Link        string         `json:"link,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
