// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post categories. The set is fixed; create/update reject anything else.
const (
	CategoryReactJS     = "ReactJS"
	CategoryNextJS      = "NextJS"
	CategoryTailwindCSS = "TailwindCSS"
	CategoryTypescript  = "Typescript"
	CategoryNodeJS      = "NodeJS"
)

// Categories lists every valid post category.
var Categories = []string{
	CategoryReactJS,
	CategoryNextJS,
	CategoryTailwindCSS,
	CategoryTypescript,
	CategoryNodeJS,
}

// ValidCategory reports whether c is one of the fixed post categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Post represents a blog post.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Category  string         `gorm:"not null;index" json:"category"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"user"`
	Comments  []Comment      `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
