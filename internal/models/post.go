package models

import (
	"time"

	"gorm.io/datatypes"
)

// Post is a blog entry. The body is stored as opaque text; rich-text
// handling happens in the admin console.
type Post struct {
	BaseModelWithDeleted
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt     string         `gorm:"type:text" json:"excerpt"`
	Body        string         `gorm:"type:text" json:"body"`
	CoverImage  string         `gorm:"column:cover_image" json:"coverImage"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Published   bool           `gorm:"default:false;index" json:"published"`
	PublishedAt *time.Time     `json:"publishedAt"`
}
