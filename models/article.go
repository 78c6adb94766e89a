package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CategoryFootball   = "Football"
	CategoryBasketball = "Basketball"
	CategoryHandball   = "Handball"
	CategoryOther      = "Other"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Article is created once by an admin and never edited afterwards; the only
// mutation path is deletion.
type Article struct {
	gorm.Model
	Title      string     `gorm:"size:255;not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	ImageURL   *string    `gorm:"size:512" json:"image_url,omitempty"`
	Category   string     `gorm:"size:32;index;not null" json:"category"`
	AuthorName string     `gorm:"size:191;not null" json:"author_name"`
	MatchDate  *time.Time `json:"match_date,omitempty"`
	Score      *string    `gorm:"size:32" json:"score,omitempty"`
	Status     string     `gorm:"size:16;index;default:published" json:"status"`
}

func (Article) TableName() string {
	return "articles"
}

// ValidCategory reports whether c is one of the fixed category values the
// admin form offers.
func ValidCategory(c string) bool {
	switch c {
	case CategoryFootball, CategoryBasketball, CategoryHandball, CategoryOther:
		return true
	}
	return false
}
