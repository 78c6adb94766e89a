package models

import "gorm.io/gorm"

// Comment belongs to one article and one user. Comments are append-only:
// there is no update or delete path.
type Comment struct {
	gorm.Model
	ArticleID uint   `gorm:"index;not null" json:"article_id"`
	UserID    uint   `gorm:"index;not null" json:"user_id"`
	Content   string `gorm:"type:text;not null" json:"content"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
