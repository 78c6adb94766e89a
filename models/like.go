package models

import "time"

// Like records that a user liked an article. The composite unique index
// enforces at most one like per (article, user); rows are hard-deleted on
// unlike so the index stays usable across re-likes.
type Like struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ArticleID uint      `gorm:"uniqueIndex:idx_likes_article_user;not null" json:"article_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_likes_article_user;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}
