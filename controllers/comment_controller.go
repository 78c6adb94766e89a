package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sportsnews/global"
	"sportsnews/middlewares"
	"sportsnews/models"
	"sportsnews/services"
)

type createCommentInput struct {
	Content string `json:"content" binding:"required"`
}

// commentView is the read-side projection of a comment joined with the
// minimal author fields the client displays.
type commentView struct {
	ID        uint      `json:"id"`
	ArticleID uint      `json:"article_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

func toCommentView(c models.Comment) commentView {
	return commentView{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		UserID:    c.UserID,
		Content:   c.Content,
		Author:    c.User.DisplayName(),
		CreatedAt: c.CreatedAt,
	}
}

// ListComments returns the article's comments newest-first, each carrying
// the author byline (full name, else email).
func ListComments(ctx *gin.Context) {
	articleID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var comments []models.Comment
	err = global.Db.
		Preload("User").
		Where("article_id = ?", uint(articleID)).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	views := make([]commentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, toCommentView(c))
	}

	ctx.JSON(http.StatusOK, gin.H{"comments": views})
}

func CreateComment(ctx *gin.Context) {
	articleID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var input createCommentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "comment content must not be blank"})
		return
	}

	var article models.Article
	if err := global.Db.Select("id").First(&article, uint(articleID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	userID := middlewares.CurrentUserID(ctx)
	comment := models.Comment{
		ArticleID: article.ID,
		UserID:    userID,
		Content:   content,
	}
	if err := global.Db.Create(&comment).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := global.Db.Preload("User").First(&comment, comment.ID).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.PublishEngagementEvent(services.EventCommentCreated, article.ID, userID)

	ctx.JSON(http.StatusCreated, toCommentView(comment))
}
