package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportsnews/global"
	"sportsnews/models"
	"sportsnews/services"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type createArticleInput struct {
	Title      string     `json:"title" binding:"required"`
	Content    string     `json:"content" binding:"required"`
	Category   string     `json:"category" binding:"required"`
	AuthorName string     `json:"author_name" binding:"required"`
	ImageURL   string     `json:"image_url"`
	MatchDate  *time.Time `json:"match_date"`
	Score      string     `json:"score"`
	Status     string     `json:"status"`
}

// ListArticles returns published articles newest-first, optionally narrowed
// by exact category and a keyword filter over title/content. Results are
// offset-paginated; the unfiltered total rides along for the client.
func ListArticles(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	query := global.Db.Model(&models.Article{}).Where("status = ?", models.StatusPublished)

	if category := ctx.Query("category"); category != "" && category != "all" {
		if !models.ValidCategory(category) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		query = query.Where("category = ?", category)
	}
	if q := ctx.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var articles []models.Article
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&articles).Error
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"articles":  articles,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// ListAllArticles is the admin listing: every article regardless of status,
// newest first, so a draft is reachable from the admin panel without knowing
// its id.
func ListAllArticles(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	query := global.Db.Model(&models.Article{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var articles []models.Article
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&articles).Error
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"articles":  articles,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func GetArticleByID(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var article models.Article
	if err := global.Db.First(&article, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, article)
}

// CreateArticle validates the fixed admin-form field set before touching the
// database. Blank optional fields are stored as NULL, never as empty
// strings.
func CreateArticle(ctx *gin.Context) {
	var input createArticleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidCategory(input.Category) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	status := input.Status
	if status == "" {
		status = models.StatusPublished
	}
	if status != models.StatusDraft && status != models.StatusPublished {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}

	article := models.Article{
		Title:      input.Title,
		Content:    input.Content,
		Category:   input.Category,
		AuthorName: input.AuthorName,
		MatchDate:  input.MatchDate,
		Status:     status,
	}
	if input.ImageURL != "" {
		article.ImageURL = &input.ImageURL
	}
	if input.Score != "" {
		article.Score = &input.Score
	}

	if err := global.Db.Create(&article).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	global.Logger.Info("article created",
		zap.Uint("article_id", article.ID),
		zap.String("category", article.Category))

	ctx.JSON(http.StatusCreated, article)
}

// DeleteArticle removes the article together with its likes and comments.
func DeleteArticle(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	err = global.Db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, uint(id)).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&article).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.PurgeLikeCache(uint(id))

	global.Logger.Info("article deleted", zap.Uint64("article_id", id))

	ctx.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}
