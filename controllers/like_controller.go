package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportsnews/middlewares"
	"sportsnews/services"
)

// ToggleLike flips the caller's like on an article. A toggle already in
// flight for the same (article, user) pair is rejected with 409 so rapid
// double-clicks cannot race each other.
func ToggleLike(ctx *gin.Context) {
	articleID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}
	userID := middlewares.CurrentUserID(ctx)

	result, err := services.ToggleLike(uint(articleID), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrToggleInFlight):
			ctx.JSON(http.StatusConflict, gin.H{"error": "like toggle already in progress"})
		case errors.Is(err, services.ErrArticleNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	event := services.EventArticleUnliked
	if result.Liked {
		event = services.EventArticleLiked
	}
	services.PublishEngagementEvent(event, uint(articleID), userID)

	ctx.JSON(http.StatusOK, result)
}

// GetLikeStatus reports the like count and, for an authenticated caller,
// whether they liked the article. Anonymous callers always see liked=false.
func GetLikeStatus(ctx *gin.Context) {
	articleID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}
	userID := middlewares.CurrentUserID(ctx)

	count, liked, err := services.LikeStatus(uint(articleID), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"count": count, "liked": liked})
}

// GetTopArticles returns the most-liked articles from the rank ZSET.
func GetTopArticles(ctx *gin.Context) {
	top, err := strconv.Atoi(ctx.DefaultQuery("top", "10"))
	if err != nil || top <= 0 {
		top = 10
	}

	list, err := services.TopArticles(top)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"list": list})
}
