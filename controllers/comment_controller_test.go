package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportsnews/global"
	"sportsnews/models"
)

type commentListResponse struct {
	Comments []struct {
		ID        uint      `json:"id"`
		ArticleID uint      `json:"article_id"`
		Content   string    `json:"content"`
		Author    string    `json:"author"`
		CreatedAt time.Time `json:"created_at"`
	} `json:"comments"`
}

func TestListCommentsWithAuthorFallback(t *testing.T) {
	r := setupTestServer(t)
	article := createArticle(t, "press conference", models.CategoryFootball, models.StatusPublished, time.Now())

	named, _ := createUser(t, "named@example.com", "Maria Silva")
	anon, _ := createUser(t, "plain@example.com", "")

	base := time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)
	first := models.Comment{ArticleID: article.ID, UserID: named.ID, Content: "great read"}
	first.CreatedAt = base
	require.NoError(t, global.Db.Create(&first).Error)
	second := models.Comment{ArticleID: article.ID, UserID: anon.ID, Content: "agreed"}
	second.CreatedAt = base.Add(time.Minute)
	require.NoError(t, global.Db.Create(&second).Error)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/articles/%d/comments", article.ID), "", nil)
	requireStatus(t, w, http.StatusOK)

	var resp commentListResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Comments, 2)

	// Newest first; the byline falls back to the email when the profile has
	// no full name.
	assert.Equal(t, "agreed", resp.Comments[0].Content)
	assert.Equal(t, "plain@example.com", resp.Comments[0].Author)
	assert.Equal(t, "great read", resp.Comments[1].Content)
	assert.Equal(t, "Maria Silva", resp.Comments[1].Author)
}

func TestCreateCommentRequiresAuth(t *testing.T) {
	r := setupTestServer(t)
	article := createArticle(t, "match recap", models.CategoryFootball, models.StatusPublished, time.Now())

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/articles/%d/comments", article.ID), "", gin.H{"content": "hi"})
	requireStatus(t, w, http.StatusUnauthorized)

	var n int64
	require.NoError(t, global.Db.Model(&models.Comment{}).Count(&n).Error)
	assert.Equal(t, int64(0), n)
}

func TestCreateComment(t *testing.T) {
	r := setupTestServer(t)
	article := createArticle(t, "half time notes", models.CategoryBasketball, models.StatusPublished, time.Now())
	user, token := createUser(t, "fan@example.com", "Fan One")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/articles/%d/comments", article.ID), token, gin.H{"content": "what a game"})
	requireStatus(t, w, http.StatusCreated)

	var created struct {
		ID      uint   `json:"id"`
		Content string `json:"content"`
		Author  string `json:"author"`
		UserID  uint   `json:"user_id"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, "what a game", created.Content)
	assert.Equal(t, "Fan One", created.Author)
	assert.Equal(t, user.ID, created.UserID)
}

func TestCreateCommentEmptyContent(t *testing.T) {
	r := setupTestServer(t)
	article := createArticle(t, "quiet day", models.CategoryOther, models.StatusPublished, time.Now())
	_, token := createUser(t, "fan@example.com", "Fan")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/articles/%d/comments", article.ID), token, gin.H{"content": ""})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestCreateCommentWhitespaceOnly(t *testing.T) {
	r := setupTestServer(t)
	article := createArticle(t, "slow news day", models.CategoryOther, models.StatusPublished, time.Now())
	_, token := createUser(t, "fan@example.com", "Fan")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/articles/%d/comments", article.ID), token, gin.H{"content": "   \n\t  "})
	requireStatus(t, w, http.StatusBadRequest)

	var n int64
	require.NoError(t, global.Db.Model(&models.Comment{}).Count(&n).Error)
	assert.Equal(t, int64(0), n, "blank comment must not be stored")
}

func TestCreateCommentTrimsContent(t *testing.T) {
	r := setupTestServer(t)
	article := createArticle(t, "post-match reaction", models.CategoryFootball, models.StatusPublished, time.Now())
	_, token := createUser(t, "fan@example.com", "Fan")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/articles/%d/comments", article.ID), token, gin.H{"content": "  well played  "})
	requireStatus(t, w, http.StatusCreated)

	var created struct {
		Content string `json:"content"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, "well played", created.Content)
}

func TestCreateCommentUnknownArticle(t *testing.T) {
	r := setupTestServer(t)
	_, token := createUser(t, "fan@example.com", "Fan")

	w := doJSON(t, r, http.MethodPost, "/api/articles/777777/comments", token, gin.H{"content": "hello"})
	requireStatus(t, w, http.StatusNotFound)
}
