package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sportsnews/config"
	"sportsnews/global"
	"sportsnews/middlewares"
	"sportsnews/models"
	"sportsnews/utils"
)

func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.Secret = "test-secret"
	config.AppConfig.JWT.ExpireHours = 1
	config.AppConfig.Likes.CacheTTLSeconds = 60
	global.Logger = zap.NewNop()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Comment{},
		&models.Like{},
	))
	global.Db = db

	mr := miniredis.RunT(t)
	global.RedisDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		global.RedisDB.Close()
		global.RedisDB = nil
		global.Db = nil
	})

	// Route table mirrors router.SetupRouter minus the CORS layer, which is
	// irrelevant under httptest.
	r := gin.New()
	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", Register)
	auth.POST("/login", Login)
	auth.GET("/session", middlewares.AuthRequired(), GetSession)
	auth.POST("/logout", middlewares.AuthRequired(), Logout)

	articles := api.Group("/articles")
	articles.GET("", ListArticles)
	articles.GET("/top", GetTopArticles)
	articles.GET("/:id", GetArticleByID)
	articles.GET("/:id/comments", ListComments)
	articles.GET("/:id/like", middlewares.AuthOptional(), GetLikeStatus)
	articles.GET("/all", middlewares.AuthRequired(), ListAllArticles)
	articles.POST("", middlewares.AuthRequired(), CreateArticle)
	articles.DELETE("/:id", middlewares.AuthRequired(), DeleteArticle)
	articles.POST("/:id/comments", middlewares.AuthRequired(), CreateComment)
	articles.POST("/:id/like", middlewares.AuthRequired(), ToggleLike)

	return r
}

func createUser(t *testing.T, email, fullName string) (models.User, string) {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	user := models.User{Email: email, Password: hash, FullName: fullName}
	require.NoError(t, global.Db.Create(&user).Error)

	token, err := utils.GenerateJWT(user.ID, user.Email)
	require.NoError(t, err)
	return user, token
}

func createArticle(t *testing.T, title, category, status string, createdAt time.Time) models.Article {
	t.Helper()
	article := models.Article{
		Title:      title,
		Content:    "match report for " + title,
		Category:   category,
		AuthorName: "desk",
		Status:     status,
	}
	article.CreatedAt = createdAt
	require.NoError(t, global.Db.Create(&article).Error)
	return article
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
