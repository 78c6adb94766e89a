package services

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sportsnews/config"
	"sportsnews/global"
	"sportsnews/models"
)

func setupTestEnv(t *testing.T) {
	t.Helper()

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
}

func mustCreateArticle(t *testing.T, title string) models.Article {
	t.Helper()
	article := models.Article{
		Title:      title,
		Content:    "match report",
		Category:   models.CategoryFootball,
		AuthorName: "desk",
		Status:     models.StatusPublished,
	}
	require.NoError(t, global.Db.Create(&article).Error)
	return article
}

func mustCreateUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "irrelevant"}
	require.NoError(t, global.Db.Create(&user).Error)
	return user
}
