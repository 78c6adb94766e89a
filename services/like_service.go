package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sportsnews/config"
	"sportsnews/global"
	"sportsnews/models"
)

var (
	// ErrToggleInFlight is returned when a toggle for the same
	// (article, user) pair is still outstanding.
	ErrToggleInFlight = errors.New("like toggle already in flight")

	ErrArticleNotFound = errors.New("article not found")
)

var likeToggles inflightGuard

const likeRankKey = "rank:article:likes"

func likeCountKey(articleID uint) string {
	return "article:" + strconv.FormatUint(uint64(articleID), 10) + ":likes"
}

func toggleKey(articleID, userID uint) string {
	return fmt.Sprintf("%d:%d", articleID, userID)
}

type ToggleResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

// ToggleLike flips the (article, user) like relation. The row set in the
// database is the count authority: insert and delete run in one transaction
// against it, and the cached counter is re-derived from a row count rather
// than incremented, so the two cannot drift apart for longer than one
// round trip. Concurrent toggles for the same pair are rejected, which keeps
// rapid double-clicks from producing duplicate rows or a skewed counter.
func ToggleLike(articleID, userID uint) (*ToggleResult, error) {
	key := toggleKey(articleID, userID)
	if !likeToggles.TryAcquire(key) {
		return nil, ErrToggleInFlight
	}
	defer likeToggles.Release(key)

	var (
		liked bool
		count int64
	)
	err := global.Db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.Select("id").First(&article, articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArticleNotFound
			}
			return err
		}

		var existing models.Like
		err := tx.Where("article_id = ? AND user_id = ?", articleID, userID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.Like{ArticleID: articleID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			liked = true
		default:
			return err
		}

		return tx.Model(&models.Like{}).Where("article_id = ?", articleID).Count(&count).Error
	})
	if err != nil {
		return nil, err
	}

	refreshLikeCache(articleID, count)

	return &ToggleResult{Liked: liked, Count: count}, nil
}

// LikeStatus reports the like count for an article and, when userID is
// non-zero, whether that user has liked it. Both values come from the same
// store in the same call; a storage error surfaces as an error rather than
// a false "not liked".
func LikeStatus(articleID, userID uint) (count int64, liked bool, err error) {
	count, err = GetLikesCount(articleID)
	if err != nil {
		return 0, false, err
	}
	if userID == 0 {
		return count, false, nil
	}

	var n int64
	err = global.Db.Model(&models.Like{}).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Count(&n).Error
	if err != nil {
		return 0, false, err
	}
	return count, n > 0, nil
}

// GetLikesCount reads the cached count, repairing the cache from the row
// count on a miss. Redis being unreachable degrades to the database alone.
func GetLikesCount(articleID uint) (int64, error) {
	if global.RedisDB != nil {
		val, err := global.RedisDB.Get(likeCountKey(articleID)).Result()
		if err == nil {
			if count, perr := strconv.ParseInt(val, 10, 64); perr == nil {
				return count, nil
			}
		} else if err != redis.Nil {
			global.Logger.Warn("like count cache read failed, falling back to database",
				zap.Uint("article_id", articleID), zap.Error(err))
		}
	}

	var count int64
	if err := global.Db.Model(&models.Like{}).Where("article_id = ?", articleID).Count(&count).Error; err != nil {
		return 0, err
	}
	refreshLikeCache(articleID, count)
	return count, nil
}

// refreshLikeCache writes the authoritative count into the per-article key
// and the rank ZSET. Cache failures are logged and ignored: the next read
// repairs from the database.
func refreshLikeCache(articleID uint, count int64) {
	if global.RedisDB == nil {
		return
	}
	ttl := time.Duration(likeCacheTTLSeconds()) * time.Second
	member := strconv.FormatUint(uint64(articleID), 10)

	pipe := global.RedisDB.TxPipeline()
	pipe.Set(likeCountKey(articleID), count, ttl)
	pipe.ZAdd(likeRankKey, redis.Z{Score: float64(count), Member: member})
	if _, err := pipe.Exec(); err != nil {
		global.Logger.Warn("like count cache refresh failed",
			zap.Uint("article_id", articleID), zap.Error(err))
	}
}

// PurgeLikeCache drops an article's cached count and its rank entry once
// the article is gone, so neither the count endpoint nor the top list can
// serve a deleted article. Best-effort like refreshLikeCache.
func PurgeLikeCache(articleID uint) {
	if global.RedisDB == nil {
		return
	}
	member := strconv.FormatUint(uint64(articleID), 10)

	pipe := global.RedisDB.TxPipeline()
	pipe.Del(likeCountKey(articleID))
	pipe.ZRem(likeRankKey, member)
	if _, err := pipe.Exec(); err != nil {
		global.Logger.Warn("like count cache purge failed",
			zap.Uint("article_id", articleID), zap.Error(err))
	}
}

func likeCacheTTLSeconds() int {
	if config.AppConfig == nil || config.AppConfig.Likes.CacheTTLSeconds <= 0 {
		return 300
	}
	return config.AppConfig.Likes.CacheTTLSeconds
}

type RankedArticle struct {
	ID    uint   `json:"id"`
	Title string `json:"title,omitempty"`
	Likes int64  `json:"likes"`
	Rank  int    `json:"rank"`
}

// TopArticles returns the top-n articles by like count from the rank ZSET,
// with titles looked up best-effort.
func TopArticles(n int) ([]RankedArticle, error) {
	if n <= 0 {
		n = 10
	}
	if global.RedisDB == nil {
		return []RankedArticle{}, nil
	}
	zres, err := global.RedisDB.ZRevRangeWithScores(likeRankKey, 0, int64(n-1)).Result()
	if err != nil {
		if err == redis.Nil {
			return []RankedArticle{}, nil
		}
		return nil, err
	}

	list := make([]RankedArticle, 0, len(zres))
	for idx, z := range zres {
		member, _ := z.Member.(string)
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		item := RankedArticle{ID: uint(id), Likes: int64(z.Score), Rank: idx + 1}
		var art models.Article
		if err := global.Db.Select("title").First(&art, uint(id)).Error; err == nil {
			item.Title = art.Title
		}
		list = append(list, item)
	}
	return list, nil
}
