package services

import (
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"sportsnews/config"
	"sportsnews/global"
)

const (
	EventArticleLiked   = "article.liked"
	EventArticleUnliked = "article.unliked"
	EventCommentCreated = "comment.created"
)

type engagementEvent struct {
	Kind      string    `json:"kind"`
	ArticleID uint      `json:"article_id"`
	UserID    uint      `json:"user_id"`
	At        time.Time `json:"at"`
}

// PublishEngagementEvent pushes a like/comment event onto the engagement
// queue for downstream consumers. Publishing is fire-and-forget: a broker
// failure is logged and never fails the originating request nor is the
// message retried.
func PublishEngagementEvent(kind string, articleID, userID uint) {
	if global.RabbitChannel == nil {
		return
	}

	body, err := json.Marshal(engagementEvent{
		Kind:      kind,
		ArticleID: articleID,
		UserID:    userID,
		At:        time.Now().UTC(),
	})
	if err != nil {
		global.Logger.Error("failed to encode engagement event", zap.Error(err))
		return
	}

	queue := config.AppConfig.RabbitMQ.Queue
	if queue == "" {
		queue = "engagement.queue"
	}
	err = global.RabbitChannel.Publish("", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		global.Logger.Error("failed to publish engagement event",
			zap.String("kind", kind),
			zap.Uint("article_id", articleID),
			zap.Error(err))
	}
}
