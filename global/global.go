package global

import (
	"github.com/go-redis/redis"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	Db            *gorm.DB
	RedisDB       *redis.Client
	RabbitConn    *amqp.Connection
	RabbitChannel *amqp.Channel
	Logger        *zap.Logger
)
