package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name string
		Port string
		Mode string
	}
	Database struct {
		Dsn          string
		MaxIdleConns int
		MaxOpenConns int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	RabbitMQ struct {
		Url   string
		Queue string
	}
	JWT struct {
		Secret      string
		ExpireHours int
	}
	Likes struct {
		CacheTTLSeconds int
	}
}

var AppConfig *Config

func InitConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file: %v", err)
	}

	AppConfig = &Config{}

	if err := viper.Unmarshal(AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct: %v", err)
	}

	// Secrets come from the environment in deployed setups.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		AppConfig.JWT.Secret = secret
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		AppConfig.Database.Dsn = dsn
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		AppConfig.Redis.Addr = addr
	}
	if AppConfig.JWT.ExpireHours <= 0 {
		AppConfig.JWT.ExpireHours = 72
	}
	if AppConfig.Likes.CacheTTLSeconds <= 0 {
		AppConfig.Likes.CacheTTLSeconds = 300
	}

	initLogger()
	initDB()
	initRedis()
	initRabbit()
}
