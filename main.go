package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"sportsnews/config"
	"sportsnews/global"
	"sportsnews/router"
)

func main() {
	config.InitConfig()
	defer global.Logger.Sync()

	if config.AppConfig.App.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.SetupRouter()

	port := config.AppConfig.App.Port
	if port == "" {
		port = ":8080"
	}
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
