package config

import (
	"log"

	"go.uber.org/zap"

	"sportsnews/global"
)

func initLogger() {
	var (
		logger *zap.Logger
		err    error
	)
	if AppConfig.App.Mode == "release" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	global.Logger = logger
}
