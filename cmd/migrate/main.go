package main

import (
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/config"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/database"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/env"
	"github.com/KaiserXLabs/kxl-gmail-signature-update/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(&model.SignatureLog{})
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
}
