package main

import (
	"freezer-tracker/cmd/config"
	migration "freezer-tracker/cmd/database/migrate"
	"freezer-tracker/internal/utils"
	"freezer-tracker/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	utils.LoadConfig()
	log := logger.Must(logger.New())
	defer log.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	app, err := config.NewApp(db, log)
	if err != nil {
		log.Fatal("application setup failed", zap.Error(err))
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "3000"
	}
	log.Info("starting server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
