package config

import (
	"os"
	"path/filepath"

	"freezer-tracker/internal/api/handlers"
	"freezer-tracker/internal/api/routes"
	"freezer-tracker/internal/middleware"
	"freezer-tracker/internal/utils"
	"freezer-tracker/pkg/alert"
	"freezer-tracker/pkg/export"
	"freezer-tracker/pkg/freshness"
	zlog "freezer-tracker/pkg/logger"
	"freezer-tracker/pkg/meal"
	"freezer-tracker/pkg/milk"
	"freezer-tracker/pkg/rawfood"
	"freezer-tracker/pkg/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB, log *zap.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	logDir := utils.GetConfig("LOG_DIR")
	if logDir == "" {
		logDir = "./logs"
	}
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		filepath.Join(logDir, "app.log"),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	// Repository
	rawFoodRepository := rawfood.NewRawFoodRepository(db)
	mealRepository := meal.NewMealRepository(db)
	milkRepository := milk.NewMilkRepository(db)
	freshnessRepository := freshness.NewFreshnessRepository(db)
	dismissalRepository := alert.NewDismissalRepository(db)

	// Service
	freshnessService := freshness.NewFreshnessService(freshnessRepository, zlog.Named(log, "freshness"))
	rawFoodService := rawfood.NewRawFoodService(rawFoodRepository, freshnessService)
	mealService := meal.NewMealService(mealRepository, freshnessService)
	milkService := milk.NewMilkService(milkRepository, freshnessService)
	statsService := stats.NewStatsService(rawFoodRepository, mealRepository, milkRepository)
	alertService := alert.NewAlertService(
		dismissalRepository,
		rawFoodRepository,
		mealRepository,
		milkRepository,
		freshnessService,
	)
	exportService := export.NewExportService(rawFoodRepository, mealRepository, milkRepository)

	// Handler
	rawFoodHandler := handlers.NewRawFoodHandler(rawFoodService, validator)
	mealHandler := handlers.NewMealHandler(mealService, validator)
	milkHandler := handlers.NewMilkHandler(milkService, validator)
	freshnessHandler := handlers.NewFreshnessHandler(freshnessService, validator)
	statsHandler := handlers.NewStatsHandler(statsService)
	alertHandler := handlers.NewAlertHandler(alertService)
	exportHandler := handlers.NewExportHandler(exportService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		RawFoodHandler:   rawFoodHandler,
		MealHandler:      mealHandler,
		MilkHandler:      milkHandler,
		FreshnessHandler: freshnessHandler,
		StatsHandler:     statsHandler,
		AlertHandler:     alertHandler,
		ExportHandler:    exportHandler,
		Middleware:       middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
