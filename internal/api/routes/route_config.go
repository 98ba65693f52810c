package routes

import (
	"freezer-tracker/internal/api/handlers"
	"freezer-tracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	RawFoodHandler   handlers.RawFoodHandler
	MealHandler      handlers.MealHandler
	MilkHandler      handlers.MilkHandler
	FreshnessHandler handlers.FreshnessHandler
	StatsHandler     handlers.StatsHandler
	AlertHandler     handlers.AlertHandler
	ExportHandler    handlers.ExportHandler
	Middleware       middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.App.Use(c.Middleware.RequestID())
	c.RawFood()
	c.PreparedMeals()
	c.BreastMilk()
	c.Freshness()
	c.Household()
	c.GuestRoute()
}

func (c *Config) RawFood() {
	rawFood := c.App.Group("/api/raw-food")
	{
		rawFood.Get("", c.RawFoodHandler.ListActive)
		rawFood.Get("/consumed", c.RawFoodHandler.ListConsumed)
		rawFood.Get("/names/:subCategory", c.RawFoodHandler.Names)
		rawFood.Post("", c.RawFoodHandler.Create)
		rawFood.Post("/:id/take-out", c.RawFoodHandler.TakeOut)
		rawFood.Post("/:id/put-back", c.RawFoodHandler.PutBack)
		rawFood.Patch("/:id", c.RawFoodHandler.Update)
		rawFood.Delete("/:id", c.RawFoodHandler.Delete)
	}
}

func (c *Config) PreparedMeals() {
	meals := c.App.Group("/api/prepared-meals")
	{
		meals.Get("", c.MealHandler.ListActive)
		meals.Get("/consumed", c.MealHandler.ListConsumed)
		meals.Get("/names", c.MealHandler.Names)
		meals.Post("", c.MealHandler.Create)
		meals.Post("/:id/take-out", c.MealHandler.TakeOut)
		meals.Post("/:id/put-back", c.MealHandler.PutBack)
		meals.Patch("/:id", c.MealHandler.Update)
		meals.Delete("/:id", c.MealHandler.Delete)
	}
}

func (c *Config) BreastMilk() {
	milk := c.App.Group("/api/breast-milk")
	{
		milk.Get("", c.MilkHandler.ListActive)
		milk.Get("/consumed", c.MilkHandler.ListConsumed)
		milk.Post("", c.MilkHandler.Create)
		milk.Post("/:id/take-out", c.MilkHandler.TakeOut)
		milk.Post("/:id/put-back", c.MilkHandler.PutBack)
		milk.Patch("/:id", c.MilkHandler.Update)
		milk.Delete("/:id", c.MilkHandler.Delete)
	}
}

func (c *Config) Freshness() {
	settings := c.App.Group("/api/freshness-settings")
	{
		settings.Get("", c.FreshnessHandler.GetSettings)
		settings.Patch("/:id", c.FreshnessHandler.UpdateSetting)
	}
}

func (c *Config) Household() {
	c.App.Get("/api/stats", c.StatsHandler.GetStats)
	c.App.Get("/api/red-zone-dismissed", c.AlertHandler.Dismissed)
	c.App.Post("/api/red-zone-dismiss", c.AlertHandler.Dismiss)
	c.App.Get("/api/red-zone", c.AlertHandler.RedZone)
	c.App.Get("/api/export", c.ExportHandler.Download)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
