package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/wardrobe/internal/config"
	"github.com/example/wardrobe/internal/database"
	"github.com/example/wardrobe/internal/seed"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	// Bootstrap must finish before the process accepts traffic.
	err := seed.Run(db, seed.Config{
		AdminEmail:    cfg.AdminEmail,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		StockPolicy: seed.StockPolicy{
			FixedQuantity: cfg.SeedStockQuantity,
			Random:        cfg.SeedStockRandom,
		},
	})
	if err != nil {
		log.Fatalf("bootstrap failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName: "Wardrobe Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
