package main

import (
	"context"
	"log"
	"os"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/infrastructure/migration"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	// infra setup
	pool, err := infra.NewResumesPool(ctx)
	if err != nil {
		log.Printf("warning: resumes DB not available: %v", err)
	}
	if pool != nil {
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	resumes := repo.NewResumesRepo(pool)
	renderer := infra.NewChromedpRenderer()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(recover.New())

	h := httpadapter.NewHandler(resumes, renderer)
	h.Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
