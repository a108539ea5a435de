package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	httpadapter "cv-studio/internal/adapter/http"
	repo "cv-studio/internal/adapter/repository"
	"cv-studio/internal/export"
	"cv-studio/internal/usecase"
	"cv-studio/pkg/ai"
	infra "cv-studio/pkg/infrastructure"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	editor := usecase.NewEditor(repo.NewSessionsRepo(), ai.NewClient())
	pipeline := export.NewPipeline(infra.NewChromedpCapturer(), infra.NewChromedpPrinter())

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // photo uploads
	})
	httpadapter.NewHandler(editor, pipeline).Register(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("cv-studio listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
