// @title Pretty Exam API
// @version 1.0
// @description Servidor backend de Pretty Exam: autoría de preguntas, exámenes y simulaciones.

// @host localhost:8080
// @BasePath /api

package main

import (
	"log"
	"pretty_exam_backend/internal/app"
	"pretty_exam_backend/internal/config"
	"pretty_exam_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
