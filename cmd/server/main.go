package main

import (
	"log"
	"math/rand"
	"time"

	"github.com/Rokuonji/soundcompare/internal/config"
	"github.com/Rokuonji/soundcompare/internal/database"
	"github.com/Rokuonji/soundcompare/internal/handlers"
	"github.com/Rokuonji/soundcompare/internal/middleware"
	"github.com/Rokuonji/soundcompare/internal/services"

	_ "github.com/Rokuonji/soundcompare/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Sound Compare API
// @version         1.0
// @description     Data collection backend for the audio quality perceptual study
// @host            localhost:8080
// @BasePath        /

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	submissionService := services.NewSubmissionService(db)
	generatorService := services.NewGeneratorService(db, rng)

	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	adminHandler := handlers.NewAdminHandler(submissionService, generatorService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
	}))

	r.StaticFile("/", "./web/START.html")
	r.Static("/audio", "./web/audio")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.POST("/submit", submissionHandler.Submit)
		api.GET("/admin-data", middleware.AdminCodeQuery(cfg.AdminCode), adminHandler.ListData)
		api.POST("/admin-clear", middleware.AdminCodeJSON(cfg.AdminCode), adminHandler.Clear)
		api.POST("/admin-generate-test", middleware.AdminCodeJSON(cfg.AdminCode), adminHandler.GenerateTest)
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
