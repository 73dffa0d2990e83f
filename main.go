package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"stayops/config"
	"stayops/database"
	"stayops/logger"
	"stayops/metrics"
	"stayops/middleware"
	"stayops/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitConfig()

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       config.AppConfig.LogLevel,
		Environment: config.AppConfig.Environment,
		ServiceName: config.AppConfig.ServiceName,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zap.L().Sync()

	if !config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	httpMetrics := metrics.NewHTTPMetrics(config.AppConfig.ServiceName)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(logger.Middleware())
	r.Use(httpMetrics.Middleware())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}))

	if err := database.InitDB(); err != nil {
		zap.L().Fatal("failed to initialize database", zap.Error(err))
	}
	defer database.CloseDB()

	if err := database.RunMigrations(); err != nil {
		zap.L().Fatal("failed to run migrations", zap.Error(err))
	}
	database.SeedDefaultAdmin()

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	zap.L().Info("server starting", zap.String("addr", "0.0.0.0:"+port))
	if err := r.Run("0.0.0.0:" + port); err != nil {
		zap.L().Fatal("server failed", zap.Error(err))
	}
}
