package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"outreach-tracker/internal/config"
	"outreach-tracker/internal/handlers"
	"outreach-tracker/internal/scheduler"
	"outreach-tracker/internal/store"
)

func main() {
	configPath := getEnv("CONFIG_PATH", "config/outreach.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	dbType := appConfig.Database.Type
	if dbType == "" {
		dbType = getEnv("DB_TYPE", "mongo")
	}

	var st store.Store
	switch dbType {
	case "mongo":
		log.Println("Using MongoDB store")
		mongoCfg := appConfig.Database.Mongo
		mongoCfg.URI = getEnvOrConfig(mongoCfg.URI, "MONGO_URI", "mongodb://localhost:27017")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		st, err = store.NewMongoStore(ctx, mongoCfg)
		cancel()
	case "mysql":
		log.Println("Using MySQL store with GORM")
		st, err = store.NewMySQLStore(appConfig.Database.MySQL)
	case "postgres":
		log.Println("Using PostgreSQL store")
		st, err = store.NewPostgresStore(appConfig.Database.Postgres)
	default:
		log.Fatalf("Unknown database type %q", dbType)
	}
	if err != nil {
		log.Fatalf("Failed to connect to %s store: %v", dbType, err)
	}
	defer st.Close()

	// Daily stats snapshot
	appScheduler := scheduler.NewScheduler(st, appConfig)
	if err := appScheduler.Start(); err != nil {
		log.Printf("Warning: failed to start scheduler: %v", err)
	}
	defer appScheduler.Stop()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/health", handlers.Health(st))
	handlers.NewCompanyHandler(st).Register(r)

	port := getEnv("PORT", fmt.Sprintf("%d", appConfig.Server.Port))
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvOrConfig prefers the config value, then the environment, then the
// fallback.
func getEnvOrConfig(configValue, envKey, fallback string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, fallback)
}
