package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"cofounderbase/internal/config"
	"cofounderbase/internal/database"
	"cofounderbase/internal/defaults"
	"cofounderbase/internal/email"
	"cofounderbase/internal/handlers"
	"cofounderbase/internal/logger"
	"cofounderbase/internal/middlewares"
	"cofounderbase/internal/repositories"
	"cofounderbase/internal/routes"
	"cofounderbase/internal/services"
)

// NewServer wires the full application and returns a configured
// http.Server ready for ListenAndServe.
func NewServer() (*http.Server, error) {
	cfg := config.Load()
	logger.Init(cfg.Env)

	pool, err := database.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.RunMigrations(ctx, pool); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := database.SeedFeatures(ctx, pool, defaults.Features()); err != nil {
		return nil, fmt.Errorf("failed to seed features: %w", err)
	}

	// Dependency injection
	profileRepo := repositories.NewProfileRepository(pool)
	featureRepo := repositories.NewFeatureRepository(pool)
	settingsRepo := repositories.NewSettingsRepository(pool)

	notifier := email.FromConfig(cfg.SMTP)

	directoryService := services.NewDirectoryService(profileRepo)
	profileService := services.NewProfileService(profileRepo, directoryService, notifier, cfg.BaseURL)
	featureService := services.NewFeatureService(featureRepo, defaults.Features())
	voteService := services.NewVoteService(featureRepo)
	settingsService := services.NewSettingsService(settingsRepo, defaults.Settings())

	profileHandler := handlers.NewProfileHandler(profileService)
	featureHandler := handlers.NewFeatureHandler(featureService, voteService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.BaseURL},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Admin-Password"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	adminRequired := middlewares.AdminRequired(cfg.AdminPassword)
	routes.RegisterRoutes(router, profileHandler, featureHandler, settingsHandler, adminRequired)

	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, moderation endpoints are unprotected")
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}, nil
}
