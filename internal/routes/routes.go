package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofounderbase/internal/handlers"
)

func RegisterRoutes(
	router *gin.Engine,
	profileHandler *handlers.ProfileHandler,
	featureHandler *handlers.FeatureHandler,
	settingsHandler *handlers.SettingsHandler,
	adminRequired gin.HandlerFunc,
) {
	api := router.Group("/api/v1")

	profileRoutes := NewProfileRoutes(profileHandler)
	profileRoutes.RegisterRoutes(api, adminRequired)

	featureRoutes := NewFeatureRoutes(featureHandler)
	featureRoutes.RegisterRoutes(api, adminRequired)

	settingsRoutes := NewSettingsRoutes(settingsHandler)
	settingsRoutes.RegisterRoutes(api, adminRequired)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
