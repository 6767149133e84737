package routes

import (
	"github.com/gin-gonic/gin"

	"cofounderbase/internal/handlers"
)

type SettingsRoutes struct {
	handler *handlers.SettingsHandler
}

func NewSettingsRoutes(handler *handlers.SettingsHandler) *SettingsRoutes {
	return &SettingsRoutes{handler: handler}
}

func (r *SettingsRoutes) RegisterRoutes(router *gin.RouterGroup, adminRequired gin.HandlerFunc) {
	settings := router.Group("/settings")
	{
		settings.GET("", r.handler.GetSettings)
		settings.PUT("", adminRequired, r.handler.UpdateSettings)
	}
}
