package routes

import (
	"github.com/gin-gonic/gin"

	"cofounderbase/internal/handlers"
)

type ProfileRoutes struct {
	handler *handlers.ProfileHandler
}

func NewProfileRoutes(handler *handlers.ProfileHandler) *ProfileRoutes {
	return &ProfileRoutes{handler: handler}
}

func (r *ProfileRoutes) RegisterRoutes(router *gin.RouterGroup, adminRequired gin.HandlerFunc) {
	profiles := router.Group("/profiles")
	{
		profiles.GET("", r.handler.ListProfiles)
		profiles.POST("", r.handler.SubmitProfile)
		profiles.GET("/:id", r.handler.GetProfile)

		// Moderation is admin-only.
		profiles.PATCH("/:id", adminRequired, r.handler.UpdateProfile)
		profiles.DELETE("/:id", adminRequired, r.handler.DeleteProfile)
	}
}
