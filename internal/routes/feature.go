package routes

import (
	"github.com/gin-gonic/gin"

	"cofounderbase/internal/handlers"
)

type FeatureRoutes struct {
	handler *handlers.FeatureHandler
}

func NewFeatureRoutes(handler *handlers.FeatureHandler) *FeatureRoutes {
	return &FeatureRoutes{handler: handler}
}

func (r *FeatureRoutes) RegisterRoutes(router *gin.RouterGroup, adminRequired gin.HandlerFunc) {
	features := router.Group("/features")
	{
		features.GET("", r.handler.ListFeatures)
		features.POST("", adminRequired, r.handler.CreateFeature)

		features.POST("/:id/vote", r.handler.ToggleVote)
		features.DELETE("/:id/vote", r.handler.WithdrawVote)
	}
}
