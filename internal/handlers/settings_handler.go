package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofounderbase/internal/responses"
	"cofounderbase/internal/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings := h.settingsService.Get(c.Request.Context())
	responses.Success(c, http.StatusOK, settings, "Settings retrieved successfully")
}

// UpdateSettings handles PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req services.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), req)
	if err != nil {
		responses.FromError(c, err, "Failed to update settings")
		return
	}

	responses.Success(c, http.StatusOK, settings, "Settings updated successfully")
}
