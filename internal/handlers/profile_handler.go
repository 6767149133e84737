package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cofounderbase/internal/responses"
	"cofounderbase/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ListProfiles handles GET /api/v1/profiles
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}

	profiles, err := h.profileService.List(c.Request.Context(), filters)
	if err != nil {
		responses.FromError(c, err, "Failed to retrieve profiles")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"profiles": profiles,
		"count":    len(profiles),
	}, "Profiles retrieved successfully")
}

// SubmitProfile handles POST /api/v1/profiles
func (h *ProfileHandler) SubmitProfile(c *gin.Context) {
	var req services.SubmitProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	profile, err := h.profileService.Submit(c.Request.Context(), req)
	if err != nil {
		responses.FromError(c, err, "Failed to submit profile")
		return
	}

	responses.Success(c, http.StatusCreated, profile, "Profile submitted successfully")
}

// GetProfile handles GET /api/v1/profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		responses.FromError(c, err, "Failed to retrieve profile")
		return
	}

	responses.Success(c, http.StatusOK, profile, "Profile retrieved successfully")
}

// UpdateProfile handles PATCH /api/v1/profiles/:id
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var patch services.UpdateProfileRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		responses.FromError(c, err, "Failed to update profile")
		return
	}

	responses.Success(c, http.StatusOK, profile, "Profile updated successfully")
}

// DeleteProfile handles DELETE /api/v1/profiles/:id
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		responses.FromError(c, err, "Failed to delete profile")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Profile deleted successfully")
}
