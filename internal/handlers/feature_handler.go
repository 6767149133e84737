package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cofounderbase/internal/responses"
	"cofounderbase/internal/services"
)

type FeatureHandler struct {
	featureService *services.FeatureService
	voteService    *services.VoteService
}

func NewFeatureHandler(featureService *services.FeatureService, voteService *services.VoteService) *FeatureHandler {
	return &FeatureHandler{
		featureService: featureService,
		voteService:    voteService,
	}
}

// ListFeatures handles GET /api/v1/features
func (h *FeatureHandler) ListFeatures(c *gin.Context) {
	features := h.featureService.List(c.Request.Context())

	responses.Success(c, http.StatusOK, gin.H{
		"features": features,
		"count":    len(features),
	}, "Features retrieved successfully")
}

// CreateFeature handles POST /api/v1/features
func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	var req services.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid request body")
		return
	}

	feature, err := h.featureService.Create(c.Request.Context(), req)
	if err != nil {
		responses.FromError(c, err, "Failed to create feature")
		return
	}

	responses.Success(c, http.StatusCreated, feature, "Feature created successfully")
}

// ToggleVote handles POST /api/v1/features/:id/vote
func (h *FeatureHandler) ToggleVote(c *gin.Context) {
	voter := voterIdentity(c)

	feature, err := h.voteService.Toggle(c.Request.Context(), c.Param("id"), voter)
	if err != nil {
		responses.FromError(c, err, "Failed to record vote")
		return
	}

	message := "Vote removed successfully"
	if feature.HasVoted(voter) {
		message = "Vote recorded successfully"
	}

	responses.Success(c, http.StatusOK, gin.H{"votes": feature.Votes}, message)
}

// WithdrawVote handles DELETE /api/v1/features/:id/vote
func (h *FeatureHandler) WithdrawVote(c *gin.Context) {
	voter := voterIdentity(c)

	feature, err := h.voteService.Withdraw(c.Request.Context(), c.Param("id"), voter)
	if err != nil {
		responses.FromError(c, err, "Failed to remove vote")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{"votes": feature.Votes}, "Vote removed successfully")
}

// voterIdentity derives the vote-deduplication key from the request origin.
// Best-effort; a spoofed header yields a different key, nothing more.
func voterIdentity(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		// first hop is the original client
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return strings.TrimSpace(xff)
	}
	if rip := c.GetHeader("X-Real-IP"); rip != "" {
		return rip
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "anonymous"
}
