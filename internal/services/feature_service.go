package services

import (
	"context"
	"sort"

	"cofounderbase/internal/apperrors"
	"cofounderbase/internal/logger"
	"cofounderbase/internal/models"
	"cofounderbase/internal/utils"
)

// FeatureService serves the public feature catalog. Listing degrades to the
// injected fallback catalog when the store is unreachable so the board stays
// browsable; writes never fall back.
type FeatureService struct {
	store    FeatureStore
	fallback []models.Feature
}

func NewFeatureService(store FeatureStore, fallback []models.Feature) *FeatureService {
	return &FeatureService{store: store, fallback: fallback}
}

// List returns the catalog sorted by votes descending. On a store failure
// the fallback catalog is served and the degraded read is logged.
func (s *FeatureService) List(ctx context.Context) []models.Feature {
	features, err := s.store.List(ctx)
	if err != nil {
		logger.Warn("feature store unavailable, serving fallback catalog",
			"degraded", true, "error", apperrors.Storage("feature", err))
		return s.fallbackCatalog()
	}
	if features == nil {
		features = []models.Feature{}
	}
	return features
}

func (s *FeatureService) fallbackCatalog() []models.Feature {
	catalog := make([]models.Feature, len(s.fallback))
	copy(catalog, s.fallback)
	sort.SliceStable(catalog, func(i, j int) bool {
		return catalog[i].Votes > catalog[j].Votes
	})
	return catalog
}

type CreateFeatureRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	Priority      string   `json:"priority"`
	Status        string   `json:"status"`
	EstimatedTime string   `json:"estimatedTime" binding:"required"`
	Icon          string   `json:"icon" binding:"required"`
	Tags          []string `json:"tags"`
}

func (r *CreateFeatureRequest) validate() []string {
	var problems []string

	if r.Title == "" {
		problems = append(problems, "title is required")
	}
	if r.Description == "" {
		problems = append(problems, "description is required")
	}
	if !utils.Contains(models.FeatureCategories, r.Category) {
		problems = append(problems, "category must be one of Core, Premium, Integration, Analytics, Community")
	}
	if r.Priority != "" && !utils.Contains(models.FeaturePriorities, r.Priority) {
		problems = append(problems, "priority must be one of High, Medium, Low")
	}
	if r.Status != "" && !utils.Contains(models.FeatureStatuses, r.Status) {
		problems = append(problems, "status must be one of Planned, In Development, Coming Soon, Released")
	}
	if r.EstimatedTime == "" {
		problems = append(problems, "estimatedTime is required")
	}
	if r.Icon == "" {
		problems = append(problems, "icon is required")
	}

	return problems
}

// Create adds a feature proposal to the catalog. Admin-only at the route
// layer; new features start with an empty voter set.
func (s *FeatureService) Create(ctx context.Context, req CreateFeatureRequest) (*models.Feature, error) {
	if problems := req.validate(); len(problems) > 0 {
		return nil, apperrors.Validation("feature", "invalid feature").WithDetails(problems)
	}

	feature := &models.Feature{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		Status:        req.Status,
		EstimatedTime: req.EstimatedTime,
		Icon:          req.Icon,
		Tags:          req.Tags,
	}
	if feature.Tags == nil {
		feature.Tags = []string{}
	}
	feature.Prepare()

	if err := s.store.Create(ctx, feature); err != nil {
		return nil, apperrors.Storage("feature", err)
	}
	return feature, nil
}
