package services

import (
	"context"
	"strconv"

	"cofounderbase/internal/apperrors"
	"cofounderbase/internal/models"
	"cofounderbase/internal/repositories"
)

// DirectoryService translates a caller-supplied filter set into a store
// query. It adds no ranking of its own; ordering is the store's natural
// newest-first.
type DirectoryService struct {
	store ProfileStore
}

func NewDirectoryService(store ProfileStore) *DirectoryService {
	return &DirectoryService{store: store}
}

// List applies the recognized filter keys and ignores everything else.
// All supplied keys combine with AND. The status filter defaults to
// 'approved'; the reserved value 'all' removes it (admin listings).
func (s *DirectoryService) List(ctx context.Context, filters map[string]string) ([]models.Profile, error) {
	query := repositories.ProfileFilters{
		Type:         filters["type"],
		Industry:     filters["industry"],
		Skills:       filters["skills"],
		SkillsNeeded: filters["skillsNeeded"],
		Location:     filters["location"],
		StartupStage: filters["startupStage"],
		Availability: filters["availability"],
	}

	status, ok := filters["status"]
	if !ok || status == "" {
		status = models.StatusApproved
	}
	if status != "all" {
		query.Status = status
	}

	if v, ok := filters["featured"]; ok {
		if featured, err := strconv.ParseBool(v); err == nil {
			query.Featured = &featured
		}
	}

	if v, ok := filters["limit"]; ok {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			query.Limit = limit
		}
	}

	profiles, err := s.store.List(ctx, query)
	if err != nil {
		return nil, apperrors.Storage("directory", err)
	}
	if profiles == nil {
		profiles = []models.Profile{}
	}
	return profiles, nil
}
