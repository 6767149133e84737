package services

import (
	"context"

	"cofounderbase/internal/apperrors"
	"cofounderbase/internal/logger"
	"cofounderbase/internal/models"
)

// SettingsService manages the singleton option-list record. The record is
// created lazily from the injected defaults on first read; reads degrade to
// the defaults when the store is down, writes do not.
type SettingsService struct {
	store    SettingsStore
	defaults models.Settings
}

func NewSettingsService(store SettingsStore, defaults models.Settings) *SettingsService {
	return &SettingsService{store: store, defaults: defaults}
}

// Get returns the active settings, persisting the defaults first if no
// record exists yet.
func (s *SettingsService) Get(ctx context.Context) *models.Settings {
	settings, err := s.store.Get(ctx)
	if err != nil {
		logger.Warn("settings store unavailable, serving defaults",
			"degraded", true, "error", apperrors.Storage("settings", err))
		d := s.defaults
		return &d
	}
	if settings != nil {
		return settings
	}

	created := s.defaults
	created.Prepare()
	if err := s.store.Create(ctx, &created); err != nil {
		logger.Warn("failed to persist default settings, serving defaults",
			"degraded", true, "error", apperrors.Storage("settings", err))
		d := s.defaults
		return &d
	}
	return &created
}

// UpdateSettingsRequest is a per-key upsert: nil keeps the stored list,
// non-nil replaces it wholesale.
type UpdateSettingsRequest struct {
	Industries    *[]string `json:"industries"`
	Skills        *[]string `json:"skills"`
	StartupStages *[]string `json:"startupStages"`
}

// Update upserts the singleton. This is a write path: store failures are
// surfaced, never masked with defaults.
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.store.Get(ctx)
	if err != nil {
		return nil, apperrors.Storage("settings", err)
	}

	creating := settings == nil
	if creating {
		base := s.defaults
		settings = &base
		settings.Prepare()
	}

	if req.Industries != nil {
		settings.Industries = *req.Industries
	}
	if req.Skills != nil {
		settings.Skills = *req.Skills
	}
	if req.StartupStages != nil {
		settings.StartupStages = *req.StartupStages
	}

	if creating {
		err = s.store.Create(ctx, settings)
	} else {
		err = s.store.Update(ctx, settings)
	}
	if err != nil {
		return nil, apperrors.Storage("settings", err)
	}
	return settings, nil
}
