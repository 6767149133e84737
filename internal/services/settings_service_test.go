package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cofounderbase/internal/apperrors"
	"cofounderbase/internal/defaults"
)

func TestGetCreatesDefaultsOnFirstRead(t *testing.T) {
	store := &memSettingsStore{}
	svc := NewSettingsService(store, defaults.Settings())

	settings := svc.Get(context.Background())
	require.NotNil(t, settings)
	assert.Contains(t, settings.Industries, "Finance")
	assert.Contains(t, settings.StartupStages, "Idea")

	// The lazily created record is persisted, not rebuilt per read.
	require.NotNil(t, store.stored)
	again := svc.Get(context.Background())
	assert.Equal(t, settings.ID, again.ID)
}

func TestGetServesDefaultsWhenStoreDown(t *testing.T) {
	store := &memSettingsStore{failAll: true}
	svc := NewSettingsService(store, defaults.Settings())

	settings := svc.Get(context.Background())
	require.NotNil(t, settings)
	assert.Contains(t, settings.Skills, "Product Management")
	assert.Nil(t, store.stored, "nothing persisted while the store is down")
}

func TestUpdateReplacesOnlySuppliedKeys(t *testing.T) {
	store := &memSettingsStore{}
	svc := NewSettingsService(store, defaults.Settings())

	industries := []string{"Fintech", "Climate"}
	updated, err := svc.Update(context.Background(), UpdateSettingsRequest{Industries: &industries})
	require.NoError(t, err)

	assert.Equal(t, industries, updated.Industries)
	// Unsupplied keys keep the defaults.
	assert.Equal(t, defaults.Settings().Skills, updated.Skills)
	assert.Equal(t, defaults.Settings().StartupStages, updated.StartupStages)

	skills := []string{"Go", "Design"}
	updated, err = svc.Update(context.Background(), UpdateSettingsRequest{Skills: &skills})
	require.NoError(t, err)
	assert.Equal(t, skills, updated.Skills)
	assert.Equal(t, industries, updated.Industries, "prior update survives")
}

func TestUpdateCreatesSingletonWhenMissing(t *testing.T) {
	store := &memSettingsStore{}
	svc := NewSettingsService(store, defaults.Settings())

	stages := []string{"Idea", "Seed"}
	updated, err := svc.Update(context.Background(), UpdateSettingsRequest{StartupStages: &stages})
	require.NoError(t, err)
	assert.Equal(t, stages, updated.StartupStages)
	require.NotNil(t, store.stored)
	assert.Equal(t, updated.ID, store.stored.ID)
}

func TestUpdateSurfacesStorageError(t *testing.T) {
	store := &memSettingsStore{failAll: true}
	svc := NewSettingsService(store, defaults.Settings())

	industries := []string{"Fintech"}
	_, err := svc.Update(context.Background(), UpdateSettingsRequest{Industries: &industries})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeStorageError))
}
