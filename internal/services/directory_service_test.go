package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cofounderbase/internal/apperrors"
	"cofounderbase/internal/models"
)

func seedProfile(t *testing.T, store *memProfileStore, mutate func(*models.Profile)) *models.Profile {
	t.Helper()
	p := &models.Profile{
		FullName:     "Ann Lee",
		Email:        "ann@example.com",
		Location:     "Berlin, Germany",
		LinkedinURL:  "https://linkedin.com/in/annlee",
		Type:         models.TypeFounder,
		LookingFor:   "Technical co-founder",
		Bio:          "Second-time founder.",
		Industry:     []string{"Fintech"},
		Skills:       []string{"Sales"},
		Availability: "Full-time",
		StartupStage: "MVP",
	}
	p.Prepare()
	if mutate != nil {
		mutate(p)
	}
	require.NoError(t, store.Create(context.Background(), p))
	return p
}

func TestListDefaultsToApproved(t *testing.T) {
	store := newMemProfileStore()
	seedProfile(t, store, nil) // pending
	approved := seedProfile(t, store, func(p *models.Profile) { p.Status = models.StatusApproved })
	seedProfile(t, store, func(p *models.Profile) { p.Status = models.StatusRejected })

	svc := NewDirectoryService(store)

	profiles, err := svc.List(context.Background(), map[string]string{})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, approved.ID, profiles[0].ID)
}

func TestListStatusAllRemovesFilter(t *testing.T) {
	store := newMemProfileStore()
	seedProfile(t, store, nil)
	seedProfile(t, store, func(p *models.Profile) { p.Status = models.StatusApproved })
	seedProfile(t, store, func(p *models.Profile) { p.Status = models.StatusRejected })

	svc := NewDirectoryService(store)

	profiles, err := svc.List(context.Background(), map[string]string{"status": "all"})
	require.NoError(t, err)
	assert.Len(t, profiles, 3)
}

func TestListFilters(t *testing.T) {
	store := newMemProfileStore()
	fintech := seedProfile(t, store, func(p *models.Profile) {
		p.Status = models.StatusApproved
		p.Industry = []string{"Fintech", "AI/ML"}
	})
	seedProfile(t, store, func(p *models.Profile) {
		p.Status = models.StatusApproved
		p.Industry = []string{"Healthcare"}
		p.Location = "Austin, TX"
		p.Type = models.TypeCoFounder
	})

	svc := NewDirectoryService(store)

	profiles, err := svc.List(context.Background(), map[string]string{"industry": "Fintech"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, fintech.ID, profiles[0].ID)

	// Tag membership is exact, not substring.
	profiles, err = svc.List(context.Background(), map[string]string{"industry": "Fin"})
	require.NoError(t, err)
	assert.Empty(t, profiles)

	// Location is a case-insensitive substring match.
	profiles, err = svc.List(context.Background(), map[string]string{"location": "berlin"})
	require.NoError(t, err)
	assert.Len(t, profiles, 1)

	profiles, err = svc.List(context.Background(), map[string]string{"type": models.TypeCoFounder})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Austin, TX", profiles[0].Location)

	// Filters combine with AND.
	profiles, err = svc.List(context.Background(), map[string]string{
		"industry": "Fintech",
		"location": "austin",
	})
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestListFeaturedAndLimit(t *testing.T) {
	store := newMemProfileStore()
	for i := 0; i < 5; i++ {
		seedProfile(t, store, func(p *models.Profile) {
			p.Status = models.StatusApproved
			p.Featured = i%2 == 0
		})
	}

	svc := NewDirectoryService(store)

	profiles, err := svc.List(context.Background(), map[string]string{"featured": "true"})
	require.NoError(t, err)
	assert.Len(t, profiles, 3)

	profiles, err = svc.List(context.Background(), map[string]string{"limit": "2"})
	require.NoError(t, err)
	assert.Len(t, profiles, 2)

	// Malformed values are ignored rather than rejected.
	profiles, err = svc.List(context.Background(), map[string]string{"featured": "maybe", "limit": "lots"})
	require.NoError(t, err)
	assert.Len(t, profiles, 5)
}

func TestListNewestFirst(t *testing.T) {
	store := newMemProfileStore()
	older := seedProfile(t, store, func(p *models.Profile) { p.Status = models.StatusApproved })
	newer := seedProfile(t, store, func(p *models.Profile) { p.Status = models.StatusApproved })

	svc := NewDirectoryService(store)

	profiles, err := svc.List(context.Background(), map[string]string{})
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, newer.ID, profiles[0].ID)
	assert.Equal(t, older.ID, profiles[1].ID)
}

func TestListIgnoresUnknownKeys(t *testing.T) {
	store := newMemProfileStore()
	seedProfile(t, store, func(p *models.Profile) { p.Status = models.StatusApproved })

	svc := NewDirectoryService(store)

	profiles, err := svc.List(context.Background(), map[string]string{"sortBy": "votes", "page": "2"})
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}

func TestListSurfacesStorageError(t *testing.T) {
	store := newMemProfileStore()
	store.failAll = true
	svc := NewDirectoryService(store)

	_, err := svc.List(context.Background(), map[string]string{})
	assert.True(t, apperrors.IsCode(err, apperrors.CodeStorageError))
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	svc := NewDirectoryService(newMemProfileStore())

	profiles, err := svc.List(context.Background(), map[string]string{})
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}
