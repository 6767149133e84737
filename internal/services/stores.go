package services

import (
	"context"

	"github.com/google/uuid"

	"cofounderbase/internal/models"
	"cofounderbase/internal/repositories"
)

// Store interfaces consumed by the services. The pgx repositories are the
// production implementations; tests substitute in-memory fakes.
//
// Reads return (nil, nil) for a miss; writes return repositories.ErrNotFound
// when no row matched.

type ProfileStore interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Update(ctx context.Context, profile *models.Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters repositories.ProfileFilters) ([]models.Profile, error)
}

type FeatureStore interface {
	Create(ctx context.Context, feature *models.Feature) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Feature, error)
	List(ctx context.Context) ([]models.Feature, error)

	// AddVote and RemoveVote are guarded, per-record atomic updates.
	// A (nil, nil) return means the guard did not match: the row is gone
	// or the voter's membership changed concurrently.
	AddVote(ctx context.Context, id uuid.UUID, voter string) (*models.Feature, error)
	RemoveVote(ctx context.Context, id uuid.UUID, voter string) (*models.Feature, error)
}

type SettingsStore interface {
	Get(ctx context.Context) (*models.Settings, error)
	Create(ctx context.Context, settings *models.Settings) error
	Update(ctx context.Context, settings *models.Settings) error
}

// Notifier is the transactional email side channel. Failures are logged and
// never fail the parent operation.
type Notifier interface {
	SendSubmissionConfirmation(to, name string) error
	SendProfileApproval(to, name, profileURL string) error
}
