package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cofounderbase/internal/models"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get returns the active settings record, or (nil, nil) when none has been
// stored yet. The oldest row wins should more than one ever exist.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	query := `
		SELECT id, industries, skills, startup_stages, created_at, updated_at
		FROM settings ORDER BY created_at ASC LIMIT 1
	`

	var s models.Settings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.Industries,
		&s.Skills,
		&s.StartupStages,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Create(ctx context.Context, settings *models.Settings) error {
	query := `
		INSERT INTO settings (id, industries, skills, startup_stages)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	return r.pool.QueryRow(ctx, query,
		settings.ID,
		settings.Industries,
		settings.Skills,
		settings.StartupStages,
	).Scan(&settings.CreatedAt, &settings.UpdatedAt)
}

func (r *SettingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	query := `
		UPDATE settings SET
			industries = $2, skills = $3, startup_stages = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	return r.pool.QueryRow(ctx, query,
		settings.ID,
		settings.Industries,
		settings.Skills,
		settings.StartupStages,
	).Scan(&settings.UpdatedAt)
}
