package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cofounderbase/internal/models"
)

type FeatureRepository struct {
	pool *pgxpool.Pool
}

func NewFeatureRepository(pool *pgxpool.Pool) *FeatureRepository {
	return &FeatureRepository{pool: pool}
}

const featureColumns = `
	id, title, description, category, priority, status, estimated_time,
	votes, voters, icon, tags, created_at, updated_at
`

func (r *FeatureRepository) Create(ctx context.Context, feature *models.Feature) error {
	query := `
		INSERT INTO features (id, title, description, category, priority, status,
			estimated_time, votes, voters, icon, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	return r.pool.QueryRow(ctx, query,
		feature.ID,
		feature.Title,
		feature.Description,
		feature.Category,
		feature.Priority,
		feature.Status,
		feature.EstimatedTime,
		feature.Votes,
		feature.Voters,
		feature.Icon,
		feature.Tags,
	).Scan(&feature.CreatedAt, &feature.UpdatedAt)
}

func (r *FeatureRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Feature, error) {
	query := `SELECT` + featureColumns + `FROM features WHERE id = $1`

	feature, err := scanFeatureRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return feature, nil
}

// List returns the catalog with the most-voted features first.
func (r *FeatureRepository) List(ctx context.Context) ([]models.Feature, error) {
	query := `SELECT` + featureColumns + `FROM features ORDER BY votes DESC, created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var features []models.Feature
	for rows.Next() {
		feature, err := scanFeatureRow(rows)
		if err != nil {
			return nil, err
		}
		features = append(features, *feature)
	}

	return features, rows.Err()
}

// AddVote appends the voter and recomputes the cached count in a single
// guarded UPDATE so concurrent toggles stay per-record atomic. Returns
// (nil, nil) when the guard does not match, i.e. the row is gone or the
// voter is already in the set.
func (r *FeatureRepository) AddVote(ctx context.Context, id uuid.UUID, voter string) (*models.Feature, error) {
	query := `
		UPDATE features
		SET voters = array_append(voters, $2),
		    votes = cardinality(array_append(voters, $2)),
		    updated_at = now()
		WHERE id = $1 AND NOT ($2 = ANY(voters))
		RETURNING` + featureColumns

	feature, err := scanFeatureRow(r.pool.QueryRow(ctx, query, id, voter))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return feature, nil
}

// RemoveVote is the inverse of AddVote. The membership guard means the count
// can never go negative; removal only happens when the voter is a confirmed
// set member.
func (r *FeatureRepository) RemoveVote(ctx context.Context, id uuid.UUID, voter string) (*models.Feature, error) {
	query := `
		UPDATE features
		SET voters = array_remove(voters, $2),
		    votes = cardinality(array_remove(voters, $2)),
		    updated_at = now()
		WHERE id = $1 AND $2 = ANY(voters)
		RETURNING` + featureColumns

	feature, err := scanFeatureRow(r.pool.QueryRow(ctx, query, id, voter))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return feature, nil
}

func scanFeatureRow(row pgx.Row) (*models.Feature, error) {
	var f models.Feature
	err := row.Scan(
		&f.ID,
		&f.Title,
		&f.Description,
		&f.Category,
		&f.Priority,
		&f.Status,
		&f.EstimatedTime,
		&f.Votes,
		&f.Voters,
		&f.Icon,
		&f.Tags,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
