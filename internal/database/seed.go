package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cofounderbase/internal/logger"
	"cofounderbase/internal/models"
)

// SeedFeatures inserts the starter feature catalog when the table is empty.
// Existing rows (and their votes) are never touched.
func SeedFeatures(ctx context.Context, pool *pgxpool.Pool, features []models.Feature) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM features`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count features: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `
		INSERT INTO features (id, title, description, category, priority, status, estimated_time, votes, voters, icon, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for i := range features {
		f := &features[i]
		f.Prepare()
		_, err := pool.Exec(ctx, query,
			f.ID,
			f.Title,
			f.Description,
			f.Category,
			f.Priority,
			f.Status,
			f.EstimatedTime,
			f.Votes,
			f.Voters,
			f.Icon,
			f.Tags,
		)
		if err != nil {
			return fmt.Errorf("failed to seed feature %q: %w", f.Title, err)
		}
	}

	logger.Info("seeded feature catalog", "count", len(features))
	return nil
}
