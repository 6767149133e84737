package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cofounderbase/internal/models"
)

// ProfileFilters is the store-level query form produced by the directory
// service. Zero values mean "no constraint".
type ProfileFilters struct {
	Status       string // already normalized; empty means all statuses
	Featured     *bool
	Type         string
	Industry     string // tag membership
	Skills       string // tag membership
	SkillsNeeded string // tag membership
	Location     string // case-insensitive substring
	StartupStage string
	Availability string
	Limit        int
}

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `
	id, full_name, email, location, linkedin_url, profile_picture, type,
	looking_for, bio, industry, skills, skills_needed, availability,
	startup_stage, startup_name, website, company_description, funding_stage,
	team_size, experience, previous_startups, commitment, status, featured,
	created_at, updated_at
`

func (r *ProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (
			id, full_name, email, location, linkedin_url, profile_picture, type,
			looking_for, bio, industry, skills, skills_needed, availability,
			startup_stage, startup_name, website, company_description,
			funding_stage, team_size, experience, previous_startups, commitment,
			status, featured
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		RETURNING created_at, updated_at
	`

	return r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.FullName,
		profile.Email,
		profile.Location,
		profile.LinkedinURL,
		profile.ProfilePicture,
		profile.Type,
		profile.LookingFor,
		profile.Bio,
		profile.Industry,
		profile.Skills,
		profile.SkillsNeeded,
		profile.Availability,
		profile.StartupStage,
		profile.StartupName,
		profile.Website,
		profile.CompanyDescription,
		profile.FundingStage,
		profile.TeamSize,
		profile.Experience,
		profile.PreviousStartups,
		profile.Commitment,
		profile.Status,
		profile.Featured,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	query := `SELECT` + profileColumns + `FROM profiles WHERE id = $1`

	profile, err := scanProfileRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *models.Profile) error {
	query := `
		UPDATE profiles SET
			full_name = $2, email = $3, location = $4, linkedin_url = $5,
			profile_picture = $6, type = $7, looking_for = $8, bio = $9,
			industry = $10, skills = $11, skills_needed = $12, availability = $13,
			startup_stage = $14, startup_name = $15, website = $16,
			company_description = $17, funding_stage = $18, team_size = $19,
			experience = $20, previous_startups = $21, commitment = $22,
			status = $23, featured = $24, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		profile.ID,
		profile.FullName,
		profile.Email,
		profile.Location,
		profile.LinkedinURL,
		profile.ProfilePicture,
		profile.Type,
		profile.LookingFor,
		profile.Bio,
		profile.Industry,
		profile.Skills,
		profile.SkillsNeeded,
		profile.Availability,
		profile.StartupStage,
		profile.StartupName,
		profile.Website,
		profile.CompanyDescription,
		profile.FundingStage,
		profile.TeamSize,
		profile.Experience,
		profile.PreviousStartups,
		profile.Commitment,
		profile.Status,
		profile.Featured,
	).Scan(&profile.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// List runs the directory query. Filters combine with AND; ordering is
// newest first.
func (r *ProfileRepository) List(ctx context.Context, filters ProfileFilters) ([]models.Profile, error) {
	var (
		conditions []string
		args       []interface{}
	)

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.Status != "" {
		conditions = append(conditions, "status = "+arg(filters.Status))
	}
	if filters.Featured != nil {
		conditions = append(conditions, "featured = "+arg(*filters.Featured))
	}
	if filters.Type != "" {
		conditions = append(conditions, "type = "+arg(filters.Type))
	}
	if filters.Industry != "" {
		conditions = append(conditions, arg(filters.Industry)+" = ANY(industry)")
	}
	if filters.Skills != "" {
		conditions = append(conditions, arg(filters.Skills)+" = ANY(skills)")
	}
	if filters.SkillsNeeded != "" {
		conditions = append(conditions, arg(filters.SkillsNeeded)+" = ANY(skills_needed)")
	}
	if filters.Location != "" {
		conditions = append(conditions, "location ILIKE "+arg("%"+filters.Location+"%"))
	}
	if filters.StartupStage != "" {
		conditions = append(conditions, "startup_stage = "+arg(filters.StartupStage))
	}
	if filters.Availability != "" {
		conditions = append(conditions, "availability = "+arg(filters.Availability))
	}

	query := `SELECT` + profileColumns + `FROM profiles`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if filters.Limit > 0 {
		query += " LIMIT " + arg(filters.Limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		profile, err := scanProfileRow(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}

	return profiles, rows.Err()
}

func scanProfileRow(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID,
		&p.FullName,
		&p.Email,
		&p.Location,
		&p.LinkedinURL,
		&p.ProfilePicture,
		&p.Type,
		&p.LookingFor,
		&p.Bio,
		&p.Industry,
		&p.Skills,
		&p.SkillsNeeded,
		&p.Availability,
		&p.StartupStage,
		&p.StartupName,
		&p.Website,
		&p.CompanyDescription,
		&p.FundingStage,
		&p.TeamSize,
		&p.Experience,
		&p.PreviousStartups,
		&p.Commitment,
		&p.Status,
		&p.Featured,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
