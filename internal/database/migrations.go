package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cofounderbase/internal/logger"
)

// RunMigrations applies the schema in order. Every statement is idempotent
// so the set can run on every startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	migrations := []string{
		createEnumTypes,
		createProfilesTable,
		createFeaturesTable,
		createSettingsTable,
	}

	for i, migration := range migrations {
		logger.Debug("running migration", "step", i+1, "total", len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("all migrations completed")
	return nil
}

const createEnumTypes = `
DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'profile_type_t') THEN
    CREATE TYPE profile_type_t AS ENUM ('Founder', 'Co-founder');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'profile_status_t') THEN
    CREATE TYPE profile_status_t AS ENUM ('pending', 'approved', 'rejected');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'availability_t') THEN
    CREATE TYPE availability_t AS ENUM ('Full-time', 'Part-time', 'Advisory');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'startup_stage_t') THEN
    CREATE TYPE startup_stage_t AS ENUM ('Idea', 'MVP', 'Growth', 'Scaling');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'feature_category_t') THEN
    CREATE TYPE feature_category_t AS ENUM ('Core', 'Premium', 'Integration', 'Analytics', 'Community');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'feature_priority_t') THEN
    CREATE TYPE feature_priority_t AS ENUM ('High', 'Medium', 'Low');
  END IF;
END$$;

DO $$
BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'feature_status_t') THEN
    CREATE TYPE feature_status_t AS ENUM ('Planned', 'In Development', 'Coming Soon', 'Released');
  END IF;
END$$;
`

const createProfilesTable = `
CREATE TABLE IF NOT EXISTS profiles (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  full_name TEXT NOT NULL,
  email TEXT NOT NULL,
  location TEXT NOT NULL,
  linkedin_url TEXT NOT NULL,
  profile_picture TEXT,
  type profile_type_t NOT NULL,
  looking_for TEXT NOT NULL,
  bio VARCHAR(300) NOT NULL,
  industry TEXT[] NOT NULL DEFAULT '{}',
  skills TEXT[] NOT NULL DEFAULT '{}',
  skills_needed TEXT[],
  availability availability_t NOT NULL,
  startup_stage startup_stage_t NOT NULL,
  startup_name TEXT,
  website TEXT,
  company_description TEXT,
  funding_stage TEXT,
  team_size TEXT,
  experience TEXT,
  previous_startups TEXT,
  commitment TEXT,
  status profile_status_t NOT NULL DEFAULT 'pending',
  featured BOOLEAN NOT NULL DEFAULT FALSE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_profiles_status_created ON profiles (status, created_at DESC);
`

// votes is a derived cache of the voter array's cardinality; the CHECK keeps
// the two from diverging regardless of which code path writes the row.
const createFeaturesTable = `
CREATE TABLE IF NOT EXISTS features (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  category feature_category_t NOT NULL,
  priority feature_priority_t NOT NULL DEFAULT 'Medium',
  status feature_status_t NOT NULL DEFAULT 'Planned',
  estimated_time TEXT NOT NULL,
  votes INTEGER NOT NULL DEFAULT 0 CHECK (votes >= 0),
  voters TEXT[] NOT NULL DEFAULT '{}',
  icon TEXT NOT NULL,
  tags TEXT[] NOT NULL DEFAULT '{}',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  CONSTRAINT votes_match_voters CHECK (votes = cardinality(voters))
);
`

const createSettingsTable = `
CREATE TABLE IF NOT EXISTS settings (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  industries TEXT[] NOT NULL DEFAULT '{}',
  skills TEXT[] NOT NULL DEFAULT '{}',
  startup_stages TEXT[] NOT NULL DEFAULT '{}',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
