package models

import (
	"time"

	"github.com/google/uuid"
)

// Feature categories.
var FeatureCategories = []string{"Core", "Premium", "Integration", "Analytics", "Community"}

// Feature priorities and lifecycle statuses.
var (
	FeaturePriorities = []string{"High", "Medium", "Low"}
	FeatureStatuses   = []string{"Planned", "In Development", "Coming Soon", "Released"}
)

// Feature is a proposed product capability open for public voting.
// Votes is a derived cache of the voter set's cardinality; the two must
// never diverge.
type Feature struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Priority      string    `json:"priority"`
	Status        string    `json:"status"`
	EstimatedTime string    `json:"estimatedTime"`
	Votes         int       `json:"votes"`
	Voters        []string  `json:"-"` // caller network addresses, admin-only
	Icon          string    `json:"icon"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Prepare assigns an ID and defaults before the first insert.
func (f *Feature) Prepare() {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.Priority == "" {
		f.Priority = "Medium"
	}
	if f.Status == "" {
		f.Status = "Planned"
	}
	if f.Voters == nil {
		f.Voters = []string{}
	}
	f.Votes = len(f.Voters)
}

// HasVoted reports whether the given identifier already holds a vote.
func (f *Feature) HasVoted(voter string) bool {
	for _, v := range f.Voters {
		if v == voter {
			return true
		}
	}
	return false
}
