package models

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the singleton record holding the option lists that drive both
// the submission form and the directory filters. Exactly one record is
// logically active; it is created lazily from defaults on first read.
type Settings struct {
	ID            uuid.UUID `json:"id"`
	Industries    []string  `json:"industries"`
	Skills        []string  `json:"skills"`
	StartupStages []string  `json:"startupStages"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (s *Settings) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Industries == nil {
		s.Industries = []string{}
	}
	if s.Skills == nil {
		s.Skills = []string{}
	}
	if s.StartupStages == nil {
		s.StartupStages = []string{}
	}
}
