package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile status values. A profile always starts out pending and only an
// admin update moves it to approved or rejected. Neither state is terminal:
// a later update may move it back.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Profile types.
const (
	TypeFounder   = "Founder"
	TypeCoFounder = "Co-founder"
)

// Canonical availability values. The persisted schema wins over the drifted
// submission-form variant that used 'Weekends' instead of 'Advisory'.
var Availabilities = []string{"Full-time", "Part-time", "Advisory"}

// StartupStages are the recognized lifecycle stages for a listed startup.
var StartupStages = []string{"Idea", "MVP", "Growth", "Scaling"}

// MaxBioLength bounds the free-text biography.
const MaxBioLength = 300

// Profile is a founder/co-founder listing in the directory.
// Email is private and only surfaced to admin callers.
type Profile struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Location       string    `json:"location"`
	LinkedinURL    string    `json:"linkedinUrl"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	Type           string    `json:"type"` // 'Founder' or 'Co-founder'
	LookingFor     string    `json:"lookingFor"`
	Bio            string    `json:"bio"`
	Industry       []string  `json:"industry"`
	Skills         []string  `json:"skills"`       // skills they have
	SkillsNeeded   []string  `json:"skillsNeeded"` // only meaningful for Founders
	Availability   string    `json:"availability"`
	StartupStage   string    `json:"startupStage"`
	StartupName    *string   `json:"startupName,omitempty"`
	Website        *string   `json:"website,omitempty"`

	// Founder-specific fields
	CompanyDescription *string `json:"companyDescription,omitempty"`
	FundingStage       *string `json:"fundingStage,omitempty"`
	TeamSize           *string `json:"teamSize,omitempty"`

	// Co-founder-specific fields
	Experience       *string `json:"experience,omitempty"`
	PreviousStartups *string `json:"previousStartups,omitempty"`
	Commitment       *string `json:"commitment,omitempty"`

	Status    string    `json:"status"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Prepare assigns an ID and normalizes text fields before the first insert.
// Status and featured are forced here so a submitter cannot self-approve.
func (p *Profile) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.FullName = strings.TrimSpace(p.FullName)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	p.Location = strings.TrimSpace(p.Location)
	p.LinkedinURL = strings.TrimSpace(p.LinkedinURL)
	p.LookingFor = strings.TrimSpace(p.LookingFor)
	p.Bio = strings.TrimSpace(p.Bio)
	p.Status = StatusPending
	p.Featured = false
}
