package services

import (
	"context"
	"fmt"

	"cofounderbase/internal/apperrors"
	"cofounderbase/internal/logger"
	"cofounderbase/internal/models"
	"cofounderbase/internal/repositories"
	"cofounderbase/internal/utils"
)

// ProfileService owns the moderation workflow: public submission, admin
// review, and the notification side effects on state transitions.
type ProfileService struct {
	store     ProfileStore
	directory *DirectoryService
	notifier  Notifier
	baseURL   string
}

func NewProfileService(store ProfileStore, directory *DirectoryService, notifier Notifier, baseURL string) *ProfileService {
	return &ProfileService{
		store:     store,
		directory: directory,
		notifier:  notifier,
		baseURL:   baseURL,
	}
}

type SubmitProfileRequest struct {
	FullName       string   `json:"fullName" binding:"required"`
	Email          string   `json:"email" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	LinkedinURL    string   `json:"linkedinUrl" binding:"required"`
	ProfilePicture *string  `json:"profilePicture"`
	Type           string   `json:"type" binding:"required"`
	LookingFor     string   `json:"lookingFor" binding:"required"`
	Bio            string   `json:"bio" binding:"required"`
	Industry       []string `json:"industry"`
	Skills         []string `json:"skills"`
	SkillsNeeded   []string `json:"skillsNeeded"`
	Availability   string   `json:"availability" binding:"required"`
	StartupStage   string   `json:"startupStage" binding:"required"`
	StartupName    *string  `json:"startupName"`
	Website        *string  `json:"website"`

	CompanyDescription *string `json:"companyDescription"`
	FundingStage       *string `json:"fundingStage"`
	TeamSize           *string `json:"teamSize"`

	Experience       *string `json:"experience"`
	PreviousStartups *string `json:"previousStartups"`
	Commitment       *string `json:"commitment"`
}

func (r *SubmitProfileRequest) validate() []string {
	var problems []string

	required := map[string]string{
		"fullName":    r.FullName,
		"email":       r.Email,
		"location":    r.Location,
		"linkedinUrl": r.LinkedinURL,
		"lookingFor":  r.LookingFor,
		"bio":         r.Bio,
	}
	for field, value := range required {
		if value == "" {
			problems = append(problems, field+" is required")
		}
	}

	if len(r.Bio) > models.MaxBioLength {
		problems = append(problems, fmt.Sprintf("bio must be at most %d characters", models.MaxBioLength))
	}
	if r.Type != models.TypeFounder && r.Type != models.TypeCoFounder {
		problems = append(problems, "type must be 'Founder' or 'Co-founder'")
	}
	if len(r.Industry) == 0 {
		problems = append(problems, "at least one industry is required")
	}
	if len(r.Skills) == 0 {
		problems = append(problems, "at least one skill is required")
	}
	if !utils.Contains(models.Availabilities, r.Availability) {
		problems = append(problems, "availability must be one of Full-time, Part-time, Advisory")
	}
	if !utils.Contains(models.StartupStages, r.StartupStage) {
		problems = append(problems, "startupStage must be one of Idea, MVP, Growth, Scaling")
	}

	return problems
}

// Submit validates a public submission and persists it as a pending,
// non-featured profile. The confirmation email is best-effort; the
// submission succeeds once persisted.
func (s *ProfileService) Submit(ctx context.Context, req SubmitProfileRequest) (*models.Profile, error) {
	if problems := req.validate(); len(problems) > 0 {
		return nil, apperrors.Validation("profile", "invalid profile submission").WithDetails(problems)
	}

	profile := &models.Profile{
		FullName:           req.FullName,
		Email:              req.Email,
		Location:           req.Location,
		LinkedinURL:        req.LinkedinURL,
		ProfilePicture:     req.ProfilePicture,
		Type:               req.Type,
		LookingFor:         req.LookingFor,
		Bio:                req.Bio,
		Industry:           req.Industry,
		Skills:             req.Skills,
		Availability:       req.Availability,
		StartupStage:       req.StartupStage,
		StartupName:        req.StartupName,
		Website:            req.Website,
		CompanyDescription: req.CompanyDescription,
		FundingStage:       req.FundingStage,
		TeamSize:           req.TeamSize,
		Experience:         req.Experience,
		PreviousStartups:   req.PreviousStartups,
		Commitment:         req.Commitment,
	}

	// skillsNeeded only means something on a Founder profile.
	if req.Type == models.TypeFounder {
		profile.SkillsNeeded = req.SkillsNeeded
	}

	profile.Prepare()

	if err := s.store.Create(ctx, profile); err != nil {
		return nil, apperrors.Storage("profile", err)
	}

	if err := s.notifier.SendSubmissionConfirmation(profile.Email, profile.FullName); err != nil {
		logger.Error("submission confirmation email failed",
			"error", apperrors.Notification("profile", err), "profileId", profile.ID)
	}

	return profile, nil
}

// UpdateProfileRequest is the admin patch. Every field is independently
// optional; nil means "not supplied" as opposed to "explicitly cleared".
type UpdateProfileRequest struct {
	FullName       *string   `json:"fullName"`
	Email          *string   `json:"email"`
	Location       *string   `json:"location"`
	LinkedinURL    *string   `json:"linkedinUrl"`
	ProfilePicture *string   `json:"profilePicture"`
	Type           *string   `json:"type"`
	LookingFor     *string   `json:"lookingFor"`
	Bio            *string   `json:"bio"`
	Industry       *[]string `json:"industry"`
	Skills         *[]string `json:"skills"`
	SkillsNeeded   *[]string `json:"skillsNeeded"`
	Availability   *string   `json:"availability"`
	StartupStage   *string   `json:"startupStage"`
	StartupName    *string   `json:"startupName"`
	Website        *string   `json:"website"`

	CompanyDescription *string `json:"companyDescription"`
	FundingStage       *string `json:"fundingStage"`
	TeamSize           *string `json:"teamSize"`

	Experience       *string `json:"experience"`
	PreviousStartups *string `json:"previousStartups"`
	Commitment       *string `json:"commitment"`

	Status   *string `json:"status"`
	Featured *bool   `json:"featured"`
}

func (r *UpdateProfileRequest) apply(p *models.Profile) {
	if r.FullName != nil {
		p.FullName = *r.FullName
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.LinkedinURL != nil {
		p.LinkedinURL = *r.LinkedinURL
	}
	if r.ProfilePicture != nil {
		p.ProfilePicture = r.ProfilePicture
	}
	if r.Type != nil {
		p.Type = *r.Type
	}
	if r.LookingFor != nil {
		p.LookingFor = *r.LookingFor
	}
	if r.Bio != nil {
		p.Bio = *r.Bio
	}
	if r.Industry != nil {
		p.Industry = *r.Industry
	}
	if r.Skills != nil {
		p.Skills = *r.Skills
	}
	if r.SkillsNeeded != nil {
		p.SkillsNeeded = *r.SkillsNeeded
	}
	if r.Availability != nil {
		p.Availability = *r.Availability
	}
	if r.StartupStage != nil {
		p.StartupStage = *r.StartupStage
	}
	if r.StartupName != nil {
		p.StartupName = r.StartupName
	}
	if r.Website != nil {
		p.Website = r.Website
	}
	if r.CompanyDescription != nil {
		p.CompanyDescription = r.CompanyDescription
	}
	if r.FundingStage != nil {
		p.FundingStage = r.FundingStage
	}
	if r.TeamSize != nil {
		p.TeamSize = r.TeamSize
	}
	if r.Experience != nil {
		p.Experience = r.Experience
	}
	if r.PreviousStartups != nil {
		p.PreviousStartups = r.PreviousStartups
	}
	if r.Commitment != nil {
		p.Commitment = r.Commitment
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.Featured != nil {
		p.Featured = *r.Featured
	}
}

// Update applies an admin patch. Patch fields are applied as supplied;
// field-level validity is the schema's responsibility. A transition into
// 'approved' from any other status triggers exactly one approval email.
func (s *ProfileService) Update(ctx context.Context, id string, patch UpdateProfileRequest) (*models.Profile, error) {
	uid, err := utils.ParseUUID(id)
	if err != nil {
		return nil, apperrors.NotFound("profile", "profile not found")
	}

	profile, err := s.store.GetByID(ctx, uid)
	if err != nil {
		return nil, apperrors.Storage("profile", err)
	}
	if profile == nil {
		return nil, apperrors.NotFound("profile", "profile not found")
	}

	wasApproved := profile.Status == models.StatusApproved
	patch.apply(profile)

	if err := s.store.Update(ctx, profile); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NotFound("profile", "profile not found")
		}
		return nil, apperrors.Storage("profile", err)
	}

	if !wasApproved && profile.Status == models.StatusApproved {
		profileURL := fmt.Sprintf("%s/profile/%s", s.baseURL, profile.ID)
		if err := s.notifier.SendProfileApproval(profile.Email, profile.FullName, profileURL); err != nil {
			logger.Error("approval email failed",
				"error", apperrors.Notification("profile", err), "profileId", profile.ID)
		}
	}

	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (*models.Profile, error) {
	uid, err := utils.ParseUUID(id)
	if err != nil {
		return nil, apperrors.NotFound("profile", "profile not found")
	}

	profile, err := s.store.GetByID(ctx, uid)
	if err != nil {
		return nil, apperrors.Storage("profile", err)
	}
	if profile == nil {
		return nil, apperrors.NotFound("profile", "profile not found")
	}
	return profile, nil
}

func (s *ProfileService) Delete(ctx context.Context, id string) error {
	uid, err := utils.ParseUUID(id)
	if err != nil {
		return apperrors.NotFound("profile", "profile not found")
	}

	if err := s.store.Delete(ctx, uid); err != nil {
		if apperrors.Is(err, repositories.ErrNotFound) {
			return apperrors.NotFound("profile", "profile not found")
		}
		return apperrors.Storage("profile", err)
	}
	return nil
}

// List delegates to the directory query service.
func (s *ProfileService) List(ctx context.Context, filters map[string]string) ([]models.Profile, error) {
	return s.directory.List(ctx, filters)
}
