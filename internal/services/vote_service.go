package services

import (
	"context"

	"cofounderbase/internal/apperrors"
	"cofounderbase/internal/models"
	"cofounderbase/internal/utils"
)

// VoteService maintains the one-vote-per-identifier invariant with toggle
// semantics: a repeated vote from the same identifier withdraws the prior
// one. The count invariant (votes == |voters|) is enforced by the store's
// guarded updates; this service only decides direction.
type VoteService struct {
	store FeatureStore
}

func NewVoteService(store FeatureStore) *VoteService {
	return &VoteService{store: store}
}

// toggle attempts bound the retry loop when a concurrent toggle from the
// same identifier wins the guard.
const toggleAttempts = 3

// Toggle casts a vote if the identifier is absent from the voter set and
// withdraws it otherwise. Calling twice in succession with the same
// identifier restores the original count and set.
func (s *VoteService) Toggle(ctx context.Context, id, voter string) (*models.Feature, error) {
	if voter == "" {
		return nil, apperrors.Validation("vote", "voter identifier is required")
	}

	uid, err := utils.ParseUUID(id)
	if err != nil {
		return nil, apperrors.NotFound("vote", "feature not found")
	}

	for attempt := 0; attempt < toggleAttempts; attempt++ {
		feature, err := s.store.GetByID(ctx, uid)
		if err != nil {
			return nil, apperrors.Storage("vote", err)
		}
		if feature == nil {
			return nil, apperrors.NotFound("vote", "feature not found")
		}

		var updated *models.Feature
		if feature.HasVoted(voter) {
			updated, err = s.store.RemoveVote(ctx, uid, voter)
		} else {
			updated, err = s.store.AddVote(ctx, uid, voter)
		}
		if err != nil {
			return nil, apperrors.Storage("vote", err)
		}
		if updated != nil {
			return updated, nil
		}
		// Guard lost a concurrent toggle for this identifier; refresh
		// and re-decide.
	}

	return nil, apperrors.Conflict("vote", "vote is being updated concurrently, try again")
}

// Withdraw removes an existing vote and fails when the identifier never
// voted. Kept alongside Toggle for callers that want the explicit form.
func (s *VoteService) Withdraw(ctx context.Context, id, voter string) (*models.Feature, error) {
	if voter == "" {
		return nil, apperrors.Validation("vote", "voter identifier is required")
	}

	uid, err := utils.ParseUUID(id)
	if err != nil {
		return nil, apperrors.NotFound("vote", "feature not found")
	}

	feature, err := s.store.GetByID(ctx, uid)
	if err != nil {
		return nil, apperrors.Storage("vote", err)
	}
	if feature == nil {
		return nil, apperrors.NotFound("vote", "feature not found")
	}
	if !feature.HasVoted(voter) {
		return nil, apperrors.Conflict("vote", "you have not voted for this feature")
	}

	updated, err := s.store.RemoveVote(ctx, uid, voter)
	if err != nil {
		return nil, apperrors.Storage("vote", err)
	}
	if updated == nil {
		return nil, apperrors.Conflict("vote", "you have not voted for this feature")
	}
	return updated, nil
}
