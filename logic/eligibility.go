package logic

import (
	"social_pilot/dal"
	"social_pilot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_eligibility.go -package mocks social_pilot/logic IEligibility

// IEligibility decides which collected profiles are actionable targets and
// which past follows are due for an unfollow.
type IEligibility interface {
	EligibleTargets(platform shared.Platform, maxCount int) ([]*dal.Profile, error)
	UnfollowCandidates(platform shared.Platform, maxCount, afterDays int) ([]*dal.Action, error)
}

type eligibility struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
}

func NewEligibility(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo) IEligibility {
	return &eligibility{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
	}
}

// EligibleTargets returns profiles for the platform in insertion order,
// truncated to maxCount. No randomization, no freshness weighting, and no
// interacted-set exclusion here: callers that want to skip past targets
// consult the interacted set themselves.
func (el *eligibility) EligibleTargets(platform shared.Platform, maxCount int) ([]*dal.Profile, error) {
	return el.repo.GetProfiles(platform, maxCount)
}

// UnfollowCandidates returns the oldest follow actions on the platform that
// are at least afterDays old and have not been unfollowed since.
func (el *eligibility) UnfollowCandidates(platform shared.Platform, maxCount, afterDays int) ([]*dal.Action, error) {
	if afterDays < 0 {
		afterDays = 0
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -afterDays)
	return el.repo.GetUnfollowedFollows(platform, cutoff, maxCount)
}
