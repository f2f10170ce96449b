package logic

import (
	"social_pilot/dal"
	"social_pilot/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_stats.go -package mocks social_pilot/logic IStats

type StatsSummary struct {
	Accounts           int
	Profiles           int
	Actions            int
	ProfilesByPlatform map[shared.Platform]int
}

// IStats derives summary counters from the store on demand; nothing is cached.
type IStats interface {
	Summary() (*StatsSummary, error)
}

type stats struct {
	logger  shared.ILogger
	repo    dal.IRepo
	metrics IMetrics
}

func NewStats(logger shared.ILogger, repo dal.IRepo, metrics IMetrics) IStats {
	return &stats{
		logger:  logger,
		repo:    repo,
		metrics: metrics,
	}
}

func (st *stats) Summary() (*StatsSummary, error) {

	var err error
	res := StatsSummary{}

	if res.Accounts, err = st.repo.GetAccountCount(); err != nil {
		return nil, err
	}
	if res.Profiles, err = st.repo.GetProfileCount(); err != nil {
		return nil, err
	}
	if res.Actions, err = st.repo.GetActionCount(); err != nil {
		return nil, err
	}
	if res.ProfilesByPlatform, err = st.repo.GetProfileCountsByPlatform(); err != nil {
		return nil, err
	}
	st.metrics.TotalProfiles(res.Profiles)
	return &res, nil
}
