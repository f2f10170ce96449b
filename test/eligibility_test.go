package test

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"social_pilot/dal"
	"social_pilot/logic"
	"social_pilot/shared"
	"social_pilot/test/mocks"
	"testing"
	"time"
)

type eligibilityHarness struct {
	cfg        *shared.Config
	mockLogger *mocks.MockILogger
	mockRepo   *mocks.MockIRepo
}

func setupEligibilityTest(t *testing.T) (*gomock.Controller, *eligibilityHarness, logic.IEligibility) {

	ctrl := gomock.NewController(t)

	h := &eligibilityHarness{
		cfg:        &shared.Config{},
		mockLogger: mocks.NewMockILogger(ctrl),
		mockRepo:   mocks.NewMockIRepo(ctrl),
	}
	stubLogger(h.mockLogger)

	el := logic.NewEligibility(h.cfg, h.mockLogger, h.mockRepo)

	return ctrl, h, el
}

func Test_Eligibility_Targets_Pass_Through_In_Order(t *testing.T) {

	ctrl, h, el := setupEligibilityTest(t)
	defer ctrl.Finish()

	profiles := makeProfiles(shared.PlatformInstagram, "alice", "bob")
	h.mockRepo.EXPECT().GetProfiles(gomock.Eq(shared.PlatformInstagram), gomock.Eq(2)).
		Return(profiles, nil).Times(1)

	res, err := el.EligibleTargets(shared.PlatformInstagram, 2)

	assert.Nil(t, err)
	assert.Equal(t, profiles, res)
}

func Test_Eligibility_Unfollow_Cutoff(t *testing.T) {

	ctrl, h, el := setupEligibilityTest(t)
	defer ctrl.Finish()

	wantCutoff := time.Now().UTC().AddDate(0, 0, -4)
	cutoffNear := func(x any) bool {
		cutoff, ok := x.(time.Time)
		if !ok {
			return false
		}
		diff := cutoff.Sub(wantCutoff)
		return diff > -time.Minute && diff < time.Minute
	}
	follows := makeFollows(shared.PlatformInstagram, "old1")
	h.mockRepo.EXPECT().
		GetUnfollowedFollows(gomock.Eq(shared.PlatformInstagram), gomock.Cond(cutoffNear), gomock.Eq(10)).
		Return(follows, nil).Times(1)

	res, err := el.UnfollowCandidates(shared.PlatformInstagram, 10, 4)

	assert.Nil(t, err)
	assert.Equal(t, follows, res)
}

func Test_Eligibility_Unfollow_Negative_Days_Clamped(t *testing.T) {

	ctrl, h, el := setupEligibilityTest(t)
	defer ctrl.Finish()

	now := time.Now().UTC()
	cutoffNear := func(x any) bool {
		cutoff, ok := x.(time.Time)
		if !ok {
			return false
		}
		diff := cutoff.Sub(now)
		return diff > -time.Minute && diff < time.Minute
	}
	h.mockRepo.EXPECT().
		GetUnfollowedFollows(gomock.Any(), gomock.Cond(cutoffNear), gomock.Any()).
		Return([]*dal.Action{}, nil).Times(1)

	res, err := el.UnfollowCandidates(shared.PlatformInstagram, 5, -3)

	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))
}
