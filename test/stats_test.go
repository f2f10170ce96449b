package test

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"social_pilot/logic"
	"social_pilot/shared"
	"social_pilot/test/mocks"
	"testing"
)

func setupStatsTest(t *testing.T) (*gomock.Controller, *mocks.MockIRepo, *mocks.MockIMetrics, logic.IStats) {

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	stubLogger(mockLogger)

	st := logic.NewStats(mockLogger, mockRepo, mockMetrics)

	return ctrl, mockRepo, mockMetrics, st
}

func Test_Stats_Summary(t *testing.T) {

	ctrl, mockRepo, mockMetrics, st := setupStatsTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetAccountCount().Return(2, nil).Times(1)
	mockRepo.EXPECT().GetProfileCount().Return(40, nil).Times(1)
	mockRepo.EXPECT().GetActionCount().Return(17, nil).Times(1)
	mockRepo.EXPECT().GetProfileCountsByPlatform().
		Return(map[shared.Platform]int{shared.PlatformInstagram: 30, shared.PlatformTiktok: 10}, nil).Times(1)
	mockMetrics.EXPECT().TotalProfiles(gomock.Eq(40)).Times(1)

	summary, err := st.Summary()

	assert.Nil(t, err)
	assert.Equal(t, 2, summary.Accounts)
	assert.Equal(t, 40, summary.Profiles)
	assert.Equal(t, 17, summary.Actions)
	assert.Equal(t, 30, summary.ProfilesByPlatform[shared.PlatformInstagram])
}

func Test_Stats_Summary_Propagates_Store_Error(t *testing.T) {

	ctrl, mockRepo, _, st := setupStatsTest(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetAccountCount().Return(0, errors.New("locked")).Times(1)

	summary, err := st.Summary()

	assert.NotNil(t, err)
	assert.Nil(t, summary)
}
