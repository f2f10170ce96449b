package test

import (
	"context"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"social_pilot/dal"
	"social_pilot/logic"
	"social_pilot/shared"
	"social_pilot/test/mocks"
	"strings"
	"testing"
)

func Test_Publish_No_Account(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetActiveAccount(gomock.Eq(shared.PlatformYoutube)).Return(nil, nil).Times(1)

	err := orch.Publish(context.Background(), &logic.PostIdea{
		Platform: shared.PlatformYoutube,
		Title:    "Morning routine",
	})

	assert.ErrorIs(t, err, logic.ErrNoActiveAccount)
	entries := h.activityLog.Entries()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, logic.LevelError, entries[0].Level)
}

func Test_Publish_Records_Like_Surrogate_With_Title(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Any()).Return(acct, nil).Times(1)
	h.mockExecutor.EXPECT().Perform(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var recorded *dal.Action
	h.mockRepo.EXPECT().AddAction(gomock.Any()).
		DoAndReturn(func(action *dal.Action) error {
			recorded = action
			return nil
		}).Times(1)

	err := orch.Publish(context.Background(), &logic.PostIdea{
		Platform: shared.PlatformInstagram,
		Title:    "Morning routine",
	})

	assert.Nil(t, err)
	assert.NotNil(t, recorded)
	assert.Equal(t, acct.Username, recorded.TargetHandle)
	assert.Equal(t, shared.ActionLike, recorded.ActionType)
	assert.True(t, strings.Contains(recorded.Content, "Morning routine"))
	entries := h.activityLog.Entries()
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, logic.LevelSuccess, entries[0].Level)
}

func Test_Publish_Reports_Cycle_Metrics(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockEligibility := mocks.NewMockIEligibility(ctrl)
	mockGenerator := mocks.NewMockIGenerator(ctrl)
	mockExecutor := mocks.NewMockIActionExecutor(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockTexts := mocks.NewMockITexts(ctrl)
	stubLogger(mockLogger)
	stubTexts(mockTexts)

	orch := logic.NewOrchestrator(&shared.Config{}, mockLogger, mockRepo, mockEligibility,
		mockGenerator, mockExecutor, logic.NewActivityLog(), mockMetrics, mockTexts)

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	mockRepo.EXPECT().GetActiveAccount(gomock.Any()).Return(acct, nil).Times(1)
	mockExecutor.EXPECT().Perform(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockRepo.EXPECT().AddAction(gomock.Any()).Return(nil).Times(1)

	// Started/finished must pair up so the counters reconcile
	mockMetrics.EXPECT().CycleRunning(true).Times(1)
	mockMetrics.EXPECT().CycleStarted("publish").Times(1)
	mockMetrics.EXPECT().ActionPerformed("like").Times(1)
	mockMetrics.EXPECT().CycleFinished("publish", "completed").Times(1)
	mockMetrics.EXPECT().CycleRunning(false).Times(1)

	err := orch.Publish(context.Background(), &logic.PostIdea{
		Platform: shared.PlatformInstagram,
		Title:    "Morning routine",
	})
	assert.Nil(t, err)
}

func Test_Publish_No_Account_Reports_Finished(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockILogger(ctrl)
	mockRepo := mocks.NewMockIRepo(ctrl)
	mockEligibility := mocks.NewMockIEligibility(ctrl)
	mockGenerator := mocks.NewMockIGenerator(ctrl)
	mockExecutor := mocks.NewMockIActionExecutor(ctrl)
	mockMetrics := mocks.NewMockIMetrics(ctrl)
	mockTexts := mocks.NewMockITexts(ctrl)
	stubLogger(mockLogger)
	stubTexts(mockTexts)

	orch := logic.NewOrchestrator(&shared.Config{}, mockLogger, mockRepo, mockEligibility,
		mockGenerator, mockExecutor, logic.NewActivityLog(), mockMetrics, mockTexts)

	mockRepo.EXPECT().GetActiveAccount(gomock.Any()).Return(nil, nil).Times(1)
	mockMetrics.EXPECT().CycleRunning(true).Times(1)
	mockMetrics.EXPECT().CycleStarted("publish").Times(1)
	mockMetrics.EXPECT().CycleFinished("publish", "no_account").Times(1)
	mockMetrics.EXPECT().CycleRunning(false).Times(1)

	err := orch.Publish(context.Background(), &logic.PostIdea{
		Platform: shared.PlatformInstagram,
		Title:    "Morning routine",
	})
	assert.ErrorIs(t, err, logic.ErrNoActiveAccount)
}

func Test_Generate_Idea_Logs_Outcome(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	req := &logic.IdeaRequest{
		Niche:      "fitness",
		Platform:   shared.PlatformTiktok,
		VisualMode: logic.VisualWebSearch,
		Format:     logic.FormatVideo,
	}
	idea := &logic.PostIdea{Platform: shared.PlatformTiktok, Title: "5 minute abs"}
	h.mockGenerator.EXPECT().GenerateIdea(gomock.Any(), gomock.Eq(req)).Return(idea, nil).Times(1)

	res, err := orch.GenerateIdea(context.Background(), req)

	assert.Nil(t, err)
	assert.Equal(t, idea, res)
	entries := h.activityLog.Entries()
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, logic.LevelSuccess, entries[0].Level)
	assert.Equal(t, logic.LevelInfo, entries[1].Level)
}
