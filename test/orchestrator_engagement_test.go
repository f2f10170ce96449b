package test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"social_pilot/dal"
	"social_pilot/logic"
	"social_pilot/shared"
	"social_pilot/test/mocks"
	"testing"
)

type orchestratorHarness struct {
	cfg             *shared.Config
	mockLogger      *mocks.MockILogger
	mockRepo        *mocks.MockIRepo
	mockEligibility *mocks.MockIEligibility
	mockGenerator   *mocks.MockIGenerator
	mockExecutor    *mocks.MockIActionExecutor
	activityLog     logic.IActivityLog
	mockMetrics     *mocks.MockIMetrics
	mockTexts       *mocks.MockITexts
}

func setupOrchestratorTest(t *testing.T) (*gomock.Controller, *orchestratorHarness, logic.IOrchestrator) {

	ctrl := gomock.NewController(t)

	h := &orchestratorHarness{
		cfg: &shared.Config{
			Automation: shared.AutomationDefaults{
				TargetCount:       3,
				UnfollowAfterDays: 4,
				UnfollowCount:     5,
				GenerationPrompt:  "be friendly",
			},
		},
		mockLogger:      mocks.NewMockILogger(ctrl),
		mockRepo:        mocks.NewMockIRepo(ctrl),
		mockEligibility: mocks.NewMockIEligibility(ctrl),
		mockGenerator:   mocks.NewMockIGenerator(ctrl),
		mockExecutor:    mocks.NewMockIActionExecutor(ctrl),
		activityLog:     logic.NewActivityLog(),
		mockMetrics:     mocks.NewMockIMetrics(ctrl),
		mockTexts:       mocks.NewMockITexts(ctrl),
	}
	stubLogger(h.mockLogger)
	stubMetrics(h.mockMetrics)
	stubTexts(h.mockTexts)

	orch := logic.NewOrchestrator(h.cfg, h.mockLogger, h.mockRepo, h.mockEligibility,
		h.mockGenerator, h.mockExecutor, h.activityLog, h.mockMetrics, h.mockTexts)

	return ctrl, h, orch
}

func makeProfiles(platform shared.Platform, handles ...string) []*dal.Profile {
	var res []*dal.Profile
	for _, handle := range handles {
		res = append(res, &dal.Profile{
			TargetHandle: handle,
			Platform:     platform,
			OriginType:   shared.OriginLike,
			Niche:        "fitness",
		})
	}
	return res
}

func Test_Engagement_Cycle_No_Account(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetActiveAccount(gomock.Eq(shared.PlatformInstagram)).Return(nil, nil).Times(1)

	err := orch.RunEngagementCycle(context.Background(), &logic.CycleConfig{
		Platform:   shared.PlatformInstagram,
		ActionType: shared.ActionLike,
	})

	assert.ErrorIs(t, err, logic.ErrNoActiveAccount)
	entries := h.activityLog.Entries()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, logic.LevelError, entries[0].Level)
	assert.Equal(t, shared.PlatformInstagram, entries[0].Platform)
}

func Test_Engagement_Cycle_No_Targets(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformTiktok, Status: shared.AccountActive}
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Eq(shared.PlatformTiktok)).Return(acct, nil).Times(1)
	h.mockEligibility.EXPECT().EligibleTargets(gomock.Eq(shared.PlatformTiktok), gomock.Eq(3)).
		Return([]*dal.Profile{}, nil).Times(1)

	err := orch.RunEngagementCycle(context.Background(), &logic.CycleConfig{
		Platform:   shared.PlatformTiktok,
		ActionType: shared.ActionLike,
	})

	assert.ErrorIs(t, err, logic.ErrNoEligibleTargets)
	entries := h.activityLog.Entries()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, logic.LevelWarning, entries[0].Level)
}

func Test_Engagement_Cycle_Processes_All_Targets(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	profiles := makeProfiles(shared.PlatformInstagram, "alice", "bob", "carol")
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Eq(shared.PlatformInstagram)).Return(acct, nil).Times(1)
	h.mockEligibility.EXPECT().EligibleTargets(gomock.Eq(shared.PlatformInstagram), gomock.Eq(3)).
		Return(profiles, nil).Times(1)

	var performed []string
	h.mockExecutor.EXPECT().Perform(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, action *dal.Action) error {
			performed = append(performed, action.TargetHandle)
			return nil
		}).Times(3)
	h.mockRepo.EXPECT().AddAction(gomock.Cond(actionMatch("alice", shared.ActionLike))).Return(nil).Times(1)
	h.mockRepo.EXPECT().AddAction(gomock.Cond(actionMatch("bob", shared.ActionLike))).Return(nil).Times(1)
	h.mockRepo.EXPECT().AddAction(gomock.Cond(actionMatch("carol", shared.ActionLike))).Return(nil).Times(1)

	err := orch.RunEngagementCycle(context.Background(), &logic.CycleConfig{
		Platform:   shared.PlatformInstagram,
		ActionType: shared.ActionLike,
	})

	assert.Nil(t, err)
	assert.Equal(t, []string{"alice", "bob", "carol"}, performed)
	// Start entry + one per action + completion entry, newest first
	entries := h.activityLog.Entries()
	assert.Equal(t, 5, len(entries))
	assert.Equal(t, logic.LevelSuccess, entries[0].Level)
	assert.Equal(t, logic.LevelInfo, entries[4].Level)
	assert.Equal(t, "", orch.CurrentTask())
}

func Test_Engagement_Cycle_Uses_Generated_Text(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	profiles := makeProfiles(shared.PlatformInstagram, "alice")
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Any()).Return(acct, nil).Times(1)
	h.mockEligibility.EXPECT().EligibleTargets(gomock.Any(), gomock.Any()).Return(profiles, nil).Times(1)
	h.mockGenerator.EXPECT().
		GenerateText(gomock.Any(), gomock.Eq("be friendly"), gomock.Eq(shared.PlatformInstagram), gomock.Eq(logic.TextComment)).
		Return("nice post!", nil).Times(1)
	h.mockExecutor.EXPECT().Perform(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var recorded *dal.Action
	h.mockRepo.EXPECT().AddAction(gomock.Any()).
		DoAndReturn(func(action *dal.Action) error {
			recorded = action
			return nil
		}).Times(1)

	err := orch.RunEngagementCycle(context.Background(), &logic.CycleConfig{
		Platform:         shared.PlatformInstagram,
		ActionType:       shared.ActionComment,
		UseGeneratedText: true,
		ManualText:       "fallback text",
	})

	assert.Nil(t, err)
	assert.NotNil(t, recorded)
	assert.Equal(t, "nice post!", recorded.Content)
}

func Test_Engagement_Cycle_Generator_Failure_Falls_Back_To_Manual(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	profiles := makeProfiles(shared.PlatformInstagram, "alice")
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Any()).Return(acct, nil).Times(1)
	h.mockEligibility.EXPECT().EligibleTargets(gomock.Any(), gomock.Any()).Return(profiles, nil).Times(1)
	h.mockGenerator.EXPECT().GenerateText(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("quota exceeded")).Times(1)
	h.mockExecutor.EXPECT().Perform(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var recorded *dal.Action
	h.mockRepo.EXPECT().AddAction(gomock.Any()).
		DoAndReturn(func(action *dal.Action) error {
			recorded = action
			return nil
		}).Times(1)

	err := orch.RunEngagementCycle(context.Background(), &logic.CycleConfig{
		Platform:         shared.PlatformInstagram,
		ActionType:       shared.ActionComment,
		UseGeneratedText: true,
		ManualText:       "fallback text",
	})

	assert.Nil(t, err)
	assert.NotNil(t, recorded)
	assert.Equal(t, "fallback text", recorded.Content)
}

func Test_Engagement_Cycle_Aborts_On_Executor_Error(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	profiles := makeProfiles(shared.PlatformInstagram, "alice", "bob", "carol")
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Any()).Return(acct, nil).Times(1)
	h.mockEligibility.EXPECT().EligibleTargets(gomock.Any(), gomock.Any()).Return(profiles, nil).Times(1)

	// First action blows up; the remaining targets must not be touched
	h.mockExecutor.EXPECT().Perform(gomock.Any(), gomock.Cond(actionMatch("alice", shared.ActionFollow))).
		Return(errors.New("network down")).Times(1)

	err := orch.RunEngagementCycle(context.Background(), &logic.CycleConfig{
		Platform:   shared.PlatformInstagram,
		ActionType: shared.ActionFollow,
	})

	assert.NotNil(t, err)
	entries := h.activityLog.Entries()
	assert.Equal(t, logic.LevelError, entries[0].Level)
	assert.Equal(t, "", orch.CurrentTask())
}

func Test_Engagement_Cycle_Rejects_Concurrent_Run(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})
	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Any()).
		DoAndReturn(func(platform shared.Platform) (*dal.Account, error) {
			close(started)
			<-release
			return acct, nil
		}).Times(1)
	h.mockEligibility.EXPECT().EligibleTargets(gomock.Any(), gomock.Any()).
		Return([]*dal.Profile{}, nil).Times(1)

	done := make(chan error)
	go func() {
		done <- orch.RunEngagementCycle(context.Background(), &logic.CycleConfig{
			Platform:   shared.PlatformInstagram,
			ActionType: shared.ActionLike,
		})
	}()

	<-started
	err := orch.RunEngagementCycle(context.Background(), &logic.CycleConfig{
		Platform:   shared.PlatformInstagram,
		ActionType: shared.ActionLike,
	})
	assert.ErrorIs(t, err, logic.ErrCycleRunning)

	close(release)
	assert.ErrorIs(t, <-done, logic.ErrNoEligibleTargets)
}
