package test

import (
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"social_pilot/dal"
	"social_pilot/logic"
	"social_pilot/shared"
	"testing"
	"time"
)

func makeFollows(platform shared.Platform, handles ...string) []*dal.Action {
	now := time.Now().UTC()
	var res []*dal.Action
	for i, handle := range handles {
		res = append(res, &dal.Action{
			Id:           i + 1,
			TargetHandle: handle,
			Platform:     platform,
			ActionType:   shared.ActionFollow,
			PerformedAt:  now.AddDate(0, 0, -10+i),
		})
	}
	return res
}

func Test_Unfollow_Cycle_No_Account(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	h.mockRepo.EXPECT().GetActiveAccount(gomock.Eq(shared.PlatformKwai)).Return(nil, nil).Times(1)

	err := orch.RunUnfollowCycle(context.Background(), &logic.CycleConfig{
		Platform: shared.PlatformKwai,
	})

	assert.ErrorIs(t, err, logic.ErrNoActiveAccount)
	entries := h.activityLog.Entries()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, logic.LevelError, entries[0].Level)
}

func Test_Unfollow_Cycle_Empty_Backlog_Is_Not_An_Error(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Any()).Return(acct, nil).Times(1)
	h.mockEligibility.EXPECT().UnfollowCandidates(gomock.Eq(shared.PlatformInstagram), gomock.Eq(5), gomock.Eq(4)).
		Return([]*dal.Action{}, nil).Times(1)

	err := orch.RunUnfollowCycle(context.Background(), &logic.CycleConfig{
		Platform: shared.PlatformInstagram,
	})

	assert.Nil(t, err)
	entries := h.activityLog.Entries()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, logic.LevelInfo, entries[0].Level)
}

func Test_Unfollow_Cycle_Unfollows_Candidates_In_Order(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	candidates := makeFollows(shared.PlatformInstagram, "old1", "old2")
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Any()).Return(acct, nil).Times(1)
	h.mockEligibility.EXPECT().UnfollowCandidates(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(candidates, nil).Times(1)

	var performed []string
	h.mockExecutor.EXPECT().Perform(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, action *dal.Action) error {
			assert.Equal(t, shared.ActionUnfollow, action.ActionType)
			performed = append(performed, action.TargetHandle)
			return nil
		}).Times(2)
	h.mockRepo.EXPECT().AddAction(gomock.Cond(actionMatch("old1", shared.ActionUnfollow))).Return(nil).Times(1)
	h.mockRepo.EXPECT().AddAction(gomock.Cond(actionMatch("old2", shared.ActionUnfollow))).Return(nil).Times(1)

	err := orch.RunUnfollowCycle(context.Background(), &logic.CycleConfig{
		Platform: shared.PlatformInstagram,
	})

	assert.Nil(t, err)
	assert.Equal(t, []string{"old1", "old2"}, performed)
	entries := h.activityLog.Entries()
	assert.Equal(t, 4, len(entries))
	assert.Equal(t, logic.LevelSuccess, entries[0].Level)
}

func Test_Unfollow_Cycle_Aborts_On_Record_Error(t *testing.T) {

	ctrl, h, orch := setupOrchestratorTest(t)
	defer ctrl.Finish()

	acct := &dal.Account{Id: 1, Username: "pilot", Platform: shared.PlatformInstagram, Status: shared.AccountActive}
	candidates := makeFollows(shared.PlatformInstagram, "old1", "old2")
	h.mockRepo.EXPECT().GetActiveAccount(gomock.Any()).Return(acct, nil).Times(1)
	h.mockEligibility.EXPECT().UnfollowCandidates(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(candidates, nil).Times(1)
	h.mockExecutor.EXPECT().Perform(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	h.mockRepo.EXPECT().AddAction(gomock.Any()).Return(errors.New("disk full")).Times(1)

	err := orch.RunUnfollowCycle(context.Background(), &logic.CycleConfig{
		Platform: shared.PlatformInstagram,
	})

	assert.NotNil(t, err)
	entries := h.activityLog.Entries()
	assert.Equal(t, logic.LevelError, entries[0].Level)
}
