package dal

import (
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"io"
	"path/filepath"
	"social_pilot/shared"
	"testing"
	"time"
)

func setupTestRepo(t *testing.T) IRepo {
	cfg := &shared.Config{
		DbFile: filepath.Join(t.TempDir(), "test.sqlite"),
	}
	repo := NewRepo(cfg, log.New(io.Discard))
	repo.InitUpdateDb()
	return repo
}

func follow(handle string, platform shared.Platform, daysAgo int) *Action {
	return &Action{
		TargetHandle: handle,
		Platform:     platform,
		ActionType:   shared.ActionFollow,
		PerformedAt:  time.Now().UTC().AddDate(0, 0, -daysAgo),
	}
}

func TestAddProfileIfNewDeduplicates(t *testing.T) {

	repo := setupTestRepo(t)

	isNew, err := repo.AddProfileIfNew(&Profile{
		TargetHandle: "alice", Platform: shared.PlatformInstagram,
		OriginType: shared.OriginLike, Comment: "original",
	})
	assert.Nil(t, err)
	assert.True(t, isNew)

	// Same handle+platform again: silently not inserted, first row untouched
	isNew, err = repo.AddProfileIfNew(&Profile{
		TargetHandle: "alice", Platform: shared.PlatformInstagram,
		OriginType: shared.OriginComment, Comment: "changed",
	})
	assert.Nil(t, err)
	assert.False(t, isNew)

	profiles, err := repo.GetProfiles(shared.PlatformInstagram, 0)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(profiles))
	assert.Equal(t, "original", profiles[0].Comment)

	// Same handle on another platform is a distinct profile
	isNew, err = repo.AddProfileIfNew(&Profile{
		TargetHandle: "alice", Platform: shared.PlatformTiktok,
		OriginType: shared.OriginLike,
	})
	assert.Nil(t, err)
	assert.True(t, isNew)

	count, err := repo.GetProfileCount()
	assert.Nil(t, err)
	assert.Equal(t, 2, count)
}

func TestGetUnfollowedFollowsSelection(t *testing.T) {

	repo := setupTestRepo(t)

	// Deliberately not in age order: oldest-first must come from performed_at
	assert.Nil(t, repo.AddAction(follow("old2", shared.PlatformInstagram, 6)))
	assert.Nil(t, repo.AddAction(follow("old3", shared.PlatformInstagram, 10)))
	assert.Nil(t, repo.AddAction(follow("old1", shared.PlatformInstagram, 8)))
	assert.Nil(t, repo.AddAction(follow("recent", shared.PlatformInstagram, 1)))
	assert.Nil(t, repo.AddAction(follow("elsewhere", shared.PlatformTiktok, 10)))

	// old1 was since unfollowed; it must not be a candidate again
	assert.Nil(t, repo.AddAction(&Action{
		TargetHandle: "old1", Platform: shared.PlatformInstagram,
		ActionType: shared.ActionUnfollow,
		PerformedAt: time.Now().UTC().AddDate(0, 0, -1),
	}))

	cutoff := time.Now().UTC().AddDate(0, 0, -4)
	candidates, err := repo.GetUnfollowedFollows(shared.PlatformInstagram, cutoff, 10)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(candidates))
	assert.Equal(t, "old3", candidates[0].TargetHandle)
	assert.Equal(t, "old2", candidates[1].TargetHandle)

	// maxCount truncates from the oldest end
	candidates, err = repo.GetUnfollowedFollows(shared.PlatformInstagram, cutoff, 1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(candidates))
	assert.Equal(t, "old3", candidates[0].TargetHandle)
}

func TestAddActionMaintainsInteractedSet(t *testing.T) {

	repo := setupTestRepo(t)

	assert.Nil(t, repo.AddAction(&Action{
		TargetHandle: "bob", Platform: shared.PlatformInstagram, ActionType: shared.ActionLike,
	}))
	assert.Nil(t, repo.AddAction(&Action{
		TargetHandle: "alice", Platform: shared.PlatformInstagram, ActionType: shared.ActionLike,
	}))
	// Second action on the same handle must not duplicate the interacted row
	assert.Nil(t, repo.AddAction(&Action{
		TargetHandle: "alice", Platform: shared.PlatformInstagram, ActionType: shared.ActionComment,
	}))

	handles, err := repo.GetInteractedHandles(shared.PlatformInstagram)
	assert.Nil(t, err)
	assert.Equal(t, []string{"alice", "bob"}, handles)

	count, err := repo.GetActionCount()
	assert.Nil(t, err)
	assert.Equal(t, 3, count)
}
