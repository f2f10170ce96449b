package test

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"social_pilot/logic"
	"social_pilot/shared"
	"testing"
)

func Test_Activity_Log_Newest_First(t *testing.T) {

	al := logic.NewActivityLog()
	al.Append(logic.LevelInfo, shared.PlatformInstagram, "first")
	al.Append(logic.LevelSuccess, shared.PlatformInstagram, "second")
	al.Append(logic.LevelError, "", "third")

	entries := al.Entries()
	assert.Equal(t, 3, len(entries))
	assert.Equal(t, "third", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
	assert.Equal(t, "first", entries[2].Message)
	assert.Equal(t, shared.Platform(""), entries[0].Platform)
}

func Test_Activity_Log_Evicts_Oldest_At_Capacity(t *testing.T) {

	al := logic.NewActivityLog()
	for i := 0; i < 101; i++ {
		al.Append(logic.LevelInfo, shared.PlatformInstagram, fmt.Sprintf("entry %d", i))
	}

	entries := al.Entries()
	assert.Equal(t, 100, len(entries))
	assert.Equal(t, "entry 100", entries[0].Message)
	assert.Equal(t, "entry 1", entries[99].Message)
}

func Test_Activity_Log_Entries_Returns_Copy(t *testing.T) {

	al := logic.NewActivityLog()
	al.Append(logic.LevelInfo, shared.PlatformInstagram, "only")

	entries := al.Entries()
	al.Append(logic.LevelInfo, shared.PlatformInstagram, "later")
	assert.Equal(t, 1, len(entries))
}
