package logic

import (
	"social_pilot/shared"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_activity_log.go -package mocks social_pilot/logic IActivityLog

// Capacity of the in-process activity log; appending past this evicts the
// oldest entry.
const activityLogCapacity = 100

type LogLevel string

const (
	LevelInfo    LogLevel = "info"
	LevelSuccess LogLevel = "success"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
)

type ActivityEntry struct {
	Timestamp time.Time
	Message   string
	Level     LogLevel
	Platform  shared.Platform // empty when the entry is not platform-scoped
}

// IActivityLog is the bounded, most-recent-first record of cycle events the
// operator UI polls. Process-lifetime only; nothing is persisted.
type IActivityLog interface {
	Append(level LogLevel, platform shared.Platform, message string)
	Entries() []*ActivityEntry
}

type activityLog struct {
	mu      sync.Mutex
	entries []*ActivityEntry // newest first
}

func NewActivityLog() IActivityLog {
	return &activityLog{
		entries: make([]*ActivityEntry, 0, activityLogCapacity),
	}
}

func (al *activityLog) Append(level LogLevel, platform shared.Platform, message string) {

	al.mu.Lock()
	defer al.mu.Unlock()

	entry := &ActivityEntry{
		Timestamp: time.Now().UTC(),
		Message:   message,
		Level:     level,
		Platform:  platform,
	}
	al.entries = append(al.entries, nil)
	copy(al.entries[1:], al.entries)
	al.entries[0] = entry
	if len(al.entries) > activityLogCapacity {
		al.entries = al.entries[:activityLogCapacity]
	}
}

func (al *activityLog) Entries() []*ActivityEntry {

	al.mu.Lock()
	defer al.mu.Unlock()

	res := make([]*ActivityEntry, len(al.entries))
	copy(res, al.entries)
	return res
}
