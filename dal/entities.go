package dal

import (
	"social_pilot/shared"
	"time"
)

type Account struct {
	Id        int
	Username  string // acting identity, without the @
	Platform  shared.Platform
	Status    string // "active" or "inactive"
	CreatedAt time.Time
}

type Profile struct {
	Id               int
	TargetHandle     string
	Platform         shared.Platform
	OriginType       shared.OriginType
	OriginProfile    string // where the collector first saw this handle
	Comment          string
	CommentSentiment shared.Sentiment
	Niche            string
	InsertedAt       time.Time
}

type Action struct {
	Id           int
	TargetHandle string
	Platform     shared.Platform
	ActionType   shared.ActionType
	Content      string
	PerformedAt  time.Time
}
