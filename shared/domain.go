package shared

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Platform names the social network an account or target lives on.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTiktok    Platform = "tiktok"
	PlatformKwai      Platform = "kwai"
	PlatformYoutube   Platform = "youtube"
)

var Platforms = []Platform{PlatformInstagram, PlatformTiktok, PlatformKwai, PlatformYoutube}

// ActionType is the kind of engagement recorded against a target.
type ActionType string

const (
	ActionLike     ActionType = "like"
	ActionComment  ActionType = "comment"
	ActionDirect   ActionType = "direct"
	ActionFollow   ActionType = "follow"
	ActionUnfollow ActionType = "unfollow"
)

// OriginType says how a collected profile was first seen.
type OriginType string

const (
	OriginLike    OriginType = "like"
	OriginComment OriginType = "comment"
)

// Sentiment classifies a collected comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

const (
	AccountActive   = "active"
	AccountInactive = "inactive"
)

func ValidatePlatform(p Platform) error {
	for _, known := range Platforms {
		if p == known {
			return nil
		}
	}
	return fmt.Errorf("unknown platform '%s'", p)
}

func ValidateActionType(at ActionType) error {
	switch at {
	case ActionLike, ActionComment, ActionDirect, ActionFollow, ActionUnfollow:
		return nil
	}
	return fmt.Errorf("unknown action type '%s'", at)
}

func ValidateHandle(handle string) error {
	if len(handle) == 0 {
		return errors.New("target handle cannot be empty")
	}
	for _, c := range handle {
		if unicode.IsSpace(c) {
			return errors.New("target handle must not contain whitespace")
		}
	}
	return nil
}

// NormalizeHandle turns user input like "@Some.User/" into the canonical
// lower-case handle we store and compare by.
func NormalizeHandle(handle string) string {

	handle = strings.TrimPrefix(handle, "@")
	handle = strings.TrimRight(handle, "/")

	var buf bytes.Buffer
	for i := 0; i < len(handle); i++ {
		c := handle[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c == '-' || c == '.' || c == '_' {
			buf.WriteByte(c)
		}
	}
	return strings.ToLower(buf.String())
}

func TruncateWithEllipsis(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	// https://stackoverflow.com/a/73939904/7479498
	lastSpaceIx := maxLen
	len := 0
	for i, r := range text {
		if unicode.IsSpace(r) {
			lastSpaceIx = i
		}
		len++
		if len > maxLen {
			return text[:lastSpaceIx] + "…"
		}
	}
	// If here, string is shorter or equal to maxLen
	return text
}
