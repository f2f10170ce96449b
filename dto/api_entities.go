package dto

import "time"

type Account struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Platform  string    `json:"platform"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type AddAccount struct {
	Username string `json:"username"`
	Platform string `json:"platform"`
}

type Profile struct {
	Id               int       `json:"id"`
	TargetHandle     string    `json:"target_handle"`
	Platform         string    `json:"platform"`
	OriginType       string    `json:"origin_type"`
	OriginProfile    string    `json:"origin_profile"`
	Comment          string    `json:"comment,omitempty"`
	CommentSentiment string    `json:"comment_sentiment,omitempty"`
	Niche            string    `json:"niche"`
	InsertedAt       time.Time `json:"inserted_at"`
}

type AddProfile struct {
	TargetHandle  string `json:"target_handle"`
	Platform      string `json:"platform"`
	OriginType    string `json:"origin_type"`
	OriginProfile string `json:"origin_profile"`
	Comment       string `json:"comment,omitempty"`
	Niche         string `json:"niche"`
}

type AddProfileResult struct {
	IsNew   bool     `json:"is_new"`
	Profile *Profile `json:"profile,omitempty"`
}

type Action struct {
	Id           int       `json:"id"`
	TargetHandle string    `json:"target_handle"`
	Platform     string    `json:"platform"`
	ActionType   string    `json:"action_type"`
	Content      string    `json:"content,omitempty"`
	PerformedAt  time.Time `json:"performed_at"`
}

type Stats struct {
	Accounts           int            `json:"accounts"`
	Profiles           int            `json:"profiles"`
	Actions            int            `json:"actions"`
	ProfilesByPlatform map[string]int `json:"profiles_by_platform"`
}

type ActivityEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Level     string    `json:"level"`
	Platform  string    `json:"platform,omitempty"`
}

type RobotStatus struct {
	CurrentTask string           `json:"current_task"`
	Entries     []*ActivityEntry `json:"entries"`
}

type CycleRequest struct {
	Platform          string `json:"platform"`
	ActionType        string `json:"action_type,omitempty"`
	TargetCount       int    `json:"target_count,omitempty"`
	UseGeneratedText  bool   `json:"use_generated_text,omitempty"`
	ManualText        string `json:"manual_text,omitempty"`
	GenerationPrompt  string `json:"generation_prompt,omitempty"`
	UnfollowAfterDays int    `json:"unfollow_after_days,omitempty"`
	UnfollowCount     int    `json:"unfollow_count,omitempty"`
}

type IdeaRequest struct {
	Niche           string `json:"niche"`
	Platform        string `json:"platform"`
	VisualMode      string `json:"visual_mode"`
	Format          string `json:"format"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

type StoryboardScene struct {
	TimeLabel    string `json:"time_label"`
	Description  string `json:"description"`
	ReferenceUri string `json:"reference_uri"`
}

type PostIdea struct {
	Id                   string             `json:"id"`
	Platform             string             `json:"platform"`
	Title                string             `json:"title"`
	Script               string             `json:"script"`
	NarratorScript       string             `json:"narrator_script,omitempty"`
	VideoDurationSeconds int                `json:"video_duration_seconds,omitempty"`
	Caption              string             `json:"caption"`
	Hashtags             []string           `json:"hashtags"`
	Cta                  string             `json:"cta"`
	OverlayText          string             `json:"overlay_text"`
	VisualMode           string             `json:"visual_mode"`
	ImageUrl             string             `json:"image_url,omitempty"`
	Storyboard           []*StoryboardScene `json:"storyboard,omitempty"`
}
