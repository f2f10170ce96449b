package logic

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"github.com/microcosm-cc/bluemonday"
	"google.golang.org/genai"
	"social_pilot/shared"
	"social_pilot/texts"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_generator.go -package mocks social_pilot/logic IGenerator

type TextKind string

const (
	TextComment TextKind = "comment"
	TextDirect  TextKind = "direct"
)

type VisualMode string

const (
	VisualAiGenerated VisualMode = "ai_generated"
	VisualWebSearch   VisualMode = "web_search"
)

type IdeaFormat string

const (
	FormatImage IdeaFormat = "image"
	FormatVideo IdeaFormat = "video"
)

type StoryboardScene struct {
	TimeLabel    string
	Description  string
	ReferenceUri string
}

// PostIdea is a ready-to-publish post blueprint. It is held by the caller
// only; nothing is persisted until the idea is published.
type PostIdea struct {
	Id                   string
	Platform             shared.Platform
	Title                string
	Script               string
	NarratorScript       string // video formats only
	VideoDurationSeconds int    // video formats only
	Caption              string
	Hashtags             []string
	Cta                  string
	OverlayText          string
	VisualMode           VisualMode
	ImageUrl             string
	Storyboard           []StoryboardScene
}

type IdeaRequest struct {
	Niche           string
	Platform        shared.Platform
	VisualMode      VisualMode
	Format          IdeaFormat
	DurationSeconds int
}

// IGenerator produces engagement text, post ideas and sentiment labels.
// GenerateText failures are recoverable for callers (degrade to manual
// text); GenerateIdea failures propagate.
type IGenerator interface {
	GenerateText(ctx context.Context, prompt string, platform shared.Platform, kind TextKind) (string, error)
	GenerateIdea(ctx context.Context, req *IdeaRequest) (*PostIdea, error)
	ClassifySentiment(ctx context.Context, text string) (shared.Sentiment, error)
}

type geminiGenerator struct {
	cfg      *shared.Config
	logger   shared.ILogger
	txt      texts.ITexts
	metrics  IMetrics
	client   *genai.Client
	sanitize *bluemonday.Policy
}

func NewGenerator(cfg *shared.Config, logger shared.ILogger, txt texts.ITexts, metrics IMetrics) IGenerator {

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: cfg.Secrets.GeminiApiKey,
	})
	if err != nil {
		logger.Errorf("Failed to create Gemini client: %v", err)
		panic(err)
	}

	return &geminiGenerator{
		cfg:      cfg,
		logger:   logger,
		txt:      txt,
		metrics:  metrics,
		client:   client,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// Every generator call runs under this timeout; expiry counts as a generator
// failure and follows the caller's usual fallback policy.
func (gg *geminiGenerator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, time.Duration(gg.cfg.GeneratorTimeoutSec)*time.Second)
}

func (gg *geminiGenerator) GenerateText(ctx context.Context, prompt string, platform shared.Platform, kind TextKind) (string, error) {

	ctx, cancel := gg.withTimeout(ctx)
	defer cancel()
	gg.metrics.GeneratorCall("text")

	snippet := "prompt_comment.txt"
	if kind == TextDirect {
		snippet = "prompt_direct.txt"
	}
	fullPrompt := gg.txt.WithVals(snippet, map[string]string{
		"platform": string(platform),
		"prompt":   prompt,
	})

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.8),
	}
	result, err := gg.client.Models.GenerateContent(ctx, gg.cfg.TextModel, genai.Text(fullPrompt), config)
	if err != nil {
		gg.metrics.GeneratorFailure("text")
		return "", err
	}
	text := firstCandidateText(result)
	if text == "" {
		gg.metrics.GeneratorFailure("text")
		return "", fmt.Errorf("generator returned no text for %s/%s", platform, kind)
	}
	return strings.TrimSpace(gg.sanitize.Sanitize(text)), nil
}

// ideaPayload is the shape we ask the model to fill via responseSchema.
type ideaPayload struct {
	Title             string   `json:"title"`
	Script            string   `json:"script"`
	NarratorScript    string   `json:"narratorScript"`
	Caption           string   `json:"caption"`
	Hashtags          []string `json:"hashtags"`
	Cta               string   `json:"cta"`
	OverlayText       string   `json:"overlayText"`
	ImageSearchPrompt string   `json:"imageSearchPrompt"`
}

func ideaSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":             {Type: genai.TypeString},
			"script":            {Type: genai.TypeString},
			"narratorScript":    {Type: genai.TypeString},
			"caption":           {Type: genai.TypeString},
			"hashtags":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"cta":               {Type: genai.TypeString},
			"overlayText":       {Type: genai.TypeString, Description: "Hook text overlaid on the visual"},
			"imageSearchPrompt": {Type: genai.TypeString},
		},
		Required: []string{"title", "script", "caption", "hashtags", "cta", "overlayText"},
	}
}

func (gg *geminiGenerator) GenerateIdea(ctx context.Context, req *IdeaRequest) (*PostIdea, error) {

	ctx, cancel := gg.withTimeout(ctx)
	defer cancel()
	gg.metrics.GeneratorCall("idea")

	duration := req.DurationSeconds
	if duration <= 0 {
		duration = 30
	}

	snippet := "prompt_idea_image.txt"
	if req.Format == FormatVideo {
		snippet = "prompt_idea_video.txt"
	}
	prompt := gg.txt.WithVals(snippet, map[string]string{
		"platform": string(req.Platform),
		"niche":    req.Niche,
		"duration": fmt.Sprintf("%d", duration),
		"mode":     string(req.VisualMode),
	})

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   ideaSchema(),
	}
	result, err := gg.client.Models.GenerateContent(ctx, gg.cfg.IdeaModel, genai.Text(prompt), config)
	if err != nil {
		gg.metrics.GeneratorFailure("idea")
		return nil, err
	}

	var payload ideaPayload
	if err = json.Unmarshal([]byte(cleanJson(firstCandidateText(result))), &payload); err != nil {
		gg.metrics.GeneratorFailure("idea")
		return nil, fmt.Errorf("failed to parse generated idea: %w", err)
	}

	idea := &PostIdea{
		Id:             fmt.Sprintf("%d", time.Now().UTC().UnixNano()),
		Platform:       req.Platform,
		Title:          payload.Title,
		Script:         payload.Script,
		NarratorScript: payload.NarratorScript,
		Caption:        payload.Caption,
		Hashtags:       payload.Hashtags,
		Cta:            payload.Cta,
		OverlayText:    payload.OverlayText,
		VisualMode:     req.VisualMode,
	}
	if req.Format == FormatVideo {
		idea.VideoDurationSeconds = duration
	}

	if req.VisualMode == VisualAiGenerated && req.Format == FormatImage {
		idea.ImageUrl = gg.generateImage(ctx, req, payload.Title)
	} else {
		idea.ImageUrl = gg.searchReferenceImage(ctx, req, &payload)
		if req.Format == FormatVideo {
			idea.Storyboard = buildStoryboard(duration, idea.ImageUrl, gg.cfg.FallbackImageUrl)
		}
	}
	return idea, nil
}

// generateImage asks the image model for an inline picture and returns it as
// a data URL; empty string if nothing came back.
func (gg *geminiGenerator) generateImage(ctx context.Context, req *IdeaRequest, title string) string {

	prompt := gg.txt.WithVals("prompt_image.txt", map[string]string{
		"platform": string(req.Platform),
		"niche":    req.Niche,
		"title":    title,
	})
	result, err := gg.client.Models.GenerateContent(ctx, gg.cfg.ImageModel, genai.Text(prompt), nil)
	if err != nil {
		gg.logger.Warnf("Image generation failed, idea ships without visual: %v", err)
		return ""
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			b64 := base64.StdEncoding.EncodeToString(part.InlineData.Data)
			return fmt.Sprintf("data:image/png;base64,%s", b64)
		}
	}
	return ""
}

// searchReferenceImage runs a grounded web search for a real reference visual
// and falls back to the configured stock image.
func (gg *geminiGenerator) searchReferenceImage(ctx context.Context, req *IdeaRequest, payload *ideaPayload) string {

	searchFor := payload.ImageSearchPrompt
	if searchFor == "" {
		searchFor = payload.Title
	}
	prompt := gg.txt.WithVals("prompt_image_search.txt", map[string]string{
		"niche":  req.Niche,
		"search": searchFor,
	})
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
	result, err := gg.client.Models.GenerateContent(ctx, gg.cfg.IdeaModel, genai.Text(prompt), config)
	if err != nil {
		gg.logger.Warnf("Reference image search failed: %v", err)
		return gg.cfg.FallbackImageUrl
	}
	if len(result.Candidates) > 0 && result.Candidates[0].GroundingMetadata != nil {
		for _, chunk := range result.Candidates[0].GroundingMetadata.GroundingChunks {
			if chunk.Web != nil && chunk.Web.URI != "" {
				return chunk.Web.URI
			}
		}
	}
	return gg.cfg.FallbackImageUrl
}

func buildStoryboard(durationSec int, openingUri, fallbackUri string) []StoryboardScene {
	return []StoryboardScene{
		{TimeLabel: "00:00", Description: "Opening scene (hook)", ReferenceUri: openingUri},
		{TimeLabel: fmt.Sprintf("00:%02d", durationSec/2), Description: "Explanation / main content", ReferenceUri: fallbackUri},
		{TimeLabel: fmt.Sprintf("00:%02d", durationSec), Description: "Final call to action", ReferenceUri: fallbackUri},
	}
}

func (gg *geminiGenerator) ClassifySentiment(ctx context.Context, text string) (shared.Sentiment, error) {

	ctx, cancel := gg.withTimeout(ctx)
	defer cancel()
	gg.metrics.GeneratorCall("sentiment")

	prompt := gg.txt.WithVals("prompt_sentiment.txt", map[string]string{
		"text": text,
	})
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"sentiment": {Type: genai.TypeString},
			},
			Required: []string{"sentiment"},
		},
	}
	result, err := gg.client.Models.GenerateContent(ctx, gg.cfg.TextModel, genai.Text(prompt), config)
	if err != nil {
		gg.metrics.GeneratorFailure("sentiment")
		return shared.SentimentNeutral, err
	}
	var payload struct {
		Sentiment string `json:"sentiment"`
	}
	if err = json.Unmarshal([]byte(cleanJson(firstCandidateText(result))), &payload); err != nil {
		gg.metrics.GeneratorFailure("sentiment")
		return shared.SentimentNeutral, err
	}
	switch shared.Sentiment(strings.ToLower(payload.Sentiment)) {
	case shared.SentimentPositive:
		return shared.SentimentPositive, nil
	case shared.SentimentNegative:
		return shared.SentimentNegative, nil
	default:
		return shared.SentimentNeutral, nil
	}
}

func firstCandidateText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text
		}
	}
	return ""
}

// Models sometimes wrap JSON in markdown fences even with a response schema.
func cleanJson(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
