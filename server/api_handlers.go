package server

import (
	"encoding/json"
	"errors"
	"github.com/gorilla/mux"
	"net/http"
	"social_pilot/dal"
	"social_pilot/dto"
	"social_pilot/logic"
	"social_pilot/shared"
	"strconv"
)

type apiHandlerGroup struct {
	cfg          *shared.Config
	logger       shared.ILogger
	repo         dal.IRepo
	orchestrator logic.IOrchestrator
	generator    logic.IGenerator
	activityLog  logic.IActivityLog
	stats        logic.IStats
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	orchestrator logic.IOrchestrator,
	generator logic.IGenerator,
	activityLog logic.IActivityLog,
	stats logic.IStats,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:          cfg,
		logger:       logger,
		repo:         repo,
		orchestrator: orchestrator,
		generator:    generator,
		activityLog:  activityLog,
		stats:        stats,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"GET", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.getAccounts(w, r) }},
		{"POST", "/accounts", func(w http.ResponseWriter, r *http.Request) { hg.postAccounts(w, r) }},
		{"DELETE", "/accounts/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteAccount(w, r) }},
		{"GET", "/profiles", func(w http.ResponseWriter, r *http.Request) { hg.getProfiles(w, r) }},
		{"POST", "/profiles", func(w http.ResponseWriter, r *http.Request) { hg.postProfiles(w, r) }},
		{"GET", "/actions", func(w http.ResponseWriter, r *http.Request) { hg.getActions(w, r) }},
		{"GET", "/interacted", func(w http.ResponseWriter, r *http.Request) { hg.getInteracted(w, r) }},
		{"GET", "/stats", func(w http.ResponseWriter, r *http.Request) { hg.getStats(w, r) }},
		{"GET", "/activity", func(w http.ResponseWriter, r *http.Request) { hg.getActivity(w, r) }},
		{"POST", "/cycles/engagement", func(w http.ResponseWriter, r *http.Request) { hg.postEngagementCycle(w, r) }},
		{"POST", "/cycles/unfollow", func(w http.ResponseWriter, r *http.Request) { hg.postUnfollowCycle(w, r) }},
		{"POST", "/ideas", func(w http.ResponseWriter, r *http.Request) { hg.postIdeas(w, r) }},
		{"POST", "/ideas/publish", func(w http.ResponseWriter, r *http.Request) { hg.postIdeasPublish(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey == key {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Query param 'platform' is optional on list endpoints; empty means all.
func platformParam(r *http.Request) (shared.Platform, error) {
	str := r.URL.Query().Get("platform")
	if str == "" {
		return "", nil
	}
	platform := shared.Platform(str)
	if err := shared.ValidatePlatform(platform); err != nil {
		return "", err
	}
	return platform, nil
}

func (hg *apiHandlerGroup) getAccounts(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("GET /api/accounts: Request received")

	platform, err := platformParam(r)
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	accounts, err := hg.repo.GetAccounts(platform)
	if err != nil {
		hg.logger.Errorf("Failed to query accounts: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	res := make([]*dto.Account, 0, len(accounts))
	for _, acct := range accounts {
		res = append(res, accountToDto(acct))
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) postAccounts(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/accounts: Request received")

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.AddAccount
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err := shared.ValidatePlatform(shared.Platform(req.Platform)); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	username := shared.NormalizeHandle(req.Username)
	if err := shared.ValidateHandle(username); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	acct := &dal.Account{
		Username: username,
		Platform: shared.Platform(req.Platform),
		Status:   shared.AccountActive,
	}
	if err := hg.repo.AddAccount(acct); err != nil {
		hg.logger.Errorf("Failed to store account @%s: %v", username, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, accountToDto(acct))
}

func (hg *apiHandlerGroup) deleteAccount(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("DELETE /api/accounts/{id}: Request received")

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err = hg.repo.DeleteAccount(id); err != nil {
		hg.logger.Errorf("Failed to delete account %d: %v", id, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, struct{}{})
}

func (hg *apiHandlerGroup) getProfiles(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("GET /api/profiles: Request received")

	platform, err := platformParam(r)
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	maxCount := 0
	if maxStr := r.URL.Query().Get("max"); maxStr != "" {
		if maxCount, err = strconv.Atoi(maxStr); err != nil {
			writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
			return
		}
	}
	profiles, err := hg.repo.GetProfiles(platform, maxCount)
	if err != nil {
		hg.logger.Errorf("Failed to query profiles: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	res := make([]*dto.Profile, 0, len(profiles))
	for _, profile := range profiles {
		res = append(res, profileToDto(profile))
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) postProfiles(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/profiles: Request received")

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.AddProfile
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err := shared.ValidatePlatform(shared.Platform(req.Platform)); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	handle := shared.NormalizeHandle(req.TargetHandle)
	if err := shared.ValidateHandle(handle); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	originType := shared.OriginType(req.OriginType)
	if originType != shared.OriginLike && originType != shared.OriginComment {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	profile := &dal.Profile{
		TargetHandle:  handle,
		Platform:      shared.Platform(req.Platform),
		OriginType:    originType,
		OriginProfile: shared.NormalizeHandle(req.OriginProfile),
		Comment:       req.Comment,
		Niche:         req.Niche,
	}
	if req.Comment != "" {
		// ClassifySentiment falls back to neutral itself; a hard error only
		// means we store the profile unlabeled.
		sentiment, err := hg.generator.ClassifySentiment(r.Context(), req.Comment)
		if err != nil {
			hg.logger.Warnf("Sentiment classification failed for @%s: %v", handle, err)
		}
		profile.CommentSentiment = sentiment
	}

	isNew, err := hg.repo.AddProfileIfNew(profile)
	if err != nil {
		hg.logger.Errorf("Failed to store profile @%s: %v", handle, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	res := dto.AddProfileResult{IsNew: isNew}
	if isNew {
		res.Profile = profileToDto(profile)
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) getActions(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("GET /api/actions: Request received")

	platform, err := platformParam(r)
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	actions, err := hg.repo.GetActions(platform)
	if err != nil {
		hg.logger.Errorf("Failed to query actions: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	res := make([]*dto.Action, 0, len(actions))
	for _, action := range actions {
		res = append(res, actionToDto(action))
	}
	writeJsonResponse(hg.logger, w, res)
}

func (hg *apiHandlerGroup) getInteracted(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("GET /api/interacted: Request received")

	platform, err := platformParam(r)
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if platform == "" {
		writeErrorResponse(w, "platform parameter is required", http.StatusBadRequest)
		return
	}
	handles, err := hg.repo.GetInteractedHandles(platform)
	if err != nil {
		hg.logger.Errorf("Failed to query interacted handles: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, handles)
}

func (hg *apiHandlerGroup) getStats(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("GET /api/stats: Request received")

	summary, err := hg.stats.Summary()
	if err != nil {
		hg.logger.Errorf("Failed to compute stats: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	byPlatform := make(map[string]int, len(summary.ProfilesByPlatform))
	for platform, count := range summary.ProfilesByPlatform {
		byPlatform[string(platform)] = count
	}
	writeJsonResponse(hg.logger, w, &dto.Stats{
		Accounts:           summary.Accounts,
		Profiles:           summary.Profiles,
		Actions:            summary.Actions,
		ProfilesByPlatform: byPlatform,
	})
}

func (hg *apiHandlerGroup) getActivity(w http.ResponseWriter, r *http.Request) {

	entries := hg.activityLog.Entries()
	res := dto.RobotStatus{
		CurrentTask: hg.orchestrator.CurrentTask(),
		Entries:     make([]*dto.ActivityEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		res.Entries = append(res.Entries, &dto.ActivityEntry{
			Timestamp: entry.Timestamp,
			Message:   entry.Message,
			Level:     string(entry.Level),
			Platform:  string(entry.Platform),
		})
	}
	writeJsonResponse(hg.logger, w, &res)
}

func (hg *apiHandlerGroup) readCycleRequest(w http.ResponseWriter, r *http.Request) *logic.CycleConfig {
	body := readBody(hg.logger, w, r)
	if body == nil {
		return nil
	}
	var req dto.CycleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return nil
	}
	if err := shared.ValidatePlatform(shared.Platform(req.Platform)); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	return &logic.CycleConfig{
		Platform:          shared.Platform(req.Platform),
		ActionType:        shared.ActionType(req.ActionType),
		TargetCount:       req.TargetCount,
		UseGeneratedText:  req.UseGeneratedText,
		ManualText:        req.ManualText,
		GenerationPrompt:  req.GenerationPrompt,
		UnfollowAfterDays: req.UnfollowAfterDays,
		UnfollowCount:     req.UnfollowCount,
	}
}

// Maps orchestrator outcomes to status codes; cycles run synchronously and
// the UI polls /api/activity for progress in the meantime.
func (hg *apiHandlerGroup) writeCycleOutcome(w http.ResponseWriter, err error) {
	if err == nil {
		writeJsonResponse(hg.logger, w, struct{}{})
		return
	}
	switch {
	case errors.Is(err, logic.ErrCycleRunning):
		writeErrorResponse(w, conflictStr, http.StatusConflict)
	case errors.Is(err, logic.ErrNoActiveAccount), errors.Is(err, logic.ErrNoEligibleTargets):
		writeErrorResponse(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
	}
}

func (hg *apiHandlerGroup) postEngagementCycle(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/cycles/engagement: Request received")

	cycleCfg := hg.readCycleRequest(w, r)
	if cycleCfg == nil {
		return
	}
	if err := shared.ValidateActionType(cycleCfg.ActionType); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	hg.writeCycleOutcome(w, hg.orchestrator.RunEngagementCycle(r.Context(), cycleCfg))
}

func (hg *apiHandlerGroup) postUnfollowCycle(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/cycles/unfollow: Request received")

	cycleCfg := hg.readCycleRequest(w, r)
	if cycleCfg == nil {
		return
	}
	hg.writeCycleOutcome(w, hg.orchestrator.RunUnfollowCycle(r.Context(), cycleCfg))
}

func (hg *apiHandlerGroup) postIdeas(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/ideas: Request received")

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.IdeaRequest
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err := shared.ValidatePlatform(shared.Platform(req.Platform)); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	format := logic.IdeaFormat(req.Format)
	if format != logic.FormatImage && format != logic.FormatVideo {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	mode := logic.VisualMode(req.VisualMode)
	if mode != logic.VisualAiGenerated && mode != logic.VisualWebSearch {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	idea, err := hg.orchestrator.GenerateIdea(r.Context(), &logic.IdeaRequest{
		Niche:           req.Niche,
		Platform:        shared.Platform(req.Platform),
		VisualMode:      mode,
		Format:          format,
		DurationSeconds: req.DurationSeconds,
	})
	if err != nil {
		hg.logger.Errorf("Idea generation failed: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	writeJsonResponse(hg.logger, w, ideaToDto(idea))
}

func (hg *apiHandlerGroup) postIdeasPublish(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/ideas/publish: Request received")

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.PostIdea
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid JSON in request body: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	if err := shared.ValidatePlatform(shared.Platform(req.Platform)); err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		writeErrorResponse(w, "idea title cannot be empty", http.StatusBadRequest)
		return
	}
	hg.writeCycleOutcome(w, hg.orchestrator.Publish(r.Context(), ideaFromDto(&req)))
}

func accountToDto(acct *dal.Account) *dto.Account {
	return &dto.Account{
		Id:        acct.Id,
		Username:  acct.Username,
		Platform:  string(acct.Platform),
		Status:    acct.Status,
		CreatedAt: acct.CreatedAt,
	}
}

func profileToDto(profile *dal.Profile) *dto.Profile {
	return &dto.Profile{
		Id:               profile.Id,
		TargetHandle:     profile.TargetHandle,
		Platform:         string(profile.Platform),
		OriginType:       string(profile.OriginType),
		OriginProfile:    profile.OriginProfile,
		Comment:          profile.Comment,
		CommentSentiment: string(profile.CommentSentiment),
		Niche:            profile.Niche,
		InsertedAt:       profile.InsertedAt,
	}
}

func actionToDto(action *dal.Action) *dto.Action {
	return &dto.Action{
		Id:           action.Id,
		TargetHandle: action.TargetHandle,
		Platform:     string(action.Platform),
		ActionType:   string(action.ActionType),
		Content:      action.Content,
		PerformedAt:  action.PerformedAt,
	}
}

func ideaToDto(idea *logic.PostIdea) *dto.PostIdea {
	res := &dto.PostIdea{
		Id:                   idea.Id,
		Platform:             string(idea.Platform),
		Title:                idea.Title,
		Script:               idea.Script,
		NarratorScript:       idea.NarratorScript,
		VideoDurationSeconds: idea.VideoDurationSeconds,
		Caption:              idea.Caption,
		Hashtags:             idea.Hashtags,
		Cta:                  idea.Cta,
		OverlayText:          idea.OverlayText,
		VisualMode:           string(idea.VisualMode),
		ImageUrl:             idea.ImageUrl,
	}
	for _, scene := range idea.Storyboard {
		res.Storyboard = append(res.Storyboard, &dto.StoryboardScene{
			TimeLabel:    scene.TimeLabel,
			Description:  scene.Description,
			ReferenceUri: scene.ReferenceUri,
		})
	}
	return res
}

func ideaFromDto(req *dto.PostIdea) *logic.PostIdea {
	res := &logic.PostIdea{
		Id:                   req.Id,
		Platform:             shared.Platform(req.Platform),
		Title:                req.Title,
		Script:               req.Script,
		NarratorScript:       req.NarratorScript,
		VideoDurationSeconds: req.VideoDurationSeconds,
		Caption:              req.Caption,
		Hashtags:             req.Hashtags,
		Cta:                  req.Cta,
		OverlayText:          req.OverlayText,
		VisualMode:           logic.VisualMode(req.VisualMode),
		ImageUrl:             req.ImageUrl,
	}
	for _, scene := range req.Storyboard {
		res.Storyboard = append(res.Storyboard, logic.StoryboardScene{
			TimeLabel:    scene.TimeLabel,
			Description:  scene.Description,
			ReferenceUri: scene.ReferenceUri,
		})
	}
	return res
}
