package logic

import (
	"context"
	"errors"
	"fmt"
	"social_pilot/dal"
	"social_pilot/shared"
	"social_pilot/texts"
	"strings"
	"sync"
	"sync/atomic"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_orchestrator.go -package mocks social_pilot/logic IOrchestrator

var (
	// ErrNoActiveAccount: no acting identity linked for the platform.
	ErrNoActiveAccount = errors.New("no active account for platform")
	// ErrNoEligibleTargets: the collected-profile pool is empty for the platform.
	ErrNoEligibleTargets = errors.New("no eligible targets for platform")
	// ErrCycleRunning: a cycle is in progress; concurrent cycles are rejected, not queued.
	ErrCycleRunning = errors.New("an automation cycle is already running")
)

// CycleConfig carries the per-cycle parameters; it is not persisted.
type CycleConfig struct {
	Platform          shared.Platform
	ActionType        shared.ActionType
	TargetCount       int
	UseGeneratedText  bool
	ManualText        string
	GenerationPrompt  string
	UnfollowAfterDays int
	UnfollowCount     int
}

// IOrchestrator runs bounded automation cycles against collected targets.
// One cycle at a time; each cycle runs to completion or aborts on the first
// unrecoverable error, and every terminal condition leaves exactly one
// activity log entry.
type IOrchestrator interface {
	RunEngagementCycle(ctx context.Context, cycleCfg *CycleConfig) error
	RunUnfollowCycle(ctx context.Context, cycleCfg *CycleConfig) error
	GenerateIdea(ctx context.Context, req *IdeaRequest) (*PostIdea, error)
	Publish(ctx context.Context, idea *PostIdea) error
	CurrentTask() string
}

type orchestrator struct {
	cfg         *shared.Config
	logger      shared.ILogger
	repo        dal.IRepo
	eligibility IEligibility
	generator   IGenerator
	executor    IActionExecutor
	activityLog IActivityLog
	metrics     IMetrics
	txt         texts.ITexts
	busy        atomic.Bool
	muTask      sync.Mutex
	currentTask string
}

func NewOrchestrator(
	cfg *shared.Config,
	logger shared.ILogger,
	repo dal.IRepo,
	eligibility IEligibility,
	generator IGenerator,
	executor IActionExecutor,
	activityLog IActivityLog,
	metrics IMetrics,
	txt texts.ITexts,
) IOrchestrator {

	return &orchestrator{
		cfg:         cfg,
		logger:      logger,
		repo:        repo,
		eligibility: eligibility,
		generator:   generator,
		executor:    executor,
		activityLog: activityLog,
		metrics:     metrics,
		txt:         txt,
	}
}

func (o *orchestrator) CurrentTask() string {
	o.muTask.Lock()
	defer o.muTask.Unlock()
	return o.currentTask
}

func (o *orchestrator) setCurrentTask(task string) {
	o.muTask.Lock()
	o.currentTask = task
	o.muTask.Unlock()
}

// acquire claims the single-cycle slot; callers must release() when done.
func (o *orchestrator) acquire() bool {
	if !o.busy.CompareAndSwap(false, true) {
		return false
	}
	o.metrics.CycleRunning(true)
	return true
}

func (o *orchestrator) release() {
	o.setCurrentTask("")
	o.metrics.CycleRunning(false)
	o.busy.Store(false)
}

func (o *orchestrator) applyDefaults(cycleCfg *CycleConfig) {
	def := o.cfg.Automation
	if cycleCfg.TargetCount <= 0 {
		cycleCfg.TargetCount = def.TargetCount
	}
	if cycleCfg.UnfollowAfterDays <= 0 {
		cycleCfg.UnfollowAfterDays = def.UnfollowAfterDays
	}
	if cycleCfg.UnfollowCount <= 0 {
		cycleCfg.UnfollowCount = def.UnfollowCount
	}
	if cycleCfg.GenerationPrompt == "" {
		cycleCfg.GenerationPrompt = def.GenerationPrompt
	}
}

func (o *orchestrator) RunEngagementCycle(ctx context.Context, cycleCfg *CycleConfig) error {

	if !o.acquire() {
		return ErrCycleRunning
	}
	defer o.release()
	o.applyDefaults(cycleCfg)
	o.metrics.CycleStarted("engagement")

	acct, err := o.repo.GetActiveAccount(cycleCfg.Platform)
	if err != nil {
		return o.abortCycle("engagement", cycleCfg.Platform, err)
	}
	if acct == nil {
		o.activityLog.Append(LevelError, cycleCfg.Platform, o.txt.WithVals("log_no_account.txt",
			map[string]string{"platform": string(cycleCfg.Platform)}))
		o.metrics.CycleFinished("engagement", "no_account")
		return ErrNoActiveAccount
	}

	targets, err := o.eligibility.EligibleTargets(cycleCfg.Platform, cycleCfg.TargetCount)
	if err != nil {
		return o.abortCycle("engagement", cycleCfg.Platform, err)
	}
	if len(targets) == 0 {
		o.activityLog.Append(LevelWarning, cycleCfg.Platform, o.txt.Get("log_no_targets.txt"))
		o.metrics.CycleFinished("engagement", "no_targets")
		return ErrNoEligibleTargets
	}

	o.activityLog.Append(LevelInfo, cycleCfg.Platform, o.txt.WithVals("log_cycle_start.txt",
		map[string]string{"username": acct.Username}))

	for _, profile := range targets {
		o.setCurrentTask(fmt.Sprintf("Engaging @%s", profile.TargetHandle))

		content := cycleCfg.ManualText
		if cycleCfg.UseGeneratedText && wantsText(cycleCfg.ActionType) {
			kind := TextComment
			if cycleCfg.ActionType == shared.ActionDirect {
				kind = TextDirect
			}
			generated, gerr := o.generator.GenerateText(ctx, cycleCfg.GenerationPrompt, cycleCfg.Platform, kind)
			if gerr != nil {
				// Degrade, don't abort: the action proceeds with manual text
				o.logger.Warnf("Text generation failed for @%s, proceeding without: %v", profile.TargetHandle, gerr)
			} else {
				content = generated
			}
		}

		action := &dal.Action{
			TargetHandle: profile.TargetHandle,
			Platform:     cycleCfg.Platform,
			ActionType:   cycleCfg.ActionType,
			Content:      content,
		}
		if err = o.executor.Perform(ctx, action); err != nil {
			return o.abortCycle("engagement", cycleCfg.Platform,
				fmt.Errorf("action %s on @%s failed: %w", cycleCfg.ActionType, profile.TargetHandle, err))
		}
		if err = o.repo.AddAction(action); err != nil {
			return o.abortCycle("engagement", cycleCfg.Platform,
				fmt.Errorf("failed to record %s on @%s: %w", cycleCfg.ActionType, profile.TargetHandle, err))
		}
		o.metrics.ActionPerformed(string(cycleCfg.ActionType))
		o.activityLog.Append(LevelSuccess, cycleCfg.Platform, o.txt.WithVals("log_action_done.txt",
			map[string]string{
				"action": strings.ToUpper(string(cycleCfg.ActionType)),
				"handle": profile.TargetHandle,
			}))
	}

	o.activityLog.Append(LevelSuccess, cycleCfg.Platform, o.txt.Get("log_cycle_done.txt"))
	o.metrics.CycleFinished("engagement", "completed")
	return nil
}

func (o *orchestrator) RunUnfollowCycle(ctx context.Context, cycleCfg *CycleConfig) error {

	if !o.acquire() {
		return ErrCycleRunning
	}
	defer o.release()
	o.applyDefaults(cycleCfg)
	o.metrics.CycleStarted("unfollow")

	acct, err := o.repo.GetActiveAccount(cycleCfg.Platform)
	if err != nil {
		return o.abortCycle("unfollow", cycleCfg.Platform, err)
	}
	if acct == nil {
		o.activityLog.Append(LevelError, cycleCfg.Platform, o.txt.WithVals("log_no_account.txt",
			map[string]string{"platform": string(cycleCfg.Platform)}))
		o.metrics.CycleFinished("unfollow", "no_account")
		return ErrNoActiveAccount
	}

	candidates, err := o.eligibility.UnfollowCandidates(cycleCfg.Platform, cycleCfg.UnfollowCount, cycleCfg.UnfollowAfterDays)
	if err != nil {
		return o.abortCycle("unfollow", cycleCfg.Platform, err)
	}
	if len(candidates) == 0 {
		// Info, not warning: an empty cleanup backlog is a normal state
		o.activityLog.Append(LevelInfo, cycleCfg.Platform, o.txt.Get("log_no_unfollow.txt"))
		o.metrics.CycleFinished("unfollow", "no_candidates")
		return nil
	}

	o.activityLog.Append(LevelInfo, cycleCfg.Platform, o.txt.WithVals("log_unfollow_start.txt",
		map[string]string{"username": acct.Username}))

	for _, followed := range candidates {
		o.setCurrentTask(fmt.Sprintf("Unfollowing @%s", followed.TargetHandle))

		action := &dal.Action{
			TargetHandle: followed.TargetHandle,
			Platform:     cycleCfg.Platform,
			ActionType:   shared.ActionUnfollow,
		}
		if err = o.executor.Perform(ctx, action); err != nil {
			return o.abortCycle("unfollow", cycleCfg.Platform,
				fmt.Errorf("unfollow of @%s failed: %w", followed.TargetHandle, err))
		}
		if err = o.repo.AddAction(action); err != nil {
			return o.abortCycle("unfollow", cycleCfg.Platform,
				fmt.Errorf("failed to record unfollow of @%s: %w", followed.TargetHandle, err))
		}
		o.metrics.ActionPerformed(string(shared.ActionUnfollow))
		o.activityLog.Append(LevelSuccess, cycleCfg.Platform, o.txt.WithVals("log_action_done.txt",
			map[string]string{
				"action": strings.ToUpper(string(shared.ActionUnfollow)),
				"handle": followed.TargetHandle,
			}))
	}

	o.activityLog.Append(LevelSuccess, cycleCfg.Platform, o.txt.Get("log_cycle_done.txt"))
	o.metrics.CycleFinished("unfollow", "completed")
	return nil
}

func (o *orchestrator) GenerateIdea(ctx context.Context, req *IdeaRequest) (*PostIdea, error) {

	o.activityLog.Append(LevelInfo, req.Platform, o.txt.WithVals("log_idea_start.txt",
		map[string]string{
			"format":   strings.ToUpper(string(req.Format)),
			"platform": string(req.Platform),
		}))

	idea, err := o.generator.GenerateIdea(ctx, req)
	if err != nil {
		o.activityLog.Append(LevelError, req.Platform, o.txt.Get("log_idea_error.txt"))
		return nil, err
	}
	o.activityLog.Append(LevelSuccess, req.Platform, o.txt.Get("log_idea_done.txt"))
	return idea, nil
}

func (o *orchestrator) Publish(ctx context.Context, idea *PostIdea) error {

	if !o.acquire() {
		return ErrCycleRunning
	}
	defer o.release()
	o.metrics.CycleStarted("publish")

	acct, err := o.repo.GetActiveAccount(idea.Platform)
	if err != nil {
		return o.abortCycle("publish", idea.Platform, err)
	}
	if acct == nil {
		o.activityLog.Append(LevelError, idea.Platform, o.txt.WithVals("log_no_account.txt",
			map[string]string{"platform": string(idea.Platform)}))
		o.metrics.CycleFinished("publish", "no_account")
		return ErrNoActiveAccount
	}

	o.activityLog.Append(LevelInfo, idea.Platform, o.txt.WithVals("log_publish_start.txt",
		map[string]string{"username": acct.Username}))
	o.setCurrentTask(fmt.Sprintf("Publishing '%s'", shared.TruncateWithEllipsis(idea.Title, 40)))

	// Publishing is recorded as a like-surrogate on the acting account, with
	// the idea title in the content for the audit trail.
	action := &dal.Action{
		TargetHandle: acct.Username,
		Platform:     idea.Platform,
		ActionType:   shared.ActionLike,
		Content:      fmt.Sprintf("Post: %s", idea.Title),
	}
	if err = o.executor.Perform(ctx, action); err != nil {
		return o.abortCycle("publish", idea.Platform, fmt.Errorf("publish of '%s' failed: %w", idea.Title, err))
	}
	if err = o.repo.AddAction(action); err != nil {
		return o.abortCycle("publish", idea.Platform, fmt.Errorf("failed to record publish of '%s': %w", idea.Title, err))
	}
	o.metrics.ActionPerformed(string(shared.ActionLike))
	o.activityLog.Append(LevelSuccess, idea.Platform, o.txt.WithVals("log_publish_done.txt",
		map[string]string{"username": acct.Username}))
	o.metrics.CycleFinished("publish", "completed")
	return nil
}

// abortCycle logs the terminal error entry and passes the error through.
// Already-recorded actions stay recorded; there is no rollback and no retry.
func (o *orchestrator) abortCycle(kind string, platform shared.Platform, err error) error {
	o.logger.Errorf("%s cycle aborted: %v", kind, err)
	o.activityLog.Append(LevelError, platform, o.txt.WithVals("log_cycle_aborted.txt",
		map[string]string{"error": err.Error()}))
	o.metrics.CycleFinished(kind, "aborted")
	return err
}

func wantsText(at shared.ActionType) bool {
	return at == shared.ActionComment || at == shared.ActionDirect
}
