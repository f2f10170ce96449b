package logic

import (
	"context"
	"social_pilot/dal"
	"social_pilot/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_executor.go -package mocks social_pilot/logic IActionExecutor

// IActionExecutor performs one external action against the platform. The
// production implementation simulates the network call with a bounded delay;
// tests inject a zero-delay scripted double.
type IActionExecutor interface {
	Perform(ctx context.Context, action *dal.Action) error
}

type delayExecutor struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewActionExecutor(cfg *shared.Config, logger shared.ILogger) IActionExecutor {
	return &delayExecutor{
		cfg:    cfg,
		logger: logger,
	}
}

func (ex *delayExecutor) Perform(ctx context.Context, action *dal.Action) error {

	delayMsec := ex.cfg.ActionDelayMsec
	ex.logger.Debugf("Performing %s on @%s (%s)", action.ActionType, action.TargetHandle, action.Platform)

	select {
	case <-time.After(time.Duration(delayMsec) * time.Millisecond):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
