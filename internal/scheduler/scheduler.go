package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"StockPulse/internal/analysis"
	"StockPulse/internal/intent"
	"StockPulse/internal/logger"
	"StockPulse/internal/model"
	"StockPulse/internal/notifier"
)

// Sender delivers formatted messages.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs the watchlist digest on a cron schedule and answers chat commands.
type Scheduler struct {
	Cron      *cron.Cron
	Engine    analysis.Engine
	Router    *intent.Router
	Notifier  Sender
	Watchlist []string
	Ctx       context.Context
	now       func() time.Time
}

// NewScheduler creates a new Scheduler. Cron specs carry a seconds field.
func NewScheduler(ctx context.Context, engine analysis.Engine, sender Sender, watchlist []string) *Scheduler {
	s := &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Engine:    engine,
		Notifier:  sender,
		Watchlist: watchlist,
		Ctx:       ctx,
		now:       time.Now,
	}
	s.Router = intent.NewRouter(engine, s.Digest)
	return s
}

// RegisterAll registers the digest task.
func (s *Scheduler) RegisterAll(digestCron string) error {
	if _, err := s.Cron.AddFunc(digestCron, s.digestTask); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.Infof("scheduler started, watchlist %v", s.Watchlist)
}

// Stop stops the cron scheduler and waits for a running digest to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	logger.Infof("scheduler stopped")
}

// RunDigestNow executes the digest immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunDigestNow() {
	s.digestTask()
}

func (s *Scheduler) digestTask() {
	logger.Infof("running watchlist digest for %d tickers", len(s.Watchlist))
	s.trySend(s.Digest(s.Ctx))
}

// Digest scores every watchlist ticker and renders one summary message.
// A failing ticker is listed as unavailable; it does not abort the digest.
func (s *Scheduler) Digest(ctx context.Context) string {
	var reports []*model.MomentumReport
	failures := make(map[string]string)
	for _, ticker := range s.Watchlist {
		if ctx.Err() != nil {
			failures[ticker] = ctx.Err().Error()
			continue
		}
		r, err := s.Engine.Momentum(ctx, ticker, "")
		if err != nil {
			logger.Warnf("digest %s: %v", ticker, err)
			failures[ticker] = err.Error()
			continue
		}
		reports = append(reports, r)
	}
	return notifier.FormatDigest(s.now().Format("2006-01-02"), reports, failures)
}

// HandleCommand processes a user message and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, text string) string {
	return s.Router.Handle(ctx, text)
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		logger.Errorf("send notification: %v", err)
	}
}
