package scheduler

import (
	"context"
	"sync"
	"time"

	"consigna/internal/logger"
	"consigna/internal/service"
)

// Scheduler drives the reminder scan on a fixed tick. Scans run one after
// another on a single goroutine, so a slow scan delays the next tick rather
// than overlapping it.
type Scheduler struct {
	reminders  service.ReminderService
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current scan
	mu         sync.Mutex         // protects cancelFunc
}

func New(reminders service.ReminderService, interval time.Duration) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "scan", "resource", "event", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "scan", "resource", "event", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.scan()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) scan() {
	// A scan gets at most one interval before it is cut off.
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if err := s.reminders.Run(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("reminder scan cancelled", "module", "scheduler", "action", "scan", "resource", "event", "result", "cancelled")
			return
		}
		logger.Error("reminder scan failed", "module", "scheduler", "action", "scan", "resource", "event", "result", "failed", "error", err)
	}
}
