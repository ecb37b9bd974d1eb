package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"consigna/internal/directory"
	"consigna/internal/logger"
	"consigna/internal/mail"
	"consigna/internal/model"
	"consigna/internal/repository"
)

// Concurrent reminder sends per scan.
const sendParallelism = 4

// ReminderService scans the external event collection and emails a reminder
// for every event starting inside the lookahead window. No record is kept
// of what was already sent: an event sitting inside the window on two
// consecutive scans is reminded twice.
type ReminderService interface {
	Run(ctx context.Context) error
}

type reminderService struct {
	events    repository.EventRepository
	mailer    mail.Mailer
	directory directory.Resolver
	window    time.Duration
	now       func() time.Time
}

func NewReminderService(events repository.EventRepository, mailer mail.Mailer, resolver directory.Resolver, window time.Duration) ReminderService {
	return &reminderService{
		events:    events,
		mailer:    mailer,
		directory: resolver,
		window:    window,
		now:       time.Now,
	}
}

// NewReminderServiceForTest is NewReminderService with a fixed clock.
func NewReminderServiceForTest(events repository.EventRepository, mailer mail.Mailer, resolver directory.Resolver, window time.Duration, now func() time.Time) ReminderService {
	s := NewReminderService(events, mailer, resolver, window).(*reminderService)
	s.now = now
	return s
}

func (s *reminderService) Run(ctx context.Context) error {
	now := s.now()
	events, err := s.events.ListStartingBetween(ctx, now, now.Add(s.window))
	if err != nil {
		return fmt.Errorf("scan events: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(sendParallelism)
	for _, event := range events {
		group.Go(func() error {
			if err := s.remind(ctx, event); err != nil {
				// A failed reminder never blocks the rest of the scan.
				logger.Error("reminder failed",
					"module", "reminder",
					"action", "send",
					"resource", "event",
					"result", "failed",
					"event_id", event.ID,
					"error", err,
				)
			}
			return nil
		})
	}
	return group.Wait()
}

func (s *reminderService) remind(ctx context.Context, event model.Event) error {
	to := event.Email
	if to == "" {
		if event.UserID == "" {
			return fmt.Errorf("event %d has no recipient", event.ID)
		}
		if s.directory == nil {
			return fmt.Errorf("event %d needs a directory lookup but none is configured", event.ID)
		}
		email, err := s.directory.UserEmail(ctx, event.UserID)
		if err != nil {
			return fmt.Errorf("resolve user %q: %w", event.UserID, err)
		}
		to = email
	}

	_, err := s.mailer.Send(ctx, mail.Message{
		To:      to,
		Subject: fmt.Sprintf("Reminder: %s", event.Title),
		Text:    fmt.Sprintf("%s starts at %s.", event.Title, event.StartAt.Format("2006-01-02 15:04 MST")),
	})
	if err != nil {
		return err
	}

	logger.Info("reminder sent",
		"module", "reminder",
		"action", "send",
		"resource", "event",
		"result", "ok",
		"event_id", event.ID,
	)
	return nil
}
