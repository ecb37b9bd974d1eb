package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"consigna/internal/model"
	"consigna/internal/service"
)

var scanTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return scanTime }

func TestReminderService_Run_QueriesLookaheadWindow(t *testing.T) {
	events := &fakeEventRepo{}
	svc := service.NewReminderServiceForTest(events, &fakeMailer{}, &fakeResolver{}, 5*time.Minute, fixedClock)

	require.NoError(t, svc.Run(context.Background()))
	require.Equal(t, []time.Time{scanTime}, events.froms)
	require.Equal(t, []time.Time{scanTime.Add(5 * time.Minute)}, events.tos)
}

func TestReminderService_Run_SendsToStoredEmail(t *testing.T) {
	events := &fakeEventRepo{events: []model.Event{
		{ID: 1, Title: "Standup", StartAt: scanTime.Add(3 * time.Minute), Email: "team@example.com"},
	}}
	mailer := &fakeMailer{}
	resolver := &fakeResolver{}
	svc := service.NewReminderServiceForTest(events, mailer, resolver, 5*time.Minute, fixedClock)

	require.NoError(t, svc.Run(context.Background()))
	require.Len(t, mailer.sent, 1)
	require.Equal(t, "team@example.com", mailer.sent[0].To)
	require.Contains(t, mailer.sent[0].Subject, "Standup")
	require.Empty(t, resolver.lookups, "stored email needs no directory lookup")
}

func TestReminderService_Run_ResolvesRecipientThroughDirectory(t *testing.T) {
	events := &fakeEventRepo{events: []model.Event{
		{ID: 2, Title: "Review", StartAt: scanTime.Add(3 * time.Minute), UserID: "user-42"},
	}}
	mailer := &fakeMailer{}
	resolver := &fakeResolver{emails: map[string]string{"user-42": "dev@example.com"}}
	svc := service.NewReminderServiceForTest(events, mailer, resolver, 5*time.Minute, fixedClock)

	require.NoError(t, svc.Run(context.Background()))
	require.Equal(t, []string{"user-42"}, resolver.lookups)
	require.Len(t, mailer.sent, 1)
	require.Equal(t, "dev@example.com", mailer.sent[0].To)
}

func TestReminderService_Run_FailedSendDoesNotStopTheScan(t *testing.T) {
	events := &fakeEventRepo{events: []model.Event{
		{ID: 3, Title: "Orphan", StartAt: scanTime.Add(time.Minute)}, // no recipient at all
		{ID: 4, Title: "Valid", StartAt: scanTime.Add(2 * time.Minute), Email: "ok@example.com"},
	}}
	mailer := &fakeMailer{}
	svc := service.NewReminderServiceForTest(events, mailer, &fakeResolver{}, 5*time.Minute, fixedClock)

	require.NoError(t, svc.Run(context.Background()))
	require.Len(t, mailer.sent, 1)
	require.Equal(t, "ok@example.com", mailer.sent[0].To)
}

func TestReminderService_Run_ScanFailureSurfaces(t *testing.T) {
	events := &fakeEventRepo{err: errors.New("database is locked")}
	svc := service.NewReminderServiceForTest(events, &fakeMailer{}, &fakeResolver{}, 5*time.Minute, fixedClock)

	err := svc.Run(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "database is locked")
}
