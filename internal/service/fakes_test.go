package service_test

import (
	"context"
	"io"
	"sync"
	"time"

	"consigna/internal/mail"
	"consigna/internal/model"
)

// fakeStore records calls and returns canned results.
type fakeStore struct {
	uploads   []string
	lists     []string
	deletes   []string
	signed    []string
	signedURL string
	err       error
	listFiles []model.StoredFile
}

func (f *fakeStore) Close() error { return nil }

func (f *fakeStore) Upload(_ context.Context, key string, r io.Reader, _ string) (model.StoredFile, error) {
	f.uploads = append(f.uploads, key)
	if f.err != nil {
		return model.StoredFile{}, f.err
	}
	data, _ := io.ReadAll(r)
	return model.StoredFile{FileID: "etag-1", FileName: key, Size: int64(len(data))}, nil
}

func (f *fakeStore) List(_ context.Context, prefix string, _ int) ([]model.StoredFile, error) {
	f.lists = append(f.lists, prefix)
	if f.err != nil {
		return nil, f.err
	}
	return f.listFiles, nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	f.deletes = append(f.deletes, key)
	return f.err
}

func (f *fakeStore) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	f.signed = append(f.signed, key)
	if f.err != nil {
		return "", f.err
	}
	return f.signedURL, nil
}

// fakeMailer records sent messages. Reminder sends fan out across
// goroutines, so access is locked.
type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) (mail.SendInfo, error) {
	if f.err != nil {
		return mail.SendInfo{}, f.err
	}
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	return mail.SendInfo{MessageID: "msg-1@test", Accepted: []string{msg.To}}, nil
}

// fakeResolver maps user ids to emails.
type fakeResolver struct {
	mu      sync.Mutex
	emails  map[string]string
	lookups []string
	err     error
}

func (f *fakeResolver) UserEmail(_ context.Context, userID string) (string, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, userID)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.emails[userID], nil
}

// fakeEventRepo captures the requested window.
type fakeEventRepo struct {
	events []model.Event
	froms  []time.Time
	tos    []time.Time
	err    error
}

func (f *fakeEventRepo) ListStartingBetween(_ context.Context, from, to time.Time) ([]model.Event, error) {
	f.froms = append(f.froms, from)
	f.tos = append(f.tos, to)
	return f.events, f.err
}
