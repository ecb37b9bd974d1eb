package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"consigna/internal/handler"
	"consigna/internal/mail"
	"consigna/internal/service"
)

type stubMailer struct {
	sent []mail.Message
	err  error
}

func (s *stubMailer) Send(_ context.Context, msg mail.Message) (mail.SendInfo, error) {
	if s.err != nil {
		return mail.SendInfo{}, s.err
	}
	s.sent = append(s.sent, msg)
	return mail.SendInfo{MessageID: "msg-1@test", Accepted: []string{msg.To}}, nil
}

func newNotificationRouter(t *testing.T, mailer mail.Mailer) *echo.Echo {
	t.Helper()

	e := echo.New()
	h := handler.NewNotificationHandler(service.NewNotificationService(mailer))
	h.RegisterRoutes(e.Group(""))
	return e
}

func TestNotificationHandler_Send(t *testing.T) {
	mailer := &stubMailer{}
	e := newNotificationRouter(t, mailer)

	rec := postJSON(e, "/send-notification", `{"to":"dest@example.com","subject":"Hi","text":"body"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"message":"notification sent"`)
	require.Contains(t, rec.Body.String(), `"messageId":"msg-1@test"`)
	require.Len(t, mailer.sent, 1)
}

func TestNotificationHandler_Send_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing to", `{"subject":"Hi","text":"body"}`},
		{"missing subject", `{"to":"dest@example.com","text":"body"}`},
		{"missing both bodies", `{"to":"dest@example.com","subject":"Hi"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &stubMailer{}
			e := newNotificationRouter(t, mailer)
			rec := postJSON(e, "/send-notification", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Empty(t, mailer.sent)
		})
	}
}

func TestNotificationHandler_Send_TransportFailure(t *testing.T) {
	e := newNotificationRouter(t, &stubMailer{err: errors.New("smtp: connection refused")})

	rec := postJSON(e, "/send-notification", `{"to":"dest@example.com","subject":"Hi","text":"body"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "smtp: connection refused")
}
