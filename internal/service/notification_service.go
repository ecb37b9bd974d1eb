package service

import (
	"context"

	"consigna/internal/mail"
)

type NotificationService interface {
	Send(ctx context.Context, msg mail.Message) (mail.SendInfo, error)
}

type notificationService struct {
	mailer mail.Mailer
}

func NewNotificationService(mailer mail.Mailer) NotificationService {
	return &notificationService{mailer: mailer}
}

// Send delivers one email synchronously. There is no queue and no retry;
// the transport's verdict is the caller's verdict.
func (s *notificationService) Send(ctx context.Context, msg mail.Message) (mail.SendInfo, error) {
	if msg.To == "" || msg.Subject == "" || (msg.Text == "" && msg.HTML == "") {
		return mail.SendInfo{}, ErrInvalid
	}
	info, err := s.mailer.Send(ctx, msg)
	if err != nil {
		return mail.SendInfo{}, upstream("send", err)
	}
	return info, nil
}
