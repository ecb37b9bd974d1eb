package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	gomail "github.com/wneessen/go-mail"
)

// Message is one outbound email. At least one of Text and HTML is set.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// SendInfo is what the transport reports back for a delivered message.
type SendInfo struct {
	MessageID string   `json:"messageId"`
	Accepted  []string `json:"accepted"`
}

// Mailer sends email synchronously. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) (SendInfo, error)
}

// SMTPOptions configures the SMTP mailer.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer builds a Mailer over a single SMTP account.
func NewSMTPMailer(opts SMTPOptions) (Mailer, error) {
	client, err := gomail.NewClient(opts.Host,
		gomail.WithPort(opts.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(opts.Username),
		gomail.WithPassword(opts.Password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &smtpMailer{client: client, from: opts.From}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) (SendInfo, error) {
	email := gomail.NewMsg()
	if err := email.From(m.from); err != nil {
		return SendInfo{}, fmt.Errorf("from address: %w", err)
	}
	if err := email.To(msg.To); err != nil {
		return SendInfo{}, fmt.Errorf("to address: %w", err)
	}
	email.Subject(msg.Subject)

	// Plain text is the primary body; HTML rides along as the alternative
	// part when both are present.
	switch {
	case msg.Text != "" && msg.HTML != "":
		email.SetBodyString(gomail.TypeTextPlain, msg.Text)
		email.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		email.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		email.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}

	id := newMessageID(m.from)
	email.SetMessageIDWithValue(id)

	if err := m.client.DialAndSendWithContext(ctx, email); err != nil {
		return SendInfo{}, err
	}
	return SendInfo{MessageID: id, Accepted: []string{msg.To}}, nil
}

func newMessageID(from string) string {
	domain := "localhost"
	if at := strings.LastIndexByte(from, '@'); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return uuid.NewString() + "@" + domain
}
