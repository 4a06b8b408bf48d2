package service

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/mail"
	"strings"

	"go.uber.org/zap"

	"tandoor-ordering/mailer-svc/internal/domain"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrSendFailed    = errors.New("failed to send message")
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var templates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"lines": lines,
}).ParseFS(templateFS, "templates/*.gohtml"))

type Mailer struct {
	sender Sender
	from   string
	to     string
	logger *zap.Logger
}

func NewMailer(sender Sender, from, to string, logger *zap.Logger) *Mailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mailer{sender: sender, from: from, to: to, logger: logger}
}

// SendInquiry renders the inquiry and delivers it with the submitter as reply-to.
func (m *Mailer) SendInquiry(ctx context.Context, inquiry domain.Inquiry) error {
	inquiry = inquiry.Normalize()
	if inquiry.Email == "" || inquiry.Message == "" {
		return ErrMissingFields
	}
	// The reply-to must be exactly one address.
	replyTo, err := mail.ParseAddress(string(inquiry.Email))
	if err != nil {
		return fmt.Errorf("%w: invalid email: %v", ErrMissingFields, err)
	}
	inquiry.Email = domain.Text(replyTo.Address)

	msg, err := m.Compose(inquiry)
	if err != nil {
		return err
	}

	if err := m.sender.Send(ctx, msg); err != nil {
		m.logger.Error("error sending email",
			zap.String("subject", msg.Subject), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	m.logger.Info("message sent", zap.String("subject", msg.Subject), zap.Bool("catering", inquiry.IsCatering()))
	return nil
}

// Compose builds the message for an already normalized inquiry.
func (m *Mailer) Compose(inquiry domain.Inquiry) (domain.Message, error) {
	name := "inquiry.gohtml"
	if inquiry.IsCatering() {
		name = "catering.gohtml"
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name, inquiry); err != nil {
		return domain.Message{}, fmt.Errorf("render %s: %w", name, err)
	}

	return domain.Message{
		From:    m.from,
		To:      m.to,
		ReplyTo: string(inquiry.Email),
		Subject: Subject(inquiry),
		HTML:    body.String(),
	}, nil
}

func Subject(inquiry domain.Inquiry) string {
	if inquiry.IsCatering() {
		client := string(inquiry.FirstName)
		if client == "" {
			client = "Client"
		}
		return fmt.Sprintf("New Catering Inquiry: %s - %s", client, inquiry.EventDate)
	}
	subject := string(inquiry.Subject)
	if subject == "" {
		subject = "No Subject"
	}
	return "New Website Inquiry: " + subject
}

func lines(text domain.Text) template.HTML {
	parts := strings.Split(string(text), "\n")
	for i, part := range parts {
		parts[i] = template.HTMLEscapeString(part)
	}
	return template.HTML(strings.Join(parts, "<br>"))
}
