package service

import (
	"context"

	"tandoor-ordering/mailer-svc/internal/domain"
)

// Sender hands a rendered message to a mail server.
type Sender interface {
	Send(ctx context.Context, msg domain.Message) error
}

type MailerInterface interface {
	SendInquiry(ctx context.Context, inquiry domain.Inquiry) error
}

var (
	_ Sender          = (*SMTPSender)(nil)
	_ MailerInterface = (*Mailer)(nil)
)
