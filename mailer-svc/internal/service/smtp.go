package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	gomail "github.com/wneessen/go-mail"

	"tandoor-ordering/mailer-svc/internal/domain"
)

// SMTPSender delivers through an SMTP relay. Port 465 uses implicit TLS;
// other ports upgrade with STARTTLS when the server offers it.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

func (s *SMTPSender) Send(ctx context.Context, msg domain.Message) error {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	m, err := BuildMessage(msg, time.Now())
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.Host, s.clientOptions(timeout)...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send via %s:%d: %w", s.Host, s.Port, err)
	}
	return nil
}

func (s *SMTPSender) clientOptions(timeout time.Duration) []gomail.Option {
	port := s.Port
	if port == 0 {
		port = 587
	}
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTimeout(timeout),
	}
	if port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}
	if s.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.Username),
			gomail.WithPassword(s.Password),
		)
	}
	return opts
}

// BuildMessage renders msg as an HTML mail. The body is quoted-printable so
// long paragraphs are folded.
func BuildMessage(msg domain.Message, date time.Time) (*gomail.Msg, error) {
	m := gomail.NewMsg(gomail.WithEncoding(gomail.EncodingQP))
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("reply-to address: %w", err)
		}
	}
	m.Subject(headerSafe.Replace(msg.Subject))
	m.SetDateWithValue(date)
	m.SetMessageIDWithValue(uuid.NewString() + "@" + domainOf(msg.From))
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	return m, nil
}

var headerSafe = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func domainOf(addr string) string {
	if parsed, err := mail.ParseAddress(addr); err == nil {
		addr = parsed.Address
	}
	if at := strings.LastIndex(addr, "@"); at >= 0 {
		return addr[at+1:]
	}
	return "localhost"
}
