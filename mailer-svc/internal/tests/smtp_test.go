package tests

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"mime"
	"mime/quotedprintable"
	"net"
	netmail "net/mail"
	"net/textproto"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tandoor-ordering/mailer-svc/internal/domain"
	"tandoor-ordering/mailer-svc/internal/service"
)

type receivedMail struct {
	from string
	to   string
	data string
}

// startSMTPServer accepts one session of a minimal SMTP dialogue and reports
// what the client sent.
func startSMTPServer(t *testing.T) (string, <-chan receivedMail) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	received := make(chan receivedMail, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		tp := textproto.NewConn(conn)

		var mail receivedMail
		tp.PrintfLine("220 localhost ESMTP")
		for {
			line, err := tp.ReadLine()
			if err != nil {
				return
			}
			cmd := strings.ToUpper(line)
			switch {
			case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
				tp.PrintfLine("250 localhost")
			case strings.HasPrefix(cmd, "MAIL FROM:"):
				mail.from = line[len("MAIL FROM:"):]
				tp.PrintfLine("250 OK")
			case strings.HasPrefix(cmd, "RCPT TO:"):
				mail.to = line[len("RCPT TO:"):]
				tp.PrintfLine("250 OK")
			case cmd == "DATA":
				tp.PrintfLine("354 go ahead")
				lines, err := tp.ReadDotLines()
				if err != nil {
					return
				}
				mail.data = strings.Join(lines, "\n")
				tp.PrintfLine("250 queued")
			case cmd == "NOOP", cmd == "RSET":
				tp.PrintfLine("250 OK")
			case cmd == "QUIT":
				tp.PrintfLine("221 bye")
				received <- mail
				return
			default:
				tp.PrintfLine("502 not implemented")
			}
		}
	}()
	return ln.Addr().String(), received
}

func parseMessage(t *testing.T, raw string) (textproto.MIMEHeader, string) {
	t.Helper()
	reader := bufio.NewReader(strings.NewReader(raw))
	header, err := textproto.NewReader(reader).ReadMIMEHeader()
	require.NoError(t, err)
	body, err := io.ReadAll(quotedprintable.NewReader(reader))
	require.NoError(t, err)
	return header, string(body)
}

func smtpAddress(t *testing.T, addr string) (string, int) {
	t.Helper()
	host, portText, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portText)
	require.NoError(t, err)
	return host, port
}

func TestSMTPSender_Send(t *testing.T) {
	addr, received := startSMTPServer(t)
	host, port := smtpAddress(t, addr)

	sender := &service.SMTPSender{Host: host, Port: port, Timeout: 5 * time.Second}
	err := sender.Send(context.Background(), domain.Message{
		From:    testFrom,
		To:      testTo,
		ReplyTo: "asha@example.com",
		Subject: "New Website Inquiry: Hours",
		HTML:    "<p>Hello</p>",
	})
	require.NoError(t, err)

	select {
	case mail := <-received:
		assert.Equal(t, "<web@tandoorhayward.com>", strings.Fields(mail.from)[0])
		assert.Equal(t, "<management@tandoorhayward.com>", strings.Fields(mail.to)[0])

		header, body := parseMessage(t, mail.data+"\n")
		replyTo, err := netmail.ParseAddress(header.Get("Reply-To"))
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", replyTo.Address)
		subject, err := new(mime.WordDecoder).DecodeHeader(header.Get("Subject"))
		require.NoError(t, err)
		assert.Equal(t, "New Website Inquiry: Hours", subject)
		assert.Contains(t, body, "<p>Hello</p>")
	case <-time.After(5 * time.Second):
		t.Fatal("smtp server received nothing")
	}
}

func TestSMTPSender_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	host, port := smtpAddress(t, addr)
	sender := &service.SMTPSender{Host: host, Port: port, Timeout: time.Second}

	err = sender.Send(context.Background(), domain.Message{From: testFrom, To: testTo, HTML: "<p>x</p>"})
	assert.Error(t, err)
}

func renderMessage(t *testing.T, msg domain.Message, date time.Time) string {
	t.Helper()
	m, err := service.BuildMessage(msg, date)
	require.NoError(t, err)
	var raw bytes.Buffer
	_, err = m.WriteTo(&raw)
	require.NoError(t, err)
	return raw.String()
}

func TestBuildMessage(t *testing.T) {
	date := time.Date(2026, time.October, 19, 14, 3, 0, 0, time.UTC)
	raw := renderMessage(t, domain.Message{
		From:    testFrom,
		To:      testTo,
		ReplyTo: "asha@example.com",
		Subject: "New Catering Inquiry: Asha\r\nBcc: victim@example.com",
		HTML:    "<p>one</p>\n<p>two</p>",
	}, date)

	header, body := parseMessage(t, raw)

	assert.Empty(t, header.Get("Bcc"))
	subject, err := new(mime.WordDecoder).DecodeHeader(header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, "New Catering Inquiry: Asha Bcc: victim@example.com", subject)

	mediaType, params, err := mime.ParseMediaType(header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "text/html", mediaType)
	assert.True(t, strings.EqualFold(params["charset"], "utf-8"))
	assert.Equal(t, "quoted-printable", header.Get("Content-Transfer-Encoding"))

	sent, err := netmail.ParseDate(header.Get("Date"))
	require.NoError(t, err)
	assert.True(t, date.Equal(sent))
	assert.Contains(t, header.Get("Message-Id"), "@tandoorhayward.com")
	assert.Contains(t, body, "<p>one</p>")
	assert.Contains(t, body, "<p>two</p>")
}

func TestBuildMessage_FoldsLongParagraphs(t *testing.T) {
	paragraph := "<p>" + strings.Repeat("We would like biryani for the whole office. ", 60) + "</p>"
	require.Greater(t, len(paragraph), 998)

	raw := renderMessage(t, domain.Message{From: testFrom, To: testTo, Subject: "Long", HTML: paragraph}, time.Now())

	for _, line := range strings.Split(raw, "\r\n") {
		assert.LessOrEqual(t, len(line), 998)
	}
	_, body := parseMessage(t, raw)
	assert.Contains(t, body, paragraph)
}

func TestBuildMessage_RejectsBadAddresses(t *testing.T) {
	tests := []struct {
		name string
		msg  domain.Message
	}{
		{name: "reply_to_injection", msg: domain.Message{From: testFrom, To: testTo, ReplyTo: "asha@example.com\r\nBcc: victim@example.com"}},
		{name: "reply_to_garbage", msg: domain.Message{From: testFrom, To: testTo, ReplyTo: "not an address"}},
		{name: "missing_recipient", msg: domain.Message{From: testFrom}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := service.BuildMessage(testCase.msg, time.Now())
			assert.Error(t, err)
		})
	}
}
