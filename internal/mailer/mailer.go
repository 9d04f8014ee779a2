// Package mailer sends transactional email over SMTP.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strconv"
	"strings"
)

//go:generate mockgen -destination=mocks/mock_sender.go -package=mocks coursehub/internal/mailer Sender

// Message is a single outgoing email with an HTML body.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var (
	_ Sender = (*SMTPSender)(nil)
	_ Sender = LogSender{}
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender delivers mail through an SMTP relay with PLAIN auth.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	send     sendFunc
}

// NewSMTPSender creates a sender for host:port.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		send:     smtp.SendMail,
	}
}

// Send writes the message headers and hands it to the relay. ctx is checked
// before dialing; net/smtp itself is not cancellable.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := s.host + ":" + strconv.Itoa(s.port)
	if err := s.send(addr, auth, s.from, []string{msg.To}, s.compose(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

func (s *SMTPSender) compose(msg Message) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)
	b.WriteString("\r\n")
	return b.Bytes()
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

// LogSender only logs messages. It is used when no SMTP host is configured.
type LogSender struct{}

// Send logs the recipient and subject.
func (LogSender) Send(_ context.Context, msg Message) error {
	log.Printf("Mail (not sent, SMTP disabled) to=%s subject=%q", msg.To, msg.Subject)
	return nil
}
