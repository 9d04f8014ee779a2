package mailer

import (
	"context"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPSender_Send(t *testing.T) {
	t.Run("composes headers and body", func(t *testing.T) {
		s := NewSMTPSender("smtp.example.com", 587, "user", "secret", "noreply@example.com")

		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		var gotAuth smtp.Auth
		s.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg
			return nil
		}

		err := s.Send(context.Background(), Message{To: "a@example.com", Subject: "Hello\r\nBcc: x", Body: "<p>hi</p>"})

		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.NotNil(t, gotAuth)
		assert.Equal(t, "noreply@example.com", gotFrom)
		assert.Equal(t, []string{"a@example.com"}, gotTo)

		msg := string(gotMsg)
		assert.Contains(t, msg, "To: a@example.com\r\n")
		assert.Contains(t, msg, "Subject: Hello  Bcc: x\r\n")
		assert.Contains(t, msg, "Content-Type: text/html")
		assert.True(t, strings.HasSuffix(msg, "\r\n\r\n<p>hi</p>\r\n"))
	})

	t.Run("no auth without username", func(t *testing.T) {
		s := NewSMTPSender("localhost", 1025, "", "", "noreply@example.com")
		s.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			assert.Nil(t, a)
			return nil
		}

		assert.NoError(t, s.Send(context.Background(), Message{To: "a@example.com"}))
	})

	t.Run("wraps relay errors", func(t *testing.T) {
		s := NewSMTPSender("localhost", 1025, "", "", "noreply@example.com")
		s.send = func(string, smtp.Auth, string, []string, []byte) error { return assert.AnError }

		err := s.Send(context.Background(), Message{To: "a@example.com"})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "a@example.com")
	})

	t.Run("cancelled context is not sent", func(t *testing.T) {
		s := NewSMTPSender("localhost", 1025, "", "", "noreply@example.com")
		s.send = func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("must not dial")
			return nil
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, s.Send(ctx, Message{To: "a@example.com"}), context.Canceled)
	})
}

func TestTemplates(t *testing.T) {
	reset := PasswordReset("a@example.com", "Ada", "http://localhost:3000/update-password/tok", 15*time.Minute)
	assert.Equal(t, "a@example.com", reset.To)
	assert.Contains(t, reset.Body, "http://localhost:3000/update-password/tok")
	assert.Contains(t, reset.Body, "15m0s")

	enrolled := EnrollmentConfirmed("a@example.com", "Ada", "Go <Basics>")
	assert.Equal(t, "Enrolled in Go <Basics>", enrolled.Subject)
	assert.Contains(t, enrolled.Body, "Go &lt;Basics&gt;")

	paid := PaymentReceived("a@example.com", "Ada", "order-1", 1000)
	assert.Contains(t, paid.Body, "1000.00")

	assert.Contains(t, PasswordChanged("a@example.com", "Ada").Body, "Ada")
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, LogSender{}.Send(context.Background(), Message{To: "a@example.com", Subject: "x"}))
}
