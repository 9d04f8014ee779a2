//go:build api

package testserver

import (
	"context"
	"strings"
	"sync"

	"coursehub/internal/mailer"
	"coursehub/internal/payment"
)

// MailSpy records delivered mail instead of sending it.
type MailSpy struct {
	mu       sync.Mutex
	messages []mailer.Message
}

// NewMailSpy creates an empty spy.
func NewMailSpy() *MailSpy {
	return &MailSpy{}
}

// Send records msg.
func (m *MailSpy) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

// Find returns the first message to recipient whose subject contains subject.
func (m *MailSpy) Find(to, subject string) (mailer.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if msg.To == to && strings.Contains(msg.Subject, subject) {
			return msg, true
		}
	}
	return mailer.Message{}, false
}

// Reset forgets every recorded message.
func (m *MailSpy) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
}

// FakeGateway opens checkout sessions without calling a payment provider.
type FakeGateway struct {
	mu        sync.Mutex
	checkouts []payment.Checkout
}

// CreateCheckout records checkout and returns a session derived from its order id.
func (g *FakeGateway) CreateCheckout(_ context.Context, checkout payment.Checkout) (*payment.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checkouts = append(g.checkouts, checkout)
	return &payment.Session{
		Token:       "snap-" + checkout.OrderID,
		RedirectURL: "https://pay.example.com/" + checkout.OrderID,
	}, nil
}

// Checkouts returns the recorded checkouts.
func (g *FakeGateway) Checkouts() []payment.Checkout {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]payment.Checkout(nil), g.checkouts...)
}

// Reset forgets every recorded checkout.
func (g *FakeGateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checkouts = nil
}
