// Package payment creates checkout sessions with Midtrans Snap and
// verifies its status notifications.
package payment

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math"
	"strings"

	"coursehub/internal/models"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks coursehub/internal/payment Gateway

// ErrDisabled is returned when no gateway credentials are configured.
var ErrDisabled = errors.New("payment gateway is not configured")

// Customer identifies the payer.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// Item is one purchased course.
type Item struct {
	ID    string
	Name  string
	Price float64
}

// Checkout describes an order to be paid.
type Checkout struct {
	OrderID  string
	Amount   float64
	Customer Customer
	Items    []Item
}

// Session is what the client needs to open the payment page.
type Session struct {
	Token       string
	RedirectURL string
}

// Gateway starts payments.
type Gateway interface {
	CreateCheckout(ctx context.Context, checkout Checkout) (*Session, error)
}

var (
	_ Gateway = (*MidtransGateway)(nil)
	_ Gateway = DisabledGateway{}
)

// MidtransGateway creates Snap transactions.
type MidtransGateway struct {
	client snap.Client
}

// NewMidtransGateway configures a Snap client for sandbox or production.
func NewMidtransGateway(serverKey string, production bool) *MidtransGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g := &MidtransGateway{}
	g.client.New(serverKey, env)
	return g
}

// CreateCheckout requests a Snap token. The SDK call is not cancellable, so
// ctx is only checked up front.
func (g *MidtransGateway) CreateCheckout(ctx context.Context, checkout Checkout) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]midtrans.ItemDetails, 0, len(checkout.Items))
	for _, it := range checkout.Items {
		items = append(items, midtrans.ItemDetails{
			ID:       it.ID,
			Name:     truncate(it.Name, 50),
			Price:    toMinorUnits(it.Price),
			Qty:      1,
			Category: "Course",
		})
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  checkout.OrderID,
			GrossAmt: toMinorUnits(checkout.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: checkout.Customer.FirstName,
			LName: checkout.Customer.LastName,
			Email: checkout.Customer.Email,
			Phone: checkout.Customer.Phone,
		},
		Items: &items,
	}

	resp, merr := g.client.CreateTransaction(req)
	if merr != nil {
		return nil, merr
	}
	return &Session{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

// DisabledGateway rejects every checkout with ErrDisabled.
type DisabledGateway struct{}

// CreateCheckout always fails.
func (DisabledGateway) CreateCheckout(context.Context, Checkout) (*Session, error) {
	return nil, ErrDisabled
}

// Signature computes SHA512(orderID + statusCode + grossAmount + serverKey)
// as hex, the scheme Midtrans signs notifications with.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifySignature reports whether signature matches the notification fields.
func VerifySignature(n models.PaymentNotification, serverKey string) bool {
	if n.SignatureKey == "" || serverKey == "" {
		return false
	}
	want := Signature(n.OrderID, n.StatusCode, n.GrossAmount, serverKey)
	got := strings.ToLower(n.SignatureKey)
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

// StatusFromNotification maps a Midtrans transaction status to an order
// status. Captures flagged for fraud review stay pending.
func StatusFromNotification(transactionStatus, fraudStatus string) models.PaymentStatus {
	switch transactionStatus {
	case "capture":
		switch fraudStatus {
		case "challenge":
			return models.PaymentPending
		case "deny":
			return models.PaymentFailed
		}
		return models.PaymentPaid
	case "settlement":
		return models.PaymentPaid
	case "deny", "cancel", "expire", "failure":
		return models.PaymentFailed
	default:
		return models.PaymentPending
	}
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
