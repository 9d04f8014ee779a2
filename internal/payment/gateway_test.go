package payment

import (
	"context"
	"strings"
	"testing"

	"coursehub/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	sig := Signature("ORDER-1", "200", "1000.00", "server-key")

	assert.Len(t, sig, 128)
	assert.Equal(t, sig, Signature("ORDER-1", "200", "1000.00", "server-key"))
	assert.NotEqual(t, sig, Signature("ORDER-1", "200", "1000.00", "other-key"))
}

func TestVerifySignature(t *testing.T) {
	n := models.PaymentNotification{
		OrderID:     "ORDER-1",
		StatusCode:  "200",
		GrossAmount: "1000.00",
	}
	n.SignatureKey = Signature(n.OrderID, n.StatusCode, n.GrossAmount, "server-key")

	tests := []struct {
		name      string
		mutate    func(models.PaymentNotification) models.PaymentNotification
		serverKey string
		expected  bool
	}{
		{"valid", func(n models.PaymentNotification) models.PaymentNotification { return n }, "server-key", true},
		{"uppercase hex", func(n models.PaymentNotification) models.PaymentNotification {
			n.SignatureKey = strings.ToUpper(n.SignatureKey)
			return n
		}, "server-key", true},
		{"tampered amount", func(n models.PaymentNotification) models.PaymentNotification {
			n.GrossAmount = "1.00"
			return n
		}, "server-key", false},
		{"wrong key", func(n models.PaymentNotification) models.PaymentNotification { return n }, "other", false},
		{"empty signature", func(n models.PaymentNotification) models.PaymentNotification {
			n.SignatureKey = ""
			return n
		}, "server-key", false},
		{"no server key configured", func(n models.PaymentNotification) models.PaymentNotification { return n }, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VerifySignature(tt.mutate(n), tt.serverKey))
		})
	}
}

func TestStatusFromNotification(t *testing.T) {
	tests := []struct {
		status   string
		fraud    string
		expected models.PaymentStatus
	}{
		{"capture", "accept", models.PaymentPaid},
		{"capture", "", models.PaymentPaid},
		{"capture", "challenge", models.PaymentPending},
		{"capture", "deny", models.PaymentFailed},
		{"settlement", "", models.PaymentPaid},
		{"pending", "", models.PaymentPending},
		{"deny", "", models.PaymentFailed},
		{"cancel", "", models.PaymentFailed},
		{"expire", "", models.PaymentFailed},
		{"refund", "", models.PaymentPending},
	}

	for _, tt := range tests {
		t.Run(tt.status+"/"+tt.fraud, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFromNotification(tt.status, tt.fraud))
		})
	}
}

func TestDisabledGateway(t *testing.T) {
	_, err := DisabledGateway{}.CreateCheckout(context.Background(), Checkout{OrderID: "x"})

	assert.ErrorIs(t, err, ErrDisabled)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "éé", truncate("ééé", 2))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1000), toMinorUnits(999.6))
	assert.Equal(t, int64(0), toMinorUnits(0))
}
