package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus is the lifecycle state of an order.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// PaymentOrder is a checkout of one or more courses.
type PaymentOrder struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	OrderID     string               `json:"orderId" bson:"orderId" example:"ORDER-3f1c2a9e"`
	UserID      primitive.ObjectID   `json:"userId" bson:"userId"`
	CourseIDs   []primitive.ObjectID `json:"courseIds" bson:"courseIds"`
	Amount      float64              `json:"amount" bson:"amount" example:"1000"`
	Status      PaymentStatus        `json:"status" bson:"status" example:"pending"`
	SnapToken   string               `json:"-" bson:"snapToken,omitempty"`
	RedirectURL string               `json:"redirectUrl,omitempty" bson:"redirectUrl,omitempty"`
	CreatedAt   time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// CapturePaymentRequest starts a checkout.
type CapturePaymentRequest struct {
	CourseIDs []string `json:"courseIds" binding:"required,min=1,dive,objectid"`
}

// CapturePaymentResponse tells the client how to pay.
// Enrolled is true when nothing had to be paid and enrollment already happened.
type CapturePaymentResponse struct {
	OrderID     string  `json:"orderId" example:"ORDER-3f1c2a9e"`
	Token       string  `json:"token,omitempty"`
	RedirectURL string  `json:"redirectUrl,omitempty"`
	Amount      float64 `json:"amount" example:"1000"`
	Enrolled    bool    `json:"enrolled"`
}

// EnrollRequest enrolls the caller directly.
type EnrollRequest struct {
	CourseID string `json:"courseId" binding:"required,objectid" example:"507f1f77bcf86cd799439011"`
}

// PaymentNotification is the gateway's asynchronous status callback.
type PaymentNotification struct {
	OrderID           string `json:"order_id" binding:"required"`
	StatusCode        string `json:"status_code" binding:"required"`
	GrossAmount       string `json:"gross_amount" binding:"required"`
	SignatureKey      string `json:"signature_key" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
	FraudStatus       string `json:"fraud_status"`
}
