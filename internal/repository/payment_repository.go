package repository

import (
	"context"
	"errors"
	"time"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentRepository defines the interface for payment order operations.
type PaymentRepository interface {
	Create(ctx context.Context, order *models.PaymentOrder) error
	FindByOrderID(ctx context.Context, orderID string) (*models.PaymentOrder, error)
	SetSession(ctx context.Context, orderID, token, redirectURL string) error
	TransitionStatus(ctx context.Context, orderID string, to models.PaymentStatus) (bool, error)
}

type paymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{
		collection: db.Collection(CollectionPayments),
	}
}

func (r *paymentRepository) Create(ctx context.Context, order *models.PaymentOrder) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	order.CourseIDs = emptyIDs(order.CourseIDs)
	if order.Status == "" {
		order.Status = models.PaymentPending
	}

	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return err
	}

	order.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *paymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder

	err := r.collection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, err
	}

	return &order, nil
}

func (r *paymentRepository) SetSession(ctx context.Context, orderID, token, redirectURL string) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"snapToken": token, "redirectUrl": redirectURL, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrOrderNotFound
	}
	return nil
}

// TransitionStatus moves a pending order to status to. It reports false
// when the order had already left pending, so a repeated notification is
// applied once.
func (r *paymentRepository) TransitionStatus(ctx context.Context, orderID string, to models.PaymentStatus) (bool, error) {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"orderId": orderID, "status": models.PaymentPending},
		bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	if result.MatchedCount == 1 {
		return true, nil
	}

	if _, err := r.FindByOrderID(ctx, orderID); err != nil {
		return false, err
	}
	return false, nil
}
