package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"

	apperrors "coursehub/internal/errors"
	"coursehub/internal/mailer"
	"coursehub/internal/models"
	"coursehub/internal/payment"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentService runs course checkout.
type PaymentService struct {
	repos       Repositories
	gateway     payment.Gateway
	enrollments PurchaseEnroller
	notifier    MailNotifier
	serverKey   string
	newOrderID  func() string
}

// PaymentServiceConfig holds configuration for PaymentService.
type PaymentServiceConfig struct {
	Repos       Repositories
	Gateway     payment.Gateway
	Enrollments PurchaseEnroller
	Notifier    MailNotifier
	ServerKey   string
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(cfg PaymentServiceConfig) *PaymentService {
	return &PaymentService{
		repos:       cfg.Repos,
		gateway:     cfg.Gateway,
		enrollments: cfg.Enrollments,
		notifier:    cfg.Notifier,
		serverKey:   cfg.ServerKey,
		newOrderID:  func() string { return "ORDER-" + uuid.NewString() },
	}
}

// Capture creates an order for the requested courses and opens a checkout
// session. Free orders are enrolled immediately.
func (s *PaymentService) Capture(ctx context.Context, actor models.Actor, req *models.CapturePaymentRequest) (*models.CapturePaymentResponse, error) {
	ids, err := uniqueObjectIDs(req.CourseIDs)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, apperrors.ErrEmptyCart
	}

	courses, err := s.repos.Courses.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(courses) != len(ids) {
		return nil, apperrors.ErrCourseNotFound
	}

	var amount float64
	items := make([]payment.Item, 0, len(courses))
	for i := range courses {
		course := &courses[i]
		if course.Status != models.CoursePublished {
			return nil, apperrors.ErrCourseNotPurchased
		}
		if course.IsEnrolled(actor.ID) {
			return nil, apperrors.ErrAlreadyEnrolled
		}
		amount += course.Price
		items = append(items, payment.Item{ID: course.ID.Hex(), Name: course.CourseName, Price: course.Price})
	}

	user, err := s.repos.Users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	order := &models.PaymentOrder{
		OrderID:   s.newOrderID(),
		UserID:    user.ID,
		CourseIDs: ids,
		Amount:    amount,
	}
	if err := s.repos.Payments.Create(ctx, order); err != nil {
		return nil, err
	}

	if amount == 0 {
		if err := s.enrollAll(ctx, order); err != nil {
			return nil, err
		}
		if _, err := s.repos.Payments.TransitionStatus(ctx, order.OrderID, models.PaymentPaid); err != nil {
			return nil, err
		}
		return &models.CapturePaymentResponse{OrderID: order.OrderID, Enrolled: true}, nil
	}

	session, err := s.gateway.CreateCheckout(ctx, payment.Checkout{
		OrderID: order.OrderID,
		Amount:  amount,
		Customer: payment.Customer{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Phone:     user.ContactNumber,
		},
		Items: items,
	})
	if err != nil {
		if _, tErr := s.repos.Payments.TransitionStatus(ctx, order.OrderID, models.PaymentFailed); tErr != nil {
			log.Printf("Failed to mark order %s as failed: %v", order.OrderID, tErr)
		}
		return nil, apperrors.Upstream("create checkout", err)
	}

	if err := s.repos.Payments.SetSession(ctx, order.OrderID, session.Token, session.RedirectURL); err != nil {
		return nil, err
	}

	return &models.CapturePaymentResponse{
		OrderID:     order.OrderID,
		Token:       session.Token,
		RedirectURL: session.RedirectURL,
		Amount:      amount,
	}, nil
}

// HandleNotification applies a gateway status callback. Orders leave the
// pending state once; later callbacks for the same order are acknowledged
// without effect.
func (s *PaymentService) HandleNotification(ctx context.Context, n *models.PaymentNotification) error {
	if !payment.VerifySignature(*n, s.serverKey) {
		return apperrors.ErrInvalidSignature
	}

	order, err := s.repos.Payments.FindByOrderID(ctx, n.OrderID)
	if err != nil {
		return err
	}

	gross, err := strconv.ParseFloat(n.GrossAmount, 64)
	if err != nil || math.Abs(gross-order.Amount) > 0.005 {
		return apperrors.Validation("gross amount does not match the order")
	}

	if order.Status != models.PaymentPending {
		return nil
	}

	status := payment.StatusFromNotification(n.TransactionStatus, n.FraudStatus)
	if status == models.PaymentPending {
		return nil
	}

	// Enroll before leaving pending so a failed attempt is retried by the
	// gateway's next callback.
	if status == models.PaymentPaid {
		if err := s.enrollAll(ctx, order); err != nil {
			return err
		}
	}

	changed, err := s.repos.Payments.TransitionStatus(ctx, order.OrderID, status)
	if err != nil {
		return err
	}
	if changed && status == models.PaymentPaid {
		s.notifyPaid(ctx, order)
	}
	return nil
}

func (s *PaymentService) enrollAll(ctx context.Context, order *models.PaymentOrder) error {
	for _, courseID := range order.CourseIDs {
		err := s.enrollments.EnrollPurchased(ctx, order.UserID, courseID.Hex())
		if err != nil && !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
			return fmt.Errorf("order %s: enroll %s: %w", order.OrderID, courseID.Hex(), err)
		}
	}
	return nil
}

func (s *PaymentService) notifyPaid(ctx context.Context, order *models.PaymentOrder) {
	user, err := s.repos.Users.FindByID(ctx, order.UserID)
	if err != nil {
		log.Printf("Failed to load buyer of order %s: %v", order.OrderID, err)
		return
	}
	s.notifier.Notify(mailer.PaymentReceived(user.Email, user.FirstName, order.OrderID, order.Amount))
}

// uniqueObjectIDs parses hex ids, dropping duplicates while keeping order.
func uniqueObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	seen := make(map[primitive.ObjectID]struct{}, len(hexes))
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := parseObjectID(h, apperrors.ErrCourseNotFound)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
