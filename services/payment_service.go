package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rakeebhasan09/ZapShift-server/models"
	"github.com/rakeebhasan09/ZapShift-server/providers"
	"github.com/rakeebhasan09/ZapShift-server/repository"
	"github.com/stripe/stripe-go/v80"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// PaymentService defines the payment business logic interface.
type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, req *models.CreateCheckoutRequest) (string, *ServiceError)
	ConfirmPayment(ctx context.Context, sessionID string) (*models.ConfirmPaymentResponse, *ServiceError)
	GetPaymentHistory(ctx context.Context, authEmail, filterEmail string) ([]models.Payment, *ServiceError)
}

type paymentServiceImpl struct {
	parcelRepo  repository.ParcelRepository
	paymentRepo repository.PaymentRepository
	provider    providers.CheckoutProvider
	logger      *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	parcelRepo repository.ParcelRepository,
	paymentRepo repository.PaymentRepository,
	provider providers.CheckoutProvider,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		parcelRepo:  parcelRepo,
		paymentRepo: paymentRepo,
		provider:    provider,
		logger:      logger,
	}
}

// CreateCheckoutSession opens a hosted checkout for a parcel and returns the
// redirect URL.
func (s *paymentServiceImpl) CreateCheckoutSession(ctx context.Context, req *models.CreateCheckoutRequest) (string, *ServiceError) {
	sess, err := s.provider.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.logger.Error("Failed to create checkout session",
			zap.String("parcel_id", req.ParcelID),
			zap.Error(err),
		)
		return "", &ServiceError{StatusCode: 502, Message: "Failed to create checkout session"}
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", sess.ID),
		zap.String("parcel_id", req.ParcelID),
	)
	return sess.URL, nil
}

// ConfirmPayment reconciles a completed checkout session with internal
// records exactly once. Repeated calls for the same transaction return the
// original tracking ID without further writes.
func (s *paymentServiceImpl) ConfirmPayment(ctx context.Context, sessionID string) (*models.ConfirmPaymentResponse, *ServiceError) {
	sess, err := s.provider.RetrieveSession(ctx, sessionID)
	if err != nil {
		s.logger.Warn("Checkout session retrieval failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 404, Message: "Checkout session not found"}
	}

	transactionID := ""
	if sess.PaymentIntent != nil {
		transactionID = sess.PaymentIntent.ID
	}

	// Idempotency check: the ledger is the source of truth.
	if transactionID != "" {
		existing, err := s.paymentRepo.FindByTransactionID(ctx, transactionID)
		if err == nil {
			s.logger.Info("Payment already processed",
				zap.String("transaction_id", transactionID),
				zap.String("tracking_id", existing.TrackingID),
			)
			return &models.ConfirmPaymentResponse{
				Success:       true,
				TrackingID:    existing.TrackingID,
				TransactionID: transactionID,
			}, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Error("Ledger lookup failed", zap.String("transaction_id", transactionID), zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Failed to check payment records"}
		}
	}

	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		s.logger.Info("Checkout session not paid",
			zap.String("session_id", sessionID),
			zap.String("payment_status", string(sess.PaymentStatus)),
		)
		return &models.ConfirmPaymentResponse{Success: false}, nil
	}

	// A paid session without a transaction identifier cannot be recorded:
	// the ledger is keyed by it, and an empty key would alias unrelated
	// sessions under the unique index.
	if transactionID == "" {
		s.logger.Error("Paid session carries no transaction identifier", zap.String("session_id", sessionID))
		return nil, &ServiceError{StatusCode: 500, Message: "Checkout session carries no transaction identifier"}
	}

	trackingID, err := GenerateTrackingID()
	if err != nil {
		s.logger.Error("Failed to generate tracking ID", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to generate tracking ID"}
	}

	parcelID := sess.Metadata["parcelId"]
	if svcErr := s.markParcelPaid(ctx, parcelID, trackingID, transactionID); svcErr != nil {
		// No ledger record exists yet, so retrying confirmation re-runs the
		// parcel update.
		return nil, svcErr
	}

	payment := &models.Payment{
		ID:            uuid.NewString(),
		Amount:        float64(sess.AmountTotal) / 100,
		Currency:      string(sess.Currency),
		CustomerEmail: customerEmail(sess),
		ParcelID:      parcelID,
		ParcelName:    sess.Metadata["parcelName"],
		TransactionID: transactionID,
		Status:        string(sess.PaymentStatus),
		TrackingID:    trackingID,
		PaidAt:        time.Now().UTC(),
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the insert race to a concurrent confirmation; the record
			// that won carries the canonical tracking ID.
			existing, ferr := s.paymentRepo.FindByTransactionID(ctx, transactionID)
			if ferr != nil {
				s.logger.Error("Duplicate payment insert but re-fetch failed",
					zap.String("transaction_id", transactionID),
					zap.Error(ferr),
				)
				return nil, &ServiceError{StatusCode: 500, Message: "Failed to load payment record"}
			}
			return &models.ConfirmPaymentResponse{
				Success:       true,
				TrackingID:    existing.TrackingID,
				TransactionID: transactionID,
			}, nil
		}

		// The parcel is already marked paid but the ledger insert failed.
		// Retrying confirmation converges: the parcel update is idempotent
		// and the insert is keyed by transaction id.
		s.logger.Error("Ledger insert failed after parcel update; retriable inconsistency",
			zap.String("parcel_id", parcelID),
			zap.String("transaction_id", transactionID),
			zap.String("tracking_id", trackingID),
			zap.Error(err),
		)
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to record payment; retry confirmation"}
	}

	s.logger.Info("Payment confirmed",
		zap.String("transaction_id", transactionID),
		zap.String("parcel_id", parcelID),
		zap.String("tracking_id", trackingID),
	)

	return &models.ConfirmPaymentResponse{
		Success:       true,
		TrackingID:    trackingID,
		TransactionID: transactionID,
	}, nil
}

// markParcelPaid updates the parcel referenced by session metadata. A
// zero-effect update means metadata and store diverged; that is logged and
// the workflow continues so the payment itself is never lost. A storage
// error is fatal: it must abort the workflow before the ledger insert, or a
// later retry would hit the idempotent path and never reattempt the update.
func (s *paymentServiceImpl) markParcelPaid(ctx context.Context, parcelID, trackingID, transactionID string) *ServiceError {
	oid, err := primitive.ObjectIDFromHex(parcelID)
	if err != nil {
		s.logger.Warn("Session metadata carries an invalid parcel id",
			zap.String("parcel_id", parcelID),
			zap.String("transaction_id", transactionID),
		)
		return nil
	}

	matched, err := s.parcelRepo.MarkPaid(ctx, oid, trackingID)
	if err != nil {
		s.logger.Error("Failed to update parcel",
			zap.String("parcel_id", parcelID),
			zap.String("transaction_id", transactionID),
			zap.Error(err),
		)
		return &ServiceError{StatusCode: 500, Message: "Failed to update parcel; retry confirmation"}
	}
	if matched == 0 {
		s.logger.Warn("Parcel update matched no documents",
			zap.String("parcel_id", parcelID),
			zap.String("transaction_id", transactionID),
		)
	}
	return nil
}

// GetPaymentHistory returns the ledger entries for the authenticated
// customer. A filter email that does not match the verified email is
// rejected before any query runs.
func (s *paymentServiceImpl) GetPaymentHistory(ctx context.Context, authEmail, filterEmail string) ([]models.Payment, *ServiceError) {
	if filterEmail != "" && filterEmail != authEmail {
		return nil, &ServiceError{StatusCode: 403, Message: "Forbidden: email does not match authenticated user"}
	}

	payments, err := s.paymentRepo.FindByCustomerEmail(ctx, authEmail)
	if err != nil {
		s.logger.Error("Failed to query payment history", zap.String("email", authEmail), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to load payment history"}
	}
	return payments, nil
}

func customerEmail(sess *stripe.CheckoutSession) string {
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		return sess.CustomerDetails.Email
	}
	return sess.CustomerEmail
}
