package services

import (
	"context"
	"errors"
	"time"

	"github.com/rakeebhasan09/ZapShift-server/models"
	"github.com/rakeebhasan09/ZapShift-server/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ParcelService defines the parcel business logic interface.
type ParcelService interface {
	CreateParcel(ctx context.Context, req *models.CreateParcelRequest) (string, *ServiceError)
	ListParcels(ctx context.Context, senderEmail string) ([]models.Parcel, *ServiceError)
	GetParcel(ctx context.Context, id string) (*models.Parcel, *ServiceError)
	DeleteParcel(ctx context.Context, id string) *ServiceError
}

type parcelServiceImpl struct {
	repo   repository.ParcelRepository
	logger *zap.Logger
}

// NewParcelService creates a new ParcelService.
func NewParcelService(repo repository.ParcelRepository, logger *zap.Logger) ParcelService {
	return &parcelServiceImpl{repo: repo, logger: logger}
}

// CreateParcel stores a new parcel with a server-assigned creation time and
// returns the inserted id. Parcels always start unpaid.
func (s *parcelServiceImpl) CreateParcel(ctx context.Context, req *models.CreateParcelRequest) (string, *ServiceError) {
	parcel := &models.Parcel{
		Name:          req.Name,
		SenderEmail:   req.SenderEmail,
		Cost:          req.Cost,
		PaymentStatus: models.PaymentStatusUnpaid,
		CreatedAt:     time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, parcel)
	if err != nil {
		s.logger.Error("Failed to create parcel", zap.String("sender_email", req.SenderEmail), zap.Error(err))
		return "", &ServiceError{StatusCode: 500, Message: "Failed to create parcel"}
	}

	s.logger.Info("Parcel created",
		zap.String("parcel_id", id.Hex()),
		zap.String("sender_email", req.SenderEmail),
	)
	return id.Hex(), nil
}

func (s *parcelServiceImpl) ListParcels(ctx context.Context, senderEmail string) ([]models.Parcel, *ServiceError) {
	parcels, err := s.repo.Find(ctx, senderEmail)
	if err != nil {
		s.logger.Error("Failed to list parcels", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list parcels"}
	}
	return parcels, nil
}

func (s *parcelServiceImpl) GetParcel(ctx context.Context, id string) (*models.Parcel, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 400, Message: "Invalid parcel id"}
	}

	parcel, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &ServiceError{StatusCode: 404, Message: "Parcel not found"}
		}
		s.logger.Error("Failed to fetch parcel", zap.String("parcel_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to fetch parcel"}
	}
	return parcel, nil
}

func (s *parcelServiceImpl) DeleteParcel(ctx context.Context, id string) *ServiceError {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &ServiceError{StatusCode: 400, Message: "Invalid parcel id"}
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		s.logger.Error("Failed to delete parcel", zap.String("parcel_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to delete parcel"}
	}
	if deleted == 0 {
		return &ServiceError{StatusCode: 404, Message: "Parcel not found"}
	}

	s.logger.Info("Parcel deleted", zap.String("parcel_id", id))
	return nil
}
