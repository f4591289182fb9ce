package repository

import (
	"context"

	"github.com/rakeebhasan09/ZapShift-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	FindByCustomerEmail(ctx context.Context, email string) ([]models.Payment, error)
}

type mongoPaymentRepo struct {
	collection *mongo.Collection
}

func NewMongoPaymentRepo(db *mongo.Database) PaymentRepository {
	return &mongoPaymentRepo{collection: db.Collection("payments")}
}

func (r *mongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	_, err := r.collection.InsertOne(ctx, payment)
	return err
}

func (r *mongoPaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.collection.FindOne(ctx, bson.M{"transaction_id": transactionID}).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *mongoPaymentRepo) FindByCustomerEmail(ctx context.Context, email string) ([]models.Payment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "paid_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"customer_email": email}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
