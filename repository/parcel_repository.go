package repository

import (
	"context"
	"time"

	"github.com/rakeebhasan09/ZapShift-server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ParcelRepository interface {
	Create(ctx context.Context, parcel *models.Parcel) (primitive.ObjectID, error)
	Find(ctx context.Context, senderEmail string) ([]models.Parcel, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error)
	MarkPaid(ctx context.Context, id primitive.ObjectID, trackingID string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type mongoParcelRepo struct {
	collection *mongo.Collection
}

func NewMongoParcelRepo(db *mongo.Database) ParcelRepository {
	return &mongoParcelRepo{collection: db.Collection("parcels")}
}

func (r *mongoParcelRepo) Create(ctx context.Context, parcel *models.Parcel) (primitive.ObjectID, error) {
	res, err := r.collection.InsertOne(ctx, parcel)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// Find returns parcels newest first, optionally filtered by sender email.
func (r *mongoParcelRepo) Find(ctx context.Context, senderEmail string) ([]models.Parcel, error) {
	filter := bson.M{}
	if senderEmail != "" {
		filter["sender_email"] = senderEmail
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	parcels := []models.Parcel{}
	if err = cursor.All(ctx, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

func (r *mongoParcelRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Parcel, error) {
	var parcel models.Parcel
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&parcel)
	if err != nil {
		return nil, err
	}
	return &parcel, nil
}

// MarkPaid sets payment_status and tracking_id together in a single update.
// Returns the matched count; zero means the parcel id did not match any
// document and the caller decides how to treat the divergence.
func (r *mongoParcelRepo) MarkPaid(ctx context.Context, id primitive.ObjectID, trackingID string) (int64, error) {
	update := bson.M{"$set": bson.M{
		"payment_status": models.PaymentStatusPaid,
		"tracking_id":    trackingID,
		"updated_at":     time.Now().UTC(),
	}}
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *mongoParcelRepo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
