package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Parcel is a shipment record. TrackingID is empty until the payment
// confirmation workflow marks the parcel paid; the two fields are always
// set together.
type Parcel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name          string             `bson:"name" json:"name"`
	SenderEmail   string             `bson:"sender_email" json:"senderEmail"`
	Cost          float64            `bson:"cost" json:"cost"`
	PaymentStatus string             `bson:"payment_status" json:"paymentStatus"`
	TrackingID    string             `bson:"tracking_id,omitempty" json:"trackingId,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

type CreateParcelRequest struct {
	Name        string  `json:"name" binding:"required"`
	SenderEmail string  `json:"senderEmail" binding:"required,email"`
	Cost        float64 `json:"cost" binding:"required,gt=0"`
}
