package models

import "time"

// Payment is an append-only ledger entry for a completed checkout. There is
// at most one entry per Stripe transaction; a unique index on
// transaction_id enforces this at the storage layer.
type Payment struct {
	ID            string    `bson:"_id" json:"id"`
	Amount        float64   `bson:"amount" json:"amount"` // major units
	Currency      string    `bson:"currency" json:"currency"`
	CustomerEmail string    `bson:"customer_email" json:"customerEmail"`
	ParcelID      string    `bson:"parcel_id" json:"parcelId"`
	ParcelName    string    `bson:"parcel_name" json:"parcelName"`
	TransactionID string    `bson:"transaction_id" json:"transactionId"`
	Status        string    `bson:"status" json:"status"`
	TrackingID    string    `bson:"tracking_id" json:"trackingId"`
	PaidAt        time.Time `bson:"paid_at" json:"paid_at"`
}

type CreateCheckoutRequest struct {
	Cost        float64 `json:"cost" binding:"required,gt=0"`
	ParcelID    string  `json:"parcelId" binding:"required"`
	ParcelName  string  `json:"parcelName" binding:"required"`
	SenderEmail string  `json:"senderEmail" binding:"required,email"`
}

type ConfirmPaymentRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
}

// ConfirmPaymentResponse is the payload returned by the confirmation
// endpoint. A non-success response is a valid terminal outcome (session
// still pending or failed), not an error.
type ConfirmPaymentResponse struct {
	Success       bool   `json:"success"`
	TrackingID    string `json:"trackingId,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
}
