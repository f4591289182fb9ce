package providers

import (
	"context"
	"net/http"

	"github.com/rakeebhasan09/ZapShift-server/models"
	"github.com/stripe/stripe-go/v80"
)

// CheckoutProvider defines the interface to the hosted payment provider.
// The confirmation workflow only ever sees retrieved sessions, so tests can
// substitute a fake returning stripe.CheckoutSession values directly.
type CheckoutProvider interface {
	// CreateCheckoutSession opens a hosted checkout for a parcel and returns
	// the session with its redirect URL. Parcel id and name are attached as
	// session metadata for later reconciliation.
	CreateCheckoutSession(ctx context.Context, req *models.CreateCheckoutRequest) (*stripe.CheckoutSession, error)

	// RetrieveSession fetches the current state of a checkout session by its
	// opaque reference.
	RetrieveSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)

	// ParseWebhookEvent verifies and decodes a provider webhook request.
	ParseWebhookEvent(r *http.Request) (stripe.Event, error)
}
