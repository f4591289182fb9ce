package providers

import (
	"bytes"
	"context"
	"io"
	"math"
	"net/http"

	"github.com/rakeebhasan09/ZapShift-server/models"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// StripeProvider implements CheckoutProvider using Stripe Checkout.
type StripeProvider struct {
	SecretKey   string
	WebhookKey  string
	FrontendURL string
}

func NewStripeProvider(secretKey, webhookKey, frontendURL string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{SecretKey: secretKey, WebhookKey: webhookKey, FrontendURL: frontendURL}
}

// amountToCents converts a major-unit cost to Stripe's minor units.
// Truncation would turn 19.99 into 1998 cents.
func amountToCents(cost float64) int64 {
	return int64(math.Round(cost * 100))
}

func (s *StripeProvider) CreateCheckoutSession(ctx context.Context, req *models.CreateCheckoutRequest) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.SenderEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(amountToCents(req.Cost)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ParcelName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.FrontendURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.FrontendURL + "/payment-cancelled"),
	}
	params.Context = ctx
	params.AddMetadata("parcelId", req.ParcelID)
	params.AddMetadata("parcelName", req.ParcelName)

	return session.New(params)
}

func (s *StripeProvider) RetrieveSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	return session.Get(sessionID, params)
}

func (s *StripeProvider) ParseWebhookEvent(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))
	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEvent(payload, sigHeader, s.WebhookKey)
}
