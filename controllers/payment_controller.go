package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakeebhasan09/ZapShift-server/middleware"
	"github.com/rakeebhasan09/ZapShift-server/models"
	"github.com/rakeebhasan09/ZapShift-server/providers"
	"github.com/rakeebhasan09/ZapShift-server/services"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

type PaymentController struct {
	Service  services.PaymentService
	Provider providers.CheckoutProvider
	Logger   *zap.Logger
}

func NewPaymentController(svc services.PaymentService, provider providers.CheckoutProvider, logger *zap.Logger) *PaymentController {
	return &PaymentController{Service: svc, Provider: provider, Logger: logger}
}

// CreateCheckoutSession opens a hosted checkout and returns the redirect URL.
func (pc *PaymentController) CreateCheckoutSession(c *gin.Context) {
	var req models.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, svcErr := pc.Service.CreateCheckoutSession(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ConfirmPayment runs the confirmation workflow for a session reference. A
// session that has not been paid yields success:false with status 200.
func (pc *PaymentController) ConfirmPayment(c *gin.Context) {
	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, svcErr := pc.Service.ConfirmPayment(c.Request.Context(), req.SessionID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"success": false, "error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, result)
}

// StripeWebhook feeds checkout.session.completed events into the same
// confirmation workflow the redirect path uses. The workflow re-retrieves
// the session, so a replayed or duplicate event is a no-op.
func (pc *PaymentController) StripeWebhook(c *gin.Context) {
	event, err := pc.Provider.ParseWebhookEvent(c.Request)
	if err != nil {
		pc.Logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			pc.Logger.Error("Failed to unmarshal checkout session", zap.Error(err))
			break
		}
		if _, svcErr := pc.Service.ConfirmPayment(c.Request.Context(), sess.ID); svcErr != nil {
			pc.Logger.Error("Webhook confirmation failed",
				zap.String("session_id", sess.ID),
				zap.String("reason", svcErr.Message),
			)
		}
	default:
		pc.Logger.Info("Unhandled webhook event type", zap.String("event_type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// GetPaymentHistory returns the authenticated customer's ledger entries.
// The optional email filter must match the verified email.
func (pc *PaymentController) GetPaymentHistory(c *gin.Context) {
	authEmail := middleware.GetUserEmail(c)
	filterEmail := c.Query("email")

	payments, svcErr := pc.Service.GetPaymentHistory(c.Request.Context(), authEmail, filterEmail)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	c.JSON(http.StatusOK, payments)
}
