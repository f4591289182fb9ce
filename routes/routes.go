package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rakeebhasan09/ZapShift-server/controllers"
	"github.com/rakeebhasan09/ZapShift-server/middleware"
)

func RegisterRoutes(r *gin.Engine, parcelCtrl *controllers.ParcelController, paymentCtrl *controllers.PaymentController, verifier middleware.TokenVerifier) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ZapShift server is running")
	})

	parcels := r.Group("/parcels")
	parcels.GET("", parcelCtrl.ListParcels)
	parcels.POST("", parcelCtrl.CreateParcel)
	parcels.GET("/:id", parcelCtrl.GetParcel)
	parcels.DELETE("/:id", parcelCtrl.DeleteParcel)

	payments := r.Group("/payments")
	payments.POST("/create-checkout-session", paymentCtrl.CreateCheckoutSession)
	payments.POST("/confirm", paymentCtrl.ConfirmPayment)
	payments.GET("", middleware.AuthMiddleware(verifier), paymentCtrl.GetPaymentHistory)

	// Stripe webhook (no auth)
	r.POST("/stripe/webhook", paymentCtrl.StripeWebhook)
}
