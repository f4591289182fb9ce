package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rakeebhasan09/ZapShift-server/controllers"
	"github.com/rakeebhasan09/ZapShift-server/middleware"
	"github.com/rakeebhasan09/ZapShift-server/models"
	"github.com/rakeebhasan09/ZapShift-server/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock PaymentService ---

type mockPaymentService struct {
	checkoutFn func(ctx context.Context, req *models.CreateCheckoutRequest) (string, *services.ServiceError)
	confirmFn  func(ctx context.Context, sessionID string) (*models.ConfirmPaymentResponse, *services.ServiceError)
	historyFn  func(ctx context.Context, authEmail, filterEmail string) ([]models.Payment, *services.ServiceError)
}

func (m *mockPaymentService) CreateCheckoutSession(ctx context.Context, req *models.CreateCheckoutRequest) (string, *services.ServiceError) {
	return m.checkoutFn(ctx, req)
}
func (m *mockPaymentService) ConfirmPayment(ctx context.Context, sessionID string) (*models.ConfirmPaymentResponse, *services.ServiceError) {
	return m.confirmFn(ctx, sessionID)
}
func (m *mockPaymentService) GetPaymentHistory(ctx context.Context, authEmail, filterEmail string) ([]models.Payment, *services.ServiceError) {
	return m.historyFn(ctx, authEmail, filterEmail)
}

// --- Helpers ---

type staticVerifier struct{ email string }

func (v *staticVerifier) Verify(_ string) (string, error) {
	if v.email == "" {
		return "", assert.AnError
	}
	return v.email, nil
}

func setupPaymentRouter(svc services.PaymentService, verifier middleware.TokenVerifier) *gin.Engine {
	logger, _ := zap.NewDevelopment()
	pc := controllers.NewPaymentController(svc, nil, logger)

	r := gin.New()
	r.POST("/payments/create-checkout-session", pc.CreateCheckoutSession)
	r.POST("/payments/confirm", pc.ConfirmPayment)
	r.GET("/payments", middleware.AuthMiddleware(verifier), pc.GetPaymentHistory)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestConfirmPayment_SuccessPayload(t *testing.T) {
	svc := &mockPaymentService{
		confirmFn: func(_ context.Context, sessionID string) (*models.ConfirmPaymentResponse, *services.ServiceError) {
			assert.Equal(t, "sess_1", sessionID)
			return &models.ConfirmPaymentResponse{Success: true, TrackingID: "PRCL-20260831-1A2B3C", TransactionID: "pi_1"}, nil
		},
	}
	r := setupPaymentRouter(svc, &staticVerifier{})

	w := doJSON(r, http.MethodPost, "/payments/confirm", gin.H{"sessionId": "sess_1"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.ConfirmPaymentResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "PRCL-20260831-1A2B3C", resp.TrackingID)
	assert.Equal(t, "pi_1", resp.TransactionID)
}

func TestConfirmPayment_NotPaidIsStillOK(t *testing.T) {
	svc := &mockPaymentService{
		confirmFn: func(_ context.Context, _ string) (*models.ConfirmPaymentResponse, *services.ServiceError) {
			return &models.ConfirmPaymentResponse{Success: false}, nil
		},
	}
	r := setupPaymentRouter(svc, &staticVerifier{})

	w := doJSON(r, http.MethodPost, "/payments/confirm", gin.H{"sessionId": "sess_1"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": false}`, w.Body.String())
}

func TestConfirmPayment_MissingSessionID(t *testing.T) {
	svc := &mockPaymentService{}
	r := setupPaymentRouter(svc, &staticVerifier{})

	w := doJSON(r, http.MethodPost, "/payments/confirm", gin.H{}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmPayment_SessionNotFound(t *testing.T) {
	svc := &mockPaymentService{
		confirmFn: func(_ context.Context, _ string) (*models.ConfirmPaymentResponse, *services.ServiceError) {
			return nil, &services.ServiceError{StatusCode: 404, Message: "Checkout session not found"}
		},
	}
	r := setupPaymentRouter(svc, &staticVerifier{})

	w := doJSON(r, http.MethodPost, "/payments/confirm", gin.H{"sessionId": "sess_x"}, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestCreateCheckoutSession_ReturnsURL(t *testing.T) {
	svc := &mockPaymentService{
		checkoutFn: func(_ context.Context, req *models.CreateCheckoutRequest) (string, *services.ServiceError) {
			assert.Equal(t, "Box A", req.ParcelName)
			return "https://checkout.stripe.com/c/pay/sess_new", nil
		},
	}
	r := setupPaymentRouter(svc, &staticVerifier{})

	w := doJSON(r, http.MethodPost, "/payments/create-checkout-session", gin.H{
		"cost": 25, "parcelId": "6500000000000000000000aa", "parcelName": "Box A", "senderEmail": "a@x.com",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "checkout.stripe.com")
}

func TestGetPaymentHistory_RequiresToken(t *testing.T) {
	svc := &mockPaymentService{}
	r := setupPaymentRouter(svc, &staticVerifier{email: "a@x.com"})

	w := doJSON(r, http.MethodGet, "/payments", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetPaymentHistory_ForbiddenFilter(t *testing.T) {
	svc := &mockPaymentService{
		historyFn: func(_ context.Context, authEmail, filterEmail string) ([]models.Payment, *services.ServiceError) {
			assert.Equal(t, "a@x.com", authEmail)
			assert.Equal(t, "b@x.com", filterEmail)
			return nil, &services.ServiceError{StatusCode: 403, Message: "Forbidden"}
		},
	}
	r := setupPaymentRouter(svc, &staticVerifier{email: "a@x.com"})

	w := doJSON(r, http.MethodGet, "/payments?email=b@x.com", nil, map[string]string{
		"Authorization": "Bearer token",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetPaymentHistory_ReturnsRecords(t *testing.T) {
	svc := &mockPaymentService{
		historyFn: func(_ context.Context, authEmail, _ string) ([]models.Payment, *services.ServiceError) {
			return []models.Payment{{TransactionID: "pi_1", CustomerEmail: authEmail}}, nil
		},
	}
	r := setupPaymentRouter(svc, &staticVerifier{email: "a@x.com"})

	w := doJSON(r, http.MethodGet, "/payments", nil, map[string]string{
		"Authorization": "Bearer token",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pi_1")
}
