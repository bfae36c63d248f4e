package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"moshood-fashion/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CompleteCheckout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CheckoutResult), args.Error(1)
}

func checkoutPayload(t *testing.T, status string) []byte {
	t.Helper()

	req := model.CheckoutRequest{
		Callback: model.PaymentCallback{
			Status:        status,
			TransactionID: 84512,
			TxRef:         "MF-1700000000000",
			Amount:        2500,
			Currency:      "NGN",
			Customer:      model.PaymentCustomer{Name: "Ada Obi", Email: "ada@example.com"},
		},
		Items: []model.OrderItem{
			{ProductID: uuid.New(), Name: "Ankara Gown", Price: 2500, Quantity: 1},
		},
		Email: "ada@example.com",
	}

	body, err := json.Marshal(req)
	require.NoError(t, err)
	return body
}

func TestCheckoutHandler_Complete_Success(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCheckoutService)
	mockService.On("CompleteCheckout", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
		Return(&model.CheckoutResult{
			Processed: true,
			OrderID:   uuid.New().String(),
			PaymentID: uuid.New().String(),
			EmailSent: true,
		}, nil)

	h := NewCheckoutHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(checkoutPayload(t, "completed")))
	w := httptest.NewRecorder()
	h.Complete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result model.CheckoutResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Processed)
	assert.True(t, result.EmailSent)
}

func TestCheckoutHandler_Complete_NotCompletedStillOK(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCheckoutService)
	mockService.On("CompleteCheckout", mock.Anything, mock.AnythingOfType("*model.CheckoutRequest")).
		Return(&model.CheckoutResult{Processed: false}, nil)

	h := NewCheckoutHandler(mockService, logger)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(checkoutPayload(t, "cancelled")))
	w := httptest.NewRecorder()
	h.Complete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result model.CheckoutResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Processed)
}

func TestCheckoutHandler_Complete_RejectsEmptyCart(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCheckoutService)
	h := NewCheckoutHandler(mockService, logger)

	body, err := json.Marshal(model.CheckoutRequest{
		Callback: model.PaymentCallback{Status: "completed"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.Complete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CompleteCheckout")
}

func TestCheckoutHandler_Complete_RejectsBadJSON(t *testing.T) {
	logger := zerolog.Nop()

	h := NewCheckoutHandler(new(MockCheckoutService), logger)

	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	h.Complete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutHandler_Complete_MethodNotAllowed(t *testing.T) {
	logger := zerolog.Nop()

	h := NewCheckoutHandler(new(MockCheckoutService), logger)

	req := httptest.NewRequest(http.MethodGet, "/api/checkout", nil)
	w := httptest.NewRecorder()
	h.Complete(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
