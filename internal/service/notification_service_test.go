package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"moshood-fashion/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Dispatch_NoSubscribers(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockSubs := new(MockSubscriptionRepository)
	mockProducts := new(MockProductRepository)
	mockMail := new(MockMailer)

	mockSubs.On("GetAll", ctx).Return([]model.Subscription{}, nil)

	svc := NewNotificationService(mockSubs, mockProducts, mockMail, logger)
	sent, err := svc.Dispatch(ctx, model.ModeDaily)

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	mockMail.AssertNotCalled(t, "Send")
}

func TestNotificationService_Dispatch_DeduplicatesEmails(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockSubs := new(MockSubscriptionRepository)
	mockProducts := new(MockProductRepository)
	mockMail := new(MockMailer)

	mockSubs.On("GetAll", ctx).Return([]model.Subscription{
		{Email: "ada@example.com"},
		{Email: "tunde@example.com"},
		{Email: "ada@example.com"},
	}, nil)
	mockProducts.On("GetAll", ctx, mock.Anything, mock.Anything).Return([]model.Product{
		{Name: "Ankara Gown", Price: 15000, Images: []string{"https://cdn.example.com/gown.jpg"}},
	}, nil)

	var mu sync.Mutex
	recipients := make(map[string]int)
	mockMail.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			mu.Lock()
			recipients[args.String(1)]++
			mu.Unlock()
		}).
		Return(nil)

	svc := NewNotificationService(mockSubs, mockProducts, mockMail, logger)
	sent, err := svc.Dispatch(ctx, model.ModeDaily)

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 1, recipients["ada@example.com"])
	assert.Equal(t, 1, recipients["tunde@example.com"])
}

func TestNotificationService_Dispatch_PartialFailureFails(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockSubs := new(MockSubscriptionRepository)
	mockProducts := new(MockProductRepository)
	mockMail := new(MockMailer)

	mockSubs.On("GetAll", ctx).Return([]model.Subscription{
		{Email: "ada@example.com"},
		{Email: "broken@example.com"},
	}, nil)
	mockProducts.On("GetAll", ctx, mock.Anything, mock.Anything).Return([]model.Product{
		{Name: "Ankara Gown", Price: 15000, Images: []string{"https://cdn.example.com/gown.jpg"}},
	}, nil)

	mockMail.On("Send", mock.Anything, "ada@example.com", mock.Anything, mock.Anything).Return(nil)
	mockMail.On("Send", mock.Anything, "broken@example.com", mock.Anything, mock.Anything).
		Return(errors.New("smtp refused"))

	svc := NewNotificationService(mockSubs, mockProducts, mockMail, logger)
	_, err := svc.Dispatch(ctx, model.ModeWeekend)

	require.Error(t, err)
	mockMail.AssertExpectations(t)
}

func TestNotificationService_Dispatch_FallsBackToSampleProduct(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockSubs := new(MockSubscriptionRepository)
	mockProducts := new(MockProductRepository)
	mockMail := new(MockMailer)

	mockSubs.On("GetAll", ctx).Return([]model.Subscription{{Email: "ada@example.com"}}, nil)
	// Catalogue has products but none with images.
	mockProducts.On("GetAll", ctx, mock.Anything, mock.Anything).Return([]model.Product{
		{Name: "Plain Shirt", Price: 5000},
	}, nil)

	var body string
	mockMail.On("Send", mock.Anything, "ada@example.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { body = args.String(3) }).
		Return(nil)

	svc := NewNotificationService(mockSubs, mockProducts, mockMail, logger)
	sent, err := svc.Dispatch(ctx, model.ModeDaily)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.True(t, strings.Contains(body, "Sample Product"))
	assert.False(t, strings.Contains(body, "Plain Shirt"))
}

// The selection walks every catalogue page, so a product past the first
// page can still be featured.
func TestNotificationService_Dispatch_DrawsFromAllPages(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockSubs := new(MockSubscriptionRepository)
	mockProducts := new(MockProductRepository)
	mockMail := new(MockMailer)

	// A full first page with no images forces the walk onto page two,
	// which holds the only product eligible for the digest.
	firstPage := make([]model.Product, 200)
	for i := range firstPage {
		firstPage[i] = model.Product{Name: "Plain Shirt", Price: 5000}
	}
	secondPage := []model.Product{
		{Name: "Aso Oke Wrapper", Price: 12000, Images: []string{"https://cdn.example.com/asooke.jpg"}},
	}

	mockSubs.On("GetAll", ctx).Return([]model.Subscription{{Email: "ada@example.com"}}, nil)
	mockProducts.On("GetAll", ctx, 200, 0).Return(firstPage, nil)
	mockProducts.On("GetAll", ctx, 200, 200).Return(secondPage, nil)

	var body string
	mockMail.On("Send", mock.Anything, "ada@example.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { body = args.String(3) }).
		Return(nil)

	svc := NewNotificationService(mockSubs, mockProducts, mockMail, logger)
	sent, err := svc.Dispatch(ctx, model.ModeDaily)

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.True(t, strings.Contains(body, "Aso Oke Wrapper"))
	assert.False(t, strings.Contains(body, "Sample Product"))
	mockProducts.AssertExpectations(t)
}

func TestNotificationService_Dispatch_AtMostThreeProducts(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockSubs := new(MockSubscriptionRepository)
	mockProducts := new(MockProductRepository)
	mockMail := new(MockMailer)

	catalogue := []model.Product{
		{Name: "Gown A", Price: 1000, Images: []string{"a.jpg"}},
		{Name: "Gown B", Price: 2000, Images: []string{"b.jpg"}},
		{Name: "Gown C", Price: 3000, Images: []string{"c.jpg"}},
		{Name: "Gown D", Price: 4000, Images: []string{"d.jpg"}},
		{Name: "Gown E", Price: 5000, Images: []string{"e.jpg"}},
	}

	mockSubs.On("GetAll", ctx).Return([]model.Subscription{{Email: "ada@example.com"}}, nil)
	mockProducts.On("GetAll", ctx, mock.Anything, mock.Anything).Return(catalogue, nil)

	var body string
	mockMail.On("Send", mock.Anything, "ada@example.com", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { body = args.String(3) }).
		Return(nil)

	svc := NewNotificationService(mockSubs, mockProducts, mockMail, logger)
	_, err := svc.Dispatch(ctx, model.ModeDaily)
	require.NoError(t, err)

	featured := 0
	for _, p := range catalogue {
		if strings.Contains(body, p.Name) {
			featured++
		}
	}
	assert.Equal(t, 3, featured)
}
