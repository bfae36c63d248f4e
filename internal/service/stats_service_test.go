package service

import (
	"context"
	"errors"
	"testing"

	"moshood-fashion/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_Overview_CollectsAllMetrics(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockStatsRepository)
	mockRepo.On("CountOrders", ctx).Return(int64(42), nil)
	mockRepo.On("CountOrdersByStatus", ctx, model.StatusCompleted).Return(int64(30), nil)
	mockRepo.On("CountOrdersByStatus", ctx, model.StatusPending, model.StatusSent).Return(int64(7), nil)
	mockRepo.On("CountRequests", ctx).Return(int64(5), nil)
	mockRepo.On("CountUsers", ctx).Return(int64(120), nil)
	mockRepo.On("SumPayments", ctx).Return(987500.50, nil)

	svc := NewStatsService(mockRepo, logger)
	overview, err := svc.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(42), overview.TotalOrders)
	assert.Equal(t, int64(30), overview.DeliveredOrders)
	assert.Equal(t, int64(7), overview.ActiveOrders)
	assert.Equal(t, int64(5), overview.TotalRequests)
	assert.Equal(t, int64(120), overview.TotalUsers)
	assert.Equal(t, 987500.50, overview.TotalIncome)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_Overview_FailingMetricFailsOverview(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockStatsRepository)
	mockRepo.On("CountOrders", ctx).Return(int64(0), errors.New("db down"))
	mockRepo.On("CountOrdersByStatus", ctx, model.StatusCompleted).Return(int64(0), nil)
	mockRepo.On("CountOrdersByStatus", ctx, model.StatusPending, model.StatusSent).Return(int64(0), nil)
	mockRepo.On("CountRequests", ctx).Return(int64(0), nil)
	mockRepo.On("CountUsers", ctx).Return(int64(0), nil)
	mockRepo.On("SumPayments", ctx).Return(0.0, nil)

	svc := NewStatsService(mockRepo, logger)
	_, err := svc.Overview(ctx)

	require.Error(t, err)
}
