package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"moshood-fashion/internal/mailer"
	"moshood-fashion/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionService_Subscribe_StoresAndWelcomes(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockSubscriptionRepository)
	mockMail := new(MockMailer)

	var stored *model.Subscription
	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Subscription")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.Subscription) }).
		Return(nil)
	var body string
	mockMail.On("Send", ctx, "ada@example.com", mailer.SubjectWelcome, mock.Anything).
		Run(func(args mock.Arguments) { body = args.String(3) }).
		Return(nil)

	svc := NewSubscriptionService(mockRepo, mockMail, logger)
	sub, err := svc.Subscribe(ctx, "ada@example.com")

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", sub.Email)
	require.NotNil(t, stored)
	assert.Equal(t, "ada@example.com", stored.Email)
	assert.False(t, stored.SubscriptionDate.IsZero())
	assert.True(t, strings.Contains(body, "Visit Our Website"))
	mockRepo.AssertExpectations(t)
	mockMail.AssertExpectations(t)
}

// A stored row without a delivered welcome email is surfaced as a
// failure.
func TestSubscriptionService_Subscribe_WelcomeFailureFails(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockSubscriptionRepository)
	mockMail := new(MockMailer)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Subscription")).Return(nil)
	mockMail.On("Send", ctx, "ada@example.com", mailer.SubjectWelcome, mock.Anything).
		Return(errors.New("smtp refused"))

	svc := NewSubscriptionService(mockRepo, mockMail, logger)
	_, err := svc.Subscribe(ctx, "ada@example.com")

	require.Error(t, err)
}

// Duplicate submissions are stored as separate rows.
func TestSubscriptionService_Subscribe_AllowsDuplicates(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockRepo := new(MockSubscriptionRepository)
	mockMail := new(MockMailer)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*model.Subscription")).Return(nil).Twice()
	mockMail.On("Send", ctx, "ada@example.com", mailer.SubjectWelcome, mock.Anything).Return(nil).Twice()

	svc := NewSubscriptionService(mockRepo, mockMail, logger)

	first, err := svc.Subscribe(ctx, "ada@example.com")
	require.NoError(t, err)
	second, err := svc.Subscribe(ctx, "ada@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	mockRepo.AssertExpectations(t)
}
