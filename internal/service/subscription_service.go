package service

import (
	"context"
	"fmt"
	"time"

	"moshood-fashion/internal/mailer"
	"moshood-fashion/internal/model"
	"moshood-fashion/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type subscriptionService struct {
	repo   repository.SubscriptionRepository
	mail   mailer.Mailer
	logger zerolog.Logger
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(repo repository.SubscriptionRepository, mail mailer.Mailer, logger zerolog.Logger) SubscriptionService {
	return &subscriptionService{
		repo:   repo,
		mail:   mail,
		logger: logger.With().Str("service", "subscription").Logger(),
	}
}

// Subscribe records the email and sends the welcome message. Either step
// failing fails the whole subscription; a stored row without a welcome
// email is reported as an error to the caller.
func (s *subscriptionService) Subscribe(ctx context.Context, email string) (*model.Subscription, error) {
	sub := &model.Subscription{
		ID:               uuid.New(),
		Email:            email,
		SubscriptionDate: time.Now(),
	}

	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store subscription: %w", err)
	}

	if err := s.mail.Send(ctx, email, mailer.SubjectWelcome, mailer.WelcomeBody()); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to send welcome email")
		return nil, fmt.Errorf("failed to send welcome email: %w", err)
	}

	s.logger.Info().Str("email", email).Msg("new subscriber")
	return sub, nil
}

func (s *subscriptionService) GetAll(ctx context.Context) ([]model.Subscription, error) {
	subs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}
