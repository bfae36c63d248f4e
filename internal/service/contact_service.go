package service

import (
	"context"
	"fmt"
	"time"

	"moshood-fashion/internal/model"
	"moshood-fashion/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contactService struct {
	repo   repository.ContactRepository
	logger zerolog.Logger
}

// NewContactService creates a new contact profile service.
func NewContactService(repo repository.ContactRepository, logger zerolog.Logger) ContactService {
	return &contactService{
		repo:   repo,
		logger: logger.With().Str("service", "contact").Logger(),
	}
}

// Save inserts a new profile row. Submissions never update in place, so
// resubmitting simply shadows the older rows for the same email.
func (s *contactService) Save(ctx context.Context, profile *model.ContactProfile) (*model.ContactProfile, error) {
	profile.ID = uuid.New()
	profile.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save contact profile: %w", err)
	}

	s.logger.Info().Str("email", profile.CustomerEmail).Msg("contact profile saved")
	return profile, nil
}

func (s *contactService) GetByEmail(ctx context.Context, email string) (*model.ContactProfile, error) {
	profile, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load contact profile: %w", err)
	}
	return profile, nil
}
