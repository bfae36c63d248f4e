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

type requestService struct {
	repo   repository.RequestRepository
	logger zerolog.Logger
}

// NewRequestService creates a new product request service.
func NewRequestService(repo repository.RequestRepository, logger zerolog.Logger) RequestService {
	return &requestService{
		repo:   repo,
		logger: logger.With().Str("service", "request").Logger(),
	}
}

// Create submits a commission for the user. Inspiration images beyond
// the cap are silently dropped.
func (s *requestService) Create(ctx context.Context, userID uuid.UUID, input *model.ProductRequestInput) (*model.ProductRequest, error) {
	images := input.InspirationImages
	if images == nil {
		images = []string{}
	}
	if len(images) > model.MaxInspirationImages {
		images = images[:model.MaxInspirationImages]
	}

	request := &model.ProductRequest{
		ID:                uuid.New(),
		UserID:            userID,
		InspirationImages: images,
		Budget:            input.Budget,
		ExpectedDate:      input.ExpectedDate,
		ContactName:       input.ContactName,
		ContactEmail:      input.ContactEmail,
		ContactPhone:      input.ContactPhone,
		Gender:            input.Gender,
		ClothingSize:      input.ClothingSize,
		AdditionalInfo:    input.AdditionalInfo,
		SubmittedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create product request: %w", err)
	}

	s.logger.Info().
		Str("request_id", request.ID.String()).
		Str("user_id", userID.String()).
		Int("images", len(images)).
		Msg("product request submitted")
	return request, nil
}

func (s *requestService) GetByUser(ctx context.Context, userID uuid.UUID) ([]model.ProductRequest, error) {
	requests, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user requests: %w", err)
	}
	return requests, nil
}

func (s *requestService) GetAll(ctx context.Context, limit, offset int) ([]model.ProductRequest, error) {
	if limit <= 0 {
		limit = 20
	}
	requests, err := s.repo.GetAll(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

// UpdateAdditionalInfo edits the free-text notes on the user's own
// request.
func (s *requestService) UpdateAdditionalInfo(ctx context.Context, id, userID uuid.UUID, info string) error {
	if err := s.authorise(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.UpdateAdditionalInfo(ctx, id, info); err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}
	return nil
}

// Delete removes the user's own request.
func (s *requestService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.authorise(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	s.logger.Info().Str("request_id", id.String()).Msg("product request deleted")
	return nil
}

func (s *requestService) authorise(ctx context.Context, id, userID uuid.UUID) error {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load request: %w", err)
	}
	if request == nil {
		return model.ErrRequestNotFound
	}
	if request.UserID != userID {
		return model.ErrNotOwner
	}
	return nil
}
