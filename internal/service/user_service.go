package service

import (
	"context"
	"fmt"
	"time"

	"moshood-fashion/internal/auth"
	"moshood-fashion/internal/model"
	"moshood-fashion/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type userService struct {
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	issuer    *auth.TokenIssuer
	logger    zerolog.Logger
}

// NewUserService creates a new account service.
func NewUserService(
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	issuer *auth.TokenIssuer,
	logger zerolog.Logger,
) UserService {
	return &userService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
		issuer:    issuer,
		logger:    logger.With().Str("service", "user").Logger(),
	}
}

// Register creates an account with a hashed password.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Msg("account created")
	return user, nil
}

// Login verifies credentials and issues a session token. Lookup misses
// and wrong passwords collapse into the same error.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, model.ErrBadCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("user signed in")
	return &model.LoginResponse{Token: token, User: *user}, nil
}

// List returns account summaries with per-user order counts for the
// privileged admin listing.
func (s *userService) List(ctx context.Context) ([]model.UserSummary, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]model.UserSummary, 0, len(users))
	for _, user := range users {
		orders, err := s.orderRepo.GetByEmail(ctx, user.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to count orders for %s: %w", user.Email, err)
		}
		summaries = append(summaries, model.UserSummary{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			JoinedDate: user.CreatedAt,
			OrderCount: len(orders),
			IsDisabled: user.Disabled,
		})
	}
	return summaries, nil
}
