package service

import (
	"context"
	"fmt"

	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/store"
	"github.com/denteo/clinic-backend/models"
)

// userService is the concrete implementation of UserService.
// It exposes account administration over the user repository, returning
// only public user views; access control is the transport layer's job.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser returns the public view of one account.
// Passes store.ErrUserNotFound through for the handler to map to 404.
func (u *userService) GetUser(ctx context.Context, userID int64) (models.PublicUser, error) {
	found, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.PublicUser{}, err
	}

	return found.Public(), nil
}

// ListUsers returns the public views of all accounts matching the filter.
func (u *userService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error) {
	users, err := u.userRepository.ListUsers(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	return public, nil
}

// UpdateUser applies a partial update and returns the updated account.
//
// Returns:
//   - ErrInvalidDataProvided for an unknown role or an empty update.
//   - store.ErrUserNotFound / store.ErrEmailTaken passed through.
func (u *userService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.PublicUser, error) {
	if req.Role != nil && !models.ValidRole(*req.Role) {
		return models.PublicUser{}, ErrInvalidDataProvided
	}

	update := models.UserUpdate{
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
		Active: req.Active,
	}
	if update.IsEmpty() {
		return models.PublicUser{}, ErrInvalidDataProvided
	}

	updated, err := u.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		return models.PublicUser{}, err
	}

	return updated.Public(), nil
}

// SetUserActive activates or deactivates an account. Deactivation takes
// effect at the next login or refresh; outstanding tokens expire on their
// own schedule.
func (u *userService) SetUserActive(ctx context.Context, userID int64, active bool) error {
	return u.userRepository.SetUserActive(ctx, userID, active)
}

// DeleteUser permanently removes an account.
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	return u.userRepository.DeleteUser(ctx, userID)
}
