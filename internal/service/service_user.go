package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of [UserService]. Passwords are
// hashed here, at the service boundary; the store layer only ever sees
// bcrypt hashes.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a [UserService].
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Create registers a new staff account with the given initial password and
// permission flags.
//
// Returns the persisted user (with server-assigned UserID and CreatedAt) or:
//   - [ErrInvalidDataProvided] if username or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. username
//     taken, see [store.ErrUsernameAlreadyExists]).
func (s *userService) Create(ctx context.Context, user models.User, password string, perms models.Permissions) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(user.Username) == "" || password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}
	user.PasswordHash = string(hash)
	user.IsActive = true

	created, err := s.userRepository.CreateUser(ctx, user, perms)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// List returns one page of staff accounts.
func (s *userService) List(ctx context.Context, page, limit int) ([]models.User, models.Pagination, error) {
	return s.userRepository.ListUsers(ctx, page, limit)
}

// Update applies a partial account update. A password in the update is
// replaced by its bcrypt hash before the repository sees it.
func (s *userService) Update(ctx context.Context, id int64, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	if update.Password != nil {
		if *update.Password == "" {
			return ErrInvalidDataProvided
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*update.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password failed: %w", err)
		}
		hashed := string(hash)
		update.Password = &hashed
	}

	if err := s.userRepository.UpdateUser(ctx, id, update); err != nil {
		log.Err(err).Int64("id", id).Msg("user update ended with error")
		return fmt.Errorf("user update ended with error: %w", err)
	}

	return nil
}
