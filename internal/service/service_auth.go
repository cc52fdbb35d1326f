package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harborlight/intake-server/internal/config"
	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/internal/utils"
	"github.com/harborlight/intake-server/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of [AuthService].
// It verifies staff credentials against bcrypt password hashes and manages
// the JWT token lifecycle using a UserRepository for persistence.
type authService struct {
	// userRepository is the data-access layer used to look up accounts.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during
	// parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// adminUsername and adminPassword drive the startup administrator
	// bootstrap. An empty password disables the bootstrap.
	adminUsername string
	adminPassword string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		adminUsername:  cfg.AdminUsername,
		adminPassword:  cfg.AdminPassword,
		logger:         logger,
	}
}

// Login authenticates a staff account by username and password.
//
// Returns the account and its permission flags or:
//   - [ErrInvalidDataProvided] if username or password is empty.
//   - A wrapped storage error if the lookup fails (the handler maps
//     [store.ErrNoUserWasFound] to the same response as a wrong password,
//     so a caller cannot probe for valid usernames).
//   - [ErrAccountDisabled] for a deactivated account.
//   - [ErrWrongPassword] if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, models.Permissions, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.User{}, models.Permissions{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, models.Permissions{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !user.IsActive {
		log.Warn().Int64("id", user.UserID).Str("username", user.Username).Msg("login attempt on disabled account")
		return models.User{}, models.Permissions{}, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", user.UserID).Str("username", user.Username).Msg("wrong password")
		return models.User{}, models.Permissions{}, ErrWrongPassword
	}

	perms, err := a.userRepository.Permissions(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("permissions lookup failed")
		return models.User{}, models.Permissions{}, fmt.Errorf("permissions lookup failed: %w", err)
	}

	return user, perms, nil
}

// Identity resolves an authenticated user ID back to the account and its
// permission flags. Used by the token verification endpoint and the
// permission gate middleware.
func (a *authService) Identity(ctx context.Context, userID int64) (models.User, models.Permissions, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, models.Permissions{}, fmt.Errorf("user search by id failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, models.Permissions{}, ErrAccountDisabled
	}

	perms, err := a.userRepository.Permissions(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("permissions lookup failed")
		return models.User{}, models.Permissions{}, fmt.Errorf("permissions lookup failed: %w", err)
	}

	return user, perms, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed, bad signature)
// is normalised to [ErrTokenIsExpiredOrInvalid] so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// EnsureAdmin creates the configured administrator account at startup when
// it does not exist yet. With no admin password configured the bootstrap is
// skipped, which leaves a fresh deployment without any account able to
// manage users; a warning is logged so the operator notices.
func (a *authService) EnsureAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.adminPassword == "" {
		log.Warn().Msg("no admin password configured, skipping administrator bootstrap")
		return nil
	}

	_, err := a.userRepository.FindByUsername(ctx, a.adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password failed: %w", err)
	}

	admin := models.User{
		Username:     a.adminUsername,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         "admin",
		IsActive:     true,
	}
	perms := models.Permissions{
		CanManageUsers:     true,
		CanViewSubmissions: true,
		CanExportData:      true,
	}

	created, err := a.userRepository.CreateUser(ctx, admin, perms)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		// lost a race with a concurrently starting instance
		return nil
	}
	if err != nil {
		return fmt.Errorf("admin creation failed: %w", err)
	}

	log.Info().Int64("id", created.UserID).Str("username", created.Username).Msg("administrator account created")
	return nil
}
