package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles staff account creation, lookup, listing, and partial updates
// against the "users" and "user_permissions" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database handle and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and its one-to-one permission row inside
// a single transaction and returns the fully populated [models.User] with
// server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped low-level store error.
func (r *userRepository) CreateUser(ctx context.Context, user models.User, perms models.Permissions) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to begin transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, createUser,
		strings.TrimSpace(user.Username),
		user.PasswordHash,
		strings.TrimSpace(user.FullName),
		strings.TrimSpace(user.Role),
		user.IsActive,
	).Scan(&user.UserID, &user.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if _, err := tx.ExecContext(ctx, createUserPermissions,
		user.UserID,
		perms.CanManageUsers,
		perms.CanViewSubmissions,
		perms.CanExportData,
	); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Int64("id", user.UserID).Msg("error inserting permissions")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*userRepository.CreateUser").Msg("failed to commit transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return user, nil
}

// FindByUsername retrieves the account whose username matches exactly.
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, findUserByUsername, username)
}

// FindByID retrieves the account with the given identifier.
// Returns [ErrNoUserWasFound] when no row matches.
func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.UserID,
		&user.Username,
		&user.PasswordHash,
		&user.FullName,
		&user.Role,
		&user.IsActive,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// Permissions returns the permission flags of the given user. A user with no
// permission row gets the zero value - no capabilities - rather than an
// error, so legacy accounts degrade safely.
func (r *userRepository) Permissions(ctx context.Context, userID int64) (models.Permissions, error) {
	log := logger.FromContext(ctx)

	perms := models.Permissions{UserID: userID}
	err := r.db.QueryRowContext(ctx, getUserPermissions, userID).Scan(
		&perms.CanManageUsers,
		&perms.CanViewSubmissions,
		&perms.CanExportData,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Permissions{UserID: userID}, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Permissions").Int64("user_id", userID).Msg("error: scanning error")
		return models.Permissions{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return perms, nil
}

// ListUsers returns one page of accounts ordered newest-first.
func (r *userRepository) ListUsers(ctx context.Context, page, limit int) ([]models.User, models.Pagination, error) {
	log := logger.FromContext(ctx)

	total, err := r.db.countRows(ctx, "users")
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error counting users")
		return nil, models.Pagination{}, err
	}

	query, args, err := sq.
		Select("id", "username", "password_hash", "full_name", "role", "is_active", "created_at").
		From("users").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing list query")
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, limit)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.UserID,
			&user.Username,
			&user.PasswordHash,
			&user.FullName,
			&user.Role,
			&user.IsActive,
			&user.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, paginate(total, page, limit), nil
}

// UpdateUser applies a partial update to the account row and, when the
// update carries permission flags, upserts the permission row - both inside
// one transaction. The dynamic SET clause is built with squirrel from only
// the fields present in the update.
//
// Returns [ErrNothingToUpdate] for an empty update and [ErrNoUserWasFound]
// when the account does not exist.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) error {
	log := logger.FromContext(ctx)

	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)
	hasUserFields := false

	if update.FullName != nil {
		builder = builder.Set("full_name", strings.TrimSpace(*update.FullName))
		hasUserFields = true
	}
	if update.Role != nil {
		builder = builder.Set("role", strings.TrimSpace(*update.Role))
		hasUserFields = true
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
		hasUserFields = true
	}
	if update.Password != nil {
		// caller is responsible for delivering a hash, never plaintext
		builder = builder.Set("password_hash", *update.Password)
		hasUserFields = true
	}

	if !hasUserFields && update.Permissions == nil {
		return ErrNothingToUpdate
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if hasUserFields {
		query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building update query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", id).Msg("error executing update")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrNoUserWasFound
		}
	} else {
		// permissions-only update still requires the account to exist
		var exists int64
		if err := tx.QueryRowContext(ctx, "SELECT id FROM users WHERE id = $1", id).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNoUserWasFound
			}
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	if update.Permissions != nil {
		if _, err := tx.ExecContext(ctx, upsertUserPermissions,
			id,
			update.Permissions.CanManageUsers,
			update.Permissions.CanViewSubmissions,
			update.Permissions.CanExportData,
		); err != nil {
			log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", id).Msg("error upserting permissions")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*userRepository.UpdateUser").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}
