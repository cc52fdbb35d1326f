package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/models"
	"github.com/jackc/pgerrcode"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	repo := &userRepository{
		db:     db,
		logger: logger.Nop(),
	}
	return repo, mock
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()

	user := models.User{
		Username:     "mlindqvist",
		PasswordHash: "$2a$10$hash",
		FullName:     "Maya Lindqvist",
		Role:         "staff",
		IsActive:     true,
	}
	perms := models.Permissions{CanViewSubmissions: true}

	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.PasswordHash, user.FullName, user.Role, user.IsActive).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))
	mock.ExpectExec("INSERT INTO user_permissions").
		WithArgs(int64(3), false, true, false).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	created, err := repo.CreateUser(ctx, user, perms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 3 {
		t.Errorf("expected UserID=3, got %d", created.UserID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt to be populated from the insert")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, models.User{Username: "mlindqvist"}, models.Permissions{})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_PermissionsFailureRollsBack(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, time.Now()))
	mock.ExpectExec("INSERT INTO user_permissions").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.CreateUser(ctx, models.User{Username: "mlindqvist"}, models.Permissions{})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()

	now := time.Now()
	mock.ExpectQuery("SELECT id, username").
		WithArgs("mlindqvist").
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "username", "password_hash", "full_name", "role", "is_active", "created_at"}).
			AddRow(3, "mlindqvist", "$2a$10$hash", "Maya Lindqvist", "staff", true, now))

	found, err := repo.FindByUsername(ctx, "mlindqvist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 3 || found.Username != "mlindqvist" {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id, username").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByUsername(ctx, "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestPermissions_MissingRowYieldsZeroValue(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()

	mock.ExpectQuery("SELECT can_manage_users").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"can_manage_users"}))

	perms, err := repo.Permissions(ctx, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if perms.CanManageUsers || perms.CanViewSubmissions || perms.CanExportData {
		t.Errorf("expected zero-value permissions, got %+v", perms)
	}
	if perms.UserID != 9 {
		t.Errorf("expected UserID to be carried, got %d", perms.UserID)
	}
}

func TestUpdateUser_NothingToUpdate(t *testing.T) {
	repo, _ := newTestUserRepo(t)
	ctx := context.Background()

	err := repo.UpdateUser(ctx, 3, models.UserUpdate{})
	if !errors.Is(err, ErrNothingToUpdate) {
		t.Fatalf("expected ErrNothingToUpdate, got %v", err)
	}
}

func TestUpdateUser_UserNotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()

	role := "admin"

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.UpdateUser(ctx, 404, models.UserUpdate{Role: &role})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateUser_FieldsAndPermissions(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()

	fullName := "Maya L. Quist"
	active := false

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO user_permissions").
		WithArgs(int64(3), true, true, false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateUser(ctx, 3, models.UserUpdate{
		FullName:    &fullName,
		IsActive:    &active,
		Permissions: &models.Permissions{CanManageUsers: true, CanViewSubmissions: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateUser_PermissionsOnly(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("INSERT INTO user_permissions").
		WithArgs(int64(3), false, true, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateUser(ctx, 3, models.UserUpdate{
		Permissions: &models.Permissions{CanViewSubmissions: true, CanExportData: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
