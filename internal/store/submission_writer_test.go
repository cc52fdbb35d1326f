package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/harborlight/intake-server/internal/logger"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	l := logger.Nop()
	return &DB{
		DB:                 conn,
		logger:             l,
		errorClassificator: NewPostgresErrorClassifier(),
	}, mock
}

func TestCreateSubmission_Success(t *testing.T) {
	db, mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO parents").
		WithArgs("a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	prep := mock.ExpectPrepare("INSERT INTO children")
	prep.ExpectExec().WithArgs(int64(42), "first").WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WithArgs(int64(42), "second").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	id, err := db.createSubmission(ctx, "test-form",
		"INSERT INTO parents (a, b) VALUES ($1, $2) RETURNING id",
		[]any{"a", "b"},
		childBatch{
			insertQuery: "INSERT INTO children (parent_id, value) VALUES ($1, $2)",
			rows:        [][]any{{"first"}, {"second"}},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Errorf("expected id=42, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateSubmission_EmptyBatchSkipsPrepare(t *testing.T) {
	db, mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO parents").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	id, err := db.createSubmission(ctx, "test-form",
		"INSERT INTO parents (a) VALUES ($1) RETURNING id",
		[]any{"a"},
		childBatch{insertQuery: "INSERT INTO children (parent_id, value) VALUES ($1, $2)"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Errorf("expected id=7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateSubmission_DuplicatePayloadCreatesSecondRow(t *testing.T) {
	db, mock := newTestDB(t)
	ctx := context.Background()

	// the same payload submitted twice produces two independent rows
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO parents").
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO parents").
		WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
	mock.ExpectCommit()

	first, err := db.createSubmission(ctx, "test-form",
		"INSERT INTO parents (a) VALUES ($1) RETURNING id",
		[]any{"a"},
	)
	if err != nil {
		t.Fatalf("unexpected error on first submit: %v", err)
	}
	second, err := db.createSubmission(ctx, "test-form",
		"INSERT INTO parents (a) VALUES ($1) RETURNING id",
		[]any{"a"},
	)
	if err != nil {
		t.Fatalf("unexpected error on second submit: %v", err)
	}
	if first == second {
		t.Errorf("expected distinct ids, got %d twice", first)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateSubmission_ParentFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO parents").
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	_, err := db.createSubmission(ctx, "test-form",
		"INSERT INTO parents (a) VALUES ($1) RETURNING id",
		[]any{"a"},
	)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateSubmission_ChildFailureRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO parents").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	prep := mock.ExpectPrepare("INSERT INTO children")
	prep.ExpectExec().WithArgs(int64(42), "first").WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().WithArgs(int64(42), "second").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := db.createSubmission(ctx, "test-form",
		"INSERT INTO parents (a) VALUES ($1) RETURNING id",
		[]any{"a"},
		childBatch{
			insertQuery: "INSERT INTO children (parent_id, value) VALUES ($1, $2)",
			rows:        [][]any{{"first"}, {"second"}},
		},
	)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateSubmission_CommitFailure(t *testing.T) {
	db, mock := newTestDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO parents").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit().WillReturnError(errors.New("connection lost"))

	_, err := db.createSubmission(ctx, "test-form",
		"INSERT INTO parents (a) VALUES ($1) RETURNING id",
		[]any{"a"},
	)
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}

func TestNullIfEmpty(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
		want  string
	}{
		{name: "value kept", in: "some notes", valid: true, want: "some notes"},
		{name: "trimmed", in: "  padded  ", valid: true, want: "padded"},
		{name: "empty becomes null", in: "", valid: false, want: ""},
		{name: "whitespace becomes null", in: "   ", valid: false, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nullIfEmpty(tt.in)
			if got.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v", got.Valid, tt.valid)
			}
			if got.String != tt.want {
				t.Errorf("String = %q, want %q", got.String, tt.want)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		limit      int
		totalPages int
	}{
		{name: "exact fit", total: 20, page: 1, limit: 10, totalPages: 2},
		{name: "partial last page", total: 21, page: 3, limit: 10, totalPages: 3},
		{name: "empty table", total: 0, page: 1, limit: 10, totalPages: 0},
		{name: "single row", total: 1, page: 1, limit: 10, totalPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(tt.total, tt.page, tt.limit)
			if got.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", got.TotalPages, tt.totalPages)
			}
			if got.Total != tt.total || got.Page != tt.page || got.Limit != tt.limit {
				t.Errorf("unexpected pagination: %+v", got)
			}
		})
	}
}
