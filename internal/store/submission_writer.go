package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/models"
)

// childBatch is one repeating-group collection to insert alongside a parent
// submission row. insertQuery must take the generated parent identifier as
// its first placeholder; rows carries the remaining arguments per child row
// in payload order.
type childBatch struct {
	insertQuery string
	rows        [][]any
}

// createSubmission is the transactional multi-row writer shared by every
// form repository. It inserts the parent row, captures the generated
// identifier, fans out the child collections in payload order, and commits,
// or rolls back as a whole on the first failure.
//
// One connection is checked out of the pool for the duration of the
// transaction and owned exclusively by this call. The deferred rollback is
// the guaranteed-cleanup path; it is a no-op once the commit has succeeded.
//
// The operation is deliberately not idempotent: no natural key exists, so a
// client retry after a failure (or a duplicate submit) creates a second,
// independent submission. On failure the Postgres error class is logged as
// retryable/non-retryable operator guidance.
func (db *DB) createSubmission(ctx context.Context, form string, parentQuery string, parentArgs []any, children ...childBatch) (int64, error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "DB.createSubmission").
			Str("form", form).
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var id int64
	if err := tx.QueryRowContext(ctx, parentQuery, parentArgs...).Scan(&id); err != nil {
		db.logWriteFailure(log, form, "parent insert failed", err)
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for _, batch := range children {
		if len(batch.rows) == 0 {
			continue
		}

		stmt, err := tx.PrepareContext(ctx, batch.insertQuery)
		if err != nil {
			db.logWriteFailure(log, form, "failed to prepare child statement", err)
			return 0, fmt.Errorf("%w: %w", ErrPreparingStatement, err)
		}

		for idx, row := range batch.rows {
			args := make([]any, 0, len(row)+1)
			args = append(args, id)
			args = append(args, row...)

			if _, err := stmt.ExecContext(ctx, args...); err != nil {
				stmt.Close()
				db.logWriteFailure(log, form, fmt.Sprintf("child insert %d failed", idx+1), err)
				return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		stmt.Close()
	}

	if commitErr := tx.Commit(); commitErr != nil {
		db.logWriteFailure(log, form, "failed to commit transaction", commitErr)
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return id, nil
}

func (db *DB) logWriteFailure(log *logger.Logger, form, msg string, err error) {
	log.Err(err).
		Str("func", "DB.createSubmission").
		Str("form", form).
		Bool("retryable", db.errorClassificator.Classify(err) == Retryable).
		Msg(msg)
}

// nullIfEmpty trims s and converts an empty result into SQL NULL. It is
// applied to optional scalar fields only; required fields are trimmed but
// never nulled.
func nullIfEmpty(s string) sql.NullString {
	s = strings.TrimSpace(s)
	return sql.NullString{String: s, Valid: s != ""}
}

// paginate computes the page descriptor for a list response.
// TotalPages is ceil(total/limit).
func paginate(total, page, limit int) models.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// stringChildren loads a single-column child collection (a multi-select
// checkbox group) for the given parent identifier, preserving insertion
// order. It is the read-side inverse of the writer's fan-out.
func (db *DB) stringChildren(ctx context.Context, query string, parentID int64) ([]string, error) {
	rows, err := db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0, 8)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}

// countRows returns the total number of rows in table.
func (db *DB) countRows(ctx context.Context, table string) (int, error) {
	var total int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
