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
)

// dischargeSummaryRepository is the PostgreSQL-backed implementation of
// [DischargeSummaryRepository].
type dischargeSummaryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDischargeSummaryRepository constructs a [DischargeSummaryRepository]
// backed by the provided database handle and logger.
func NewDischargeSummaryRepository(db *DB, logger *logger.Logger) DischargeSummaryRepository {
	logger.Debug().Msg("creating discharge summary repository")
	return &dischargeSummaryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *dischargeSummaryRepository) Create(ctx context.Context, summary models.DischargeSummary) (int64, error) {
	parentArgs := []any{
		strings.TrimSpace(summary.ClientName),
		strings.TrimSpace(summary.AdmissionDate),
		strings.TrimSpace(summary.DischargeDate),
		strings.TrimSpace(summary.DischargeReason),
		nullIfEmpty(summary.ProgressSummary),
		nullIfEmpty(summary.AftercarePlan),
	}

	referrals := childBatch{insertQuery: createDischargeReferral, rows: make([][]any, 0, len(summary.Referrals))}
	for _, referral := range summary.Referrals {
		referrals.rows = append(referrals.rows, []any{strings.TrimSpace(referral)})
	}

	return r.db.createSubmission(ctx, "discharge-summary", createDischargeSummary, parentArgs, referrals)
}

func (r *dischargeSummaryRepository) List(ctx context.Context, page, limit int) ([]models.DischargeSummary, models.Pagination, error) {
	log := logger.FromContext(ctx)

	total, err := r.db.countRows(ctx, "discharge_summaries")
	if err != nil {
		log.Err(err).Str("func", "*dischargeSummaryRepository.List").Msg("error counting discharge summaries")
		return nil, models.Pagination{}, err
	}

	query, args, err := sq.
		Select("id", "client_name", "admission_date", "discharge_date", "discharge_reason", "progress_summary", "aftercare_plan", "created_at").
		From("discharge_summaries").
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
		log.Err(err).Str("func", "*dischargeSummaryRepository.List").Msg("error executing list query")
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	summaries := make([]models.DischargeSummary, 0, limit)
	for rows.Next() {
		var summary models.DischargeSummary
		var progress, aftercare sql.NullString

		if err := rows.Scan(
			&summary.SummaryID,
			&summary.ClientName,
			&summary.AdmissionDate,
			&summary.DischargeDate,
			&summary.DischargeReason,
			&progress,
			&aftercare,
			&summary.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*dischargeSummaryRepository.List").Msg("error: scanning error")
			return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		summary.ProgressSummary = progress.String
		summary.AftercarePlan = aftercare.String
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, paginate(total, page, limit), nil
}

func (r *dischargeSummaryRepository) GetByID(ctx context.Context, id int64) (models.DischargeSummary, error) {
	log := logger.FromContext(ctx)

	var summary models.DischargeSummary
	var progress, aftercare sql.NullString

	err := r.db.QueryRowContext(ctx, getDischargeSummary, id).Scan(
		&summary.SummaryID,
		&summary.ClientName,
		&summary.AdmissionDate,
		&summary.DischargeDate,
		&summary.DischargeReason,
		&progress,
		&aftercare,
		&summary.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DischargeSummary{}, ErrSubmissionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*dischargeSummaryRepository.GetByID").Int64("id", id).Msg("error: scanning error")
		return models.DischargeSummary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	summary.ProgressSummary = progress.String
	summary.AftercarePlan = aftercare.String

	summary.Referrals, err = r.db.stringChildren(ctx, getDischargeReferrals, id)
	if err != nil {
		log.Err(err).Str("func", "*dischargeSummaryRepository.GetByID").Int64("id", id).Msg("error loading referrals")
		return models.DischargeSummary{}, err
	}

	return summary, nil
}
