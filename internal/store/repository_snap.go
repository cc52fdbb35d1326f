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

// snapAssessmentRepository is the PostgreSQL-backed implementation of
// [SnapAssessmentRepository].
type snapAssessmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSnapAssessmentRepository constructs a [SnapAssessmentRepository] backed
// by the provided database handle and logger.
func NewSnapAssessmentRepository(db *DB, logger *logger.Logger) SnapAssessmentRepository {
	logger.Debug().Msg("creating snap assessment repository")
	return &snapAssessmentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *snapAssessmentRepository) Create(ctx context.Context, assessment models.SnapAssessment) (int64, error) {
	parentArgs := []any{
		strings.TrimSpace(assessment.ClientName),
		strings.TrimSpace(assessment.AssessmentDate),
		strings.TrimSpace(assessment.AssessorName),
		nullIfEmpty(assessment.Strengths),
		nullIfEmpty(assessment.Needs),
		nullIfEmpty(assessment.Abilities),
		nullIfEmpty(assessment.Preferences),
	}

	areas := childBatch{insertQuery: createSnapSupportArea, rows: make([][]any, 0, len(assessment.SupportAreas))}
	for _, area := range assessment.SupportAreas {
		areas.rows = append(areas.rows, []any{strings.TrimSpace(area)})
	}

	return r.db.createSubmission(ctx, "snap-assessment", createSnapAssessment, parentArgs, areas)
}

func (r *snapAssessmentRepository) List(ctx context.Context, page, limit int) ([]models.SnapAssessment, models.Pagination, error) {
	log := logger.FromContext(ctx)

	total, err := r.db.countRows(ctx, "snap_assessments")
	if err != nil {
		log.Err(err).Str("func", "*snapAssessmentRepository.List").Msg("error counting snap assessments")
		return nil, models.Pagination{}, err
	}

	query, args, err := sq.
		Select("id", "client_name", "assessment_date", "assessor_name", "strengths", "needs", "abilities", "preferences", "created_at").
		From("snap_assessments").
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
		log.Err(err).Str("func", "*snapAssessmentRepository.List").Msg("error executing list query")
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assessments := make([]models.SnapAssessment, 0, limit)
	for rows.Next() {
		var assessment models.SnapAssessment
		var strengths, needs, abilities, preferences sql.NullString

		if err := rows.Scan(
			&assessment.AssessmentID,
			&assessment.ClientName,
			&assessment.AssessmentDate,
			&assessment.AssessorName,
			&strengths,
			&needs,
			&abilities,
			&preferences,
			&assessment.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*snapAssessmentRepository.List").Msg("error: scanning error")
			return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		assessment.Strengths = strengths.String
		assessment.Needs = needs.String
		assessment.Abilities = abilities.String
		assessment.Preferences = preferences.String
		assessments = append(assessments, assessment)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assessments, paginate(total, page, limit), nil
}

func (r *snapAssessmentRepository) GetByID(ctx context.Context, id int64) (models.SnapAssessment, error) {
	log := logger.FromContext(ctx)

	var assessment models.SnapAssessment
	var strengths, needs, abilities, preferences sql.NullString

	err := r.db.QueryRowContext(ctx, getSnapAssessment, id).Scan(
		&assessment.AssessmentID,
		&assessment.ClientName,
		&assessment.AssessmentDate,
		&assessment.AssessorName,
		&strengths,
		&needs,
		&abilities,
		&preferences,
		&assessment.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SnapAssessment{}, ErrSubmissionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*snapAssessmentRepository.GetByID").Int64("id", id).Msg("error: scanning error")
		return models.SnapAssessment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	assessment.Strengths = strengths.String
	assessment.Needs = needs.String
	assessment.Abilities = abilities.String
	assessment.Preferences = preferences.String

	assessment.SupportAreas, err = r.db.stringChildren(ctx, getSnapSupportAreas, id)
	if err != nil {
		log.Err(err).Str("func", "*snapAssessmentRepository.GetByID").Int64("id", id).Msg("error loading support areas")
		return models.SnapAssessment{}, err
	}

	return assessment, nil
}
