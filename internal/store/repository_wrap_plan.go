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

// wrapPlanRepository is the PostgreSQL-backed implementation of
// [WrapPlanRepository]. WRAP plans carry two child collections - wellness
// tools and supporters - both written in the same transaction as the parent.
type wrapPlanRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWrapPlanRepository constructs a [WrapPlanRepository] backed by the
// provided database handle and logger.
func NewWrapPlanRepository(db *DB, logger *logger.Logger) WrapPlanRepository {
	logger.Debug().Msg("creating wrap plan repository")
	return &wrapPlanRepository{
		db:     db,
		logger: logger,
	}
}

func (r *wrapPlanRepository) Create(ctx context.Context, plan models.WrapPlan) (int64, error) {
	parentArgs := []any{
		strings.TrimSpace(plan.ClientName),
		strings.TrimSpace(plan.PlanDate),
		nullIfEmpty(plan.DailyPlan),
		nullIfEmpty(plan.CrisisPlan),
	}

	tools := childBatch{insertQuery: createWrapWellnessTool, rows: make([][]any, 0, len(plan.WellnessTools))}
	for _, tool := range plan.WellnessTools {
		tools.rows = append(tools.rows, []any{strings.TrimSpace(tool)})
	}

	supporters := childBatch{insertQuery: createWrapSupporter, rows: make([][]any, 0, len(plan.Supporters))}
	for _, supporter := range plan.Supporters {
		supporters.rows = append(supporters.rows, []any{
			strings.TrimSpace(supporter.Name),
			nullIfEmpty(supporter.Phone),
			nullIfEmpty(supporter.Role),
		})
	}

	return r.db.createSubmission(ctx, "wrap-plan", createWrapPlan, parentArgs, tools, supporters)
}

func (r *wrapPlanRepository) List(ctx context.Context, page, limit int) ([]models.WrapPlan, models.Pagination, error) {
	log := logger.FromContext(ctx)

	total, err := r.db.countRows(ctx, "wrap_plans")
	if err != nil {
		log.Err(err).Str("func", "*wrapPlanRepository.List").Msg("error counting wrap plans")
		return nil, models.Pagination{}, err
	}

	query, args, err := sq.
		Select("id", "client_name", "plan_date", "daily_plan", "crisis_plan", "created_at").
		From("wrap_plans").
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
		log.Err(err).Str("func", "*wrapPlanRepository.List").Msg("error executing list query")
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	plans := make([]models.WrapPlan, 0, limit)
	for rows.Next() {
		var plan models.WrapPlan
		var daily, crisis sql.NullString

		if err := rows.Scan(
			&plan.PlanID,
			&plan.ClientName,
			&plan.PlanDate,
			&daily,
			&crisis,
			&plan.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*wrapPlanRepository.List").Msg("error: scanning error")
			return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		plan.DailyPlan = daily.String
		plan.CrisisPlan = crisis.String
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return plans, paginate(total, page, limit), nil
}

func (r *wrapPlanRepository) GetByID(ctx context.Context, id int64) (models.WrapPlan, error) {
	log := logger.FromContext(ctx)

	var plan models.WrapPlan
	var daily, crisis sql.NullString

	err := r.db.QueryRowContext(ctx, getWrapPlan, id).Scan(
		&plan.PlanID,
		&plan.ClientName,
		&plan.PlanDate,
		&daily,
		&crisis,
		&plan.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WrapPlan{}, ErrSubmissionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*wrapPlanRepository.GetByID").Int64("id", id).Msg("error: scanning error")
		return models.WrapPlan{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	plan.DailyPlan = daily.String
	plan.CrisisPlan = crisis.String

	plan.WellnessTools, err = r.db.stringChildren(ctx, getWrapWellnessTools, id)
	if err != nil {
		log.Err(err).Str("func", "*wrapPlanRepository.GetByID").Int64("id", id).Msg("error loading wellness tools")
		return models.WrapPlan{}, err
	}

	supporterRows, err := r.db.QueryContext(ctx, getWrapSupporters, id)
	if err != nil {
		log.Err(err).Str("func", "*wrapPlanRepository.GetByID").Int64("id", id).Msg("error loading supporters")
		return models.WrapPlan{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer supporterRows.Close()

	plan.Supporters = make([]models.Supporter, 0, 4)
	for supporterRows.Next() {
		var supporter models.Supporter
		var phone, role sql.NullString

		if err := supporterRows.Scan(&supporter.Name, &phone, &role); err != nil {
			return models.WrapPlan{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		supporter.Phone = phone.String
		supporter.Role = role.String
		plan.Supporters = append(plan.Supporters, supporter)
	}
	if err := supporterRows.Err(); err != nil {
		return models.WrapPlan{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return plan, nil
}
