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

// referralRepository is the PostgreSQL-backed implementation of
// [ReferralRepository]. Writes go through the shared transactional
// multi-row writer; reads reassemble the services child collection in
// payload order.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type referralRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewReferralRepository constructs a [ReferralRepository] backed by the
// provided database handle and logger.
func NewReferralRepository(db *DB, logger *logger.Logger) ReferralRepository {
	logger.Debug().Msg("creating referral repository")
	return &referralRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists one referral submission: the parent row plus one
// referral_services child row per selected service, all-or-nothing.
//
// Scalar normalization happens here, at the edge of the store: required
// fields are trimmed, optional fields are trimmed and converted to NULL when
// empty. Child rows are inserted in payload order with no deduplication.
func (r *referralRepository) Create(ctx context.Context, referral models.Referral) (int64, error) {
	parentArgs := []any{
		strings.TrimSpace(referral.ReferralDate),
		strings.TrimSpace(referral.Name),
		strings.TrimSpace(referral.BirthDate),
		strings.TrimSpace(referral.Gender),
		strings.TrimSpace(referral.Race),
		strings.TrimSpace(referral.ReferredByName),
		nullIfEmpty(referral.Phone),
		nullIfEmpty(referral.Address),
		nullIfEmpty(referral.Insurance),
		nullIfEmpty(referral.Notes),
	}

	services := childBatch{insertQuery: createReferralService, rows: make([][]any, 0, len(referral.Services))}
	for _, service := range referral.Services {
		services.rows = append(services.rows, []any{strings.TrimSpace(service)})
	}

	return r.db.createSubmission(ctx, "referral", createReferral, parentArgs, services)
}

// List returns one page of referrals ordered newest-first. Child collections
// are not loaded for list views; [GetByID] assembles the full submission.
func (r *referralRepository) List(ctx context.Context, page, limit int) ([]models.Referral, models.Pagination, error) {
	log := logger.FromContext(ctx)

	total, err := r.db.countRows(ctx, "referrals")
	if err != nil {
		log.Err(err).Str("func", "*referralRepository.List").Msg("error counting referrals")
		return nil, models.Pagination{}, err
	}

	query, args, err := sq.
		Select("id", "referral_date", "name", "birth_date", "gender", "race", "referred_by_name", "phone", "address", "insurance", "notes", "created_at").
		From("referrals").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*referralRepository.List").Msg("error building list query")
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*referralRepository.List").Msg("error executing list query")
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	referrals := make([]models.Referral, 0, limit)
	for rows.Next() {
		var referral models.Referral
		var phone, address, insurance, notes sql.NullString

		if err := rows.Scan(
			&referral.ReferralID,
			&referral.ReferralDate,
			&referral.Name,
			&referral.BirthDate,
			&referral.Gender,
			&referral.Race,
			&referral.ReferredByName,
			&phone,
			&address,
			&insurance,
			&notes,
			&referral.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*referralRepository.List").Msg("error: scanning error")
			return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		referral.Phone = phone.String
		referral.Address = address.String
		referral.Insurance = insurance.String
		referral.Notes = notes.String
		referrals = append(referrals, referral)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return referrals, paginate(total, page, limit), nil
}

// GetByID returns the referral with the given identifier plus its services
// in original submission order, or [ErrSubmissionNotFound].
func (r *referralRepository) GetByID(ctx context.Context, id int64) (models.Referral, error) {
	log := logger.FromContext(ctx)

	var referral models.Referral
	var phone, address, insurance, notes sql.NullString

	err := r.db.QueryRowContext(ctx, getReferral, id).Scan(
		&referral.ReferralID,
		&referral.ReferralDate,
		&referral.Name,
		&referral.BirthDate,
		&referral.Gender,
		&referral.Race,
		&referral.ReferredByName,
		&phone,
		&address,
		&insurance,
		&notes,
		&referral.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Referral{}, ErrSubmissionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*referralRepository.GetByID").Int64("id", id).Msg("error: scanning error")
		return models.Referral{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	referral.Phone = phone.String
	referral.Address = address.String
	referral.Insurance = insurance.String
	referral.Notes = notes.String

	referral.Services, err = r.db.stringChildren(ctx, getReferralServices, id)
	if err != nil {
		log.Err(err).Str("func", "*referralRepository.GetByID").Int64("id", id).Msg("error loading services")
		return models.Referral{}, err
	}

	return referral, nil
}
