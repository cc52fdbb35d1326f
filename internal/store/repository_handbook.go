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

// handbookRepository is the PostgreSQL-backed implementation of
// [HandbookRepository].
type handbookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHandbookRepository constructs a [HandbookRepository] backed by the
// provided database handle and logger.
func NewHandbookRepository(db *DB, logger *logger.Logger) HandbookRepository {
	logger.Debug().Msg("creating handbook repository")
	return &handbookRepository{
		db:     db,
		logger: logger,
	}
}

func (r *handbookRepository) Create(ctx context.Context, ack models.HandbookAcknowledgement) (int64, error) {
	parentArgs := []any{
		strings.TrimSpace(ack.ClientName),
		strings.TrimSpace(ack.AcknowledgementDate),
		// signatures are opaque; a freehand data-URI must not be trimmed
		// into unreadability, so only surrounding whitespace goes
		strings.TrimSpace(ack.ClientSignature),
		nullIfEmpty(ack.StaffSignature),
	}

	sections := childBatch{insertQuery: createHandbookSection, rows: make([][]any, 0, len(ack.Sections))}
	for _, section := range ack.Sections {
		sections.rows = append(sections.rows, []any{strings.TrimSpace(section)})
	}

	return r.db.createSubmission(ctx, "handbook-acknowledgement", createHandbookAcknowledgement, parentArgs, sections)
}

func (r *handbookRepository) List(ctx context.Context, page, limit int) ([]models.HandbookAcknowledgement, models.Pagination, error) {
	log := logger.FromContext(ctx)

	total, err := r.db.countRows(ctx, "handbook_acknowledgements")
	if err != nil {
		log.Err(err).Str("func", "*handbookRepository.List").Msg("error counting acknowledgements")
		return nil, models.Pagination{}, err
	}

	query, args, err := sq.
		Select("id", "client_name", "acknowledgement_date", "client_signature", "staff_signature", "created_at").
		From("handbook_acknowledgements").
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
		log.Err(err).Str("func", "*handbookRepository.List").Msg("error executing list query")
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	acks := make([]models.HandbookAcknowledgement, 0, limit)
	for rows.Next() {
		var ack models.HandbookAcknowledgement
		var staffSig sql.NullString

		if err := rows.Scan(
			&ack.AcknowledgementID,
			&ack.ClientName,
			&ack.AcknowledgementDate,
			&ack.ClientSignature,
			&staffSig,
			&ack.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*handbookRepository.List").Msg("error: scanning error")
			return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		ack.StaffSignature = staffSig.String
		acks = append(acks, ack)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return acks, paginate(total, page, limit), nil
}

func (r *handbookRepository) GetByID(ctx context.Context, id int64) (models.HandbookAcknowledgement, error) {
	log := logger.FromContext(ctx)

	var ack models.HandbookAcknowledgement
	var staffSig sql.NullString

	err := r.db.QueryRowContext(ctx, getHandbookAcknowledgement, id).Scan(
		&ack.AcknowledgementID,
		&ack.ClientName,
		&ack.AcknowledgementDate,
		&ack.ClientSignature,
		&staffSig,
		&ack.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HandbookAcknowledgement{}, ErrSubmissionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*handbookRepository.GetByID").Int64("id", id).Msg("error: scanning error")
		return models.HandbookAcknowledgement{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	ack.StaffSignature = staffSig.String

	ack.Sections, err = r.db.stringChildren(ctx, getHandbookSections, id)
	if err != nil {
		log.Err(err).Str("func", "*handbookRepository.GetByID").Int64("id", id).Msg("error loading sections")
		return models.HandbookAcknowledgement{}, err
	}

	return ack, nil
}
