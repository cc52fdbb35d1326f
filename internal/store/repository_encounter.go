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

// encounterRepository is the PostgreSQL-backed implementation of
// [EncounterRepository]. The service-log child rows are structured entries
// rather than single tokens, but the write path is the same transactional
// fan-out as every other form.
type encounterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEncounterRepository constructs an [EncounterRepository] backed by the
// provided database handle and logger.
func NewEncounterRepository(db *DB, logger *logger.Logger) EncounterRepository {
	logger.Debug().Msg("creating encounter repository")
	return &encounterRepository{
		db:     db,
		logger: logger,
	}
}

func (r *encounterRepository) Create(ctx context.Context, encounter models.Encounter) (int64, error) {
	parentArgs := []any{
		strings.TrimSpace(encounter.ClientName),
		strings.TrimSpace(encounter.StaffName),
		strings.TrimSpace(encounter.EncounterDate),
		nullIfEmpty(encounter.Location),
		nullIfEmpty(encounter.Summary),
	}

	serviceLogs := childBatch{insertQuery: createEncounterServiceLog, rows: make([][]any, 0, len(encounter.ServiceLogs))}
	for _, entry := range encounter.ServiceLogs {
		serviceLogs.rows = append(serviceLogs.rows, []any{
			strings.TrimSpace(entry.EntryDate),
			strings.TrimSpace(entry.StartTime),
			strings.TrimSpace(entry.EndTime),
			entry.Units,
			nullIfEmpty(entry.StaffSignature),
			nullIfEmpty(entry.ClientSignature),
		})
	}

	return r.db.createSubmission(ctx, "encounter", createEncounter, parentArgs, serviceLogs)
}

func (r *encounterRepository) List(ctx context.Context, page, limit int) ([]models.Encounter, models.Pagination, error) {
	log := logger.FromContext(ctx)

	total, err := r.db.countRows(ctx, "encounters")
	if err != nil {
		log.Err(err).Str("func", "*encounterRepository.List").Msg("error counting encounters")
		return nil, models.Pagination{}, err
	}

	query, args, err := sq.
		Select("id", "client_name", "staff_name", "encounter_date", "location", "summary", "created_at").
		From("encounters").
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
		log.Err(err).Str("func", "*encounterRepository.List").Msg("error executing list query")
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	encounters := make([]models.Encounter, 0, limit)
	for rows.Next() {
		var encounter models.Encounter
		var location, summary sql.NullString

		if err := rows.Scan(
			&encounter.EncounterID,
			&encounter.ClientName,
			&encounter.StaffName,
			&encounter.EncounterDate,
			&location,
			&summary,
			&encounter.CreatedAt,
		); err != nil {
			log.Err(err).Str("func", "*encounterRepository.List").Msg("error: scanning error")
			return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		encounter.Location = location.String
		encounter.Summary = summary.String
		encounters = append(encounters, encounter)
	}
	if err := rows.Err(); err != nil {
		return nil, models.Pagination{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return encounters, paginate(total, page, limit), nil
}

func (r *encounterRepository) GetByID(ctx context.Context, id int64) (models.Encounter, error) {
	log := logger.FromContext(ctx)

	var encounter models.Encounter
	var location, summary sql.NullString

	err := r.db.QueryRowContext(ctx, getEncounter, id).Scan(
		&encounter.EncounterID,
		&encounter.ClientName,
		&encounter.StaffName,
		&encounter.EncounterDate,
		&location,
		&summary,
		&encounter.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Encounter{}, ErrSubmissionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*encounterRepository.GetByID").Int64("id", id).Msg("error: scanning error")
		return models.Encounter{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	encounter.Location = location.String
	encounter.Summary = summary.String

	logRows, err := r.db.QueryContext(ctx, getEncounterServiceLogs, id)
	if err != nil {
		log.Err(err).Str("func", "*encounterRepository.GetByID").Int64("id", id).Msg("error loading service logs")
		return models.Encounter{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer logRows.Close()

	encounter.ServiceLogs = make([]models.ServiceLogEntry, 0, 4)
	for logRows.Next() {
		var entry models.ServiceLogEntry
		var staffSig, clientSig sql.NullString

		if err := logRows.Scan(&entry.EntryDate, &entry.StartTime, &entry.EndTime, &entry.Units, &staffSig, &clientSig); err != nil {
			return models.Encounter{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		entry.StaffSignature = staffSig.String
		entry.ClientSignature = clientSig.String
		encounter.ServiceLogs = append(encounter.ServiceLogs, entry)
	}
	if err := logRows.Err(); err != nil {
		return models.Encounter{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return encounter, nil
}
