package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/models"
)

// masterDataRepository is the PostgreSQL-backed implementation of
// [MasterDataRepository]. Master data is seeded by migration and read-only
// at runtime, so this repository exposes lookups only.
type masterDataRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMasterDataRepository constructs a [MasterDataRepository] backed by the
// provided database handle and logger.
func NewMasterDataRepository(db *DB, logger *logger.Logger) MasterDataRepository {
	logger.Debug().Msg("creating master data repository")
	return &masterDataRepository{
		db:     db,
		logger: logger,
	}
}

// Options returns the active rows of one category as value/label pairs,
// ordered by display_order with label as the tiebreak. Inactive rows never
// appear in responses; they are retired in place to keep old submissions
// resolvable.
func (r *masterDataRepository) Options(ctx context.Context, category string) ([]models.MasterDataOption, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("value", "label").
		From("master_data").
		Where(sq.Eq{"category": category, "is_active": true}).
		OrderBy("display_order", "label").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*masterDataRepository.Options").Msg("error building options query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*masterDataRepository.Options").Str("category", category).Msg("error executing options query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	options := make([]models.MasterDataOption, 0, 8)
	for rows.Next() {
		var option models.MasterDataOption
		if err := rows.Scan(&option.Value, &option.Label); err != nil {
			log.Err(err).Str("func", "*masterDataRepository.Options").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		options = append(options, option)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return options, nil
}
