package store

import (
	"context"

	"github.com/harborlight/intake-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation is worth a
// client-side retry. Implementations must treat nil as NonRetryable.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ReferralRepository persists and reads referral form submissions.
type ReferralRepository interface {
	// Create atomically inserts the parent referral row and one child row
	// per selected service, returning the generated referral identifier.
	Create(ctx context.Context, referral models.Referral) (int64, error)

	// List returns one page of referrals ordered newest-first, without
	// child collections.
	List(ctx context.Context, page, limit int) ([]models.Referral, models.Pagination, error)

	// GetByID returns a single referral with its services reassembled in
	// original submission order, or [ErrSubmissionNotFound].
	GetByID(ctx context.Context, id int64) (models.Referral, error)
}

// EncounterRepository persists and reads encounter form submissions.
type EncounterRepository interface {
	Create(ctx context.Context, encounter models.Encounter) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.Encounter, models.Pagination, error)
	GetByID(ctx context.Context, id int64) (models.Encounter, error)
}

// SnapAssessmentRepository persists and reads SNAP assessment submissions.
type SnapAssessmentRepository interface {
	Create(ctx context.Context, assessment models.SnapAssessment) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.SnapAssessment, models.Pagination, error)
	GetByID(ctx context.Context, id int64) (models.SnapAssessment, error)
}

// DischargeSummaryRepository persists and reads discharge summary submissions.
type DischargeSummaryRepository interface {
	Create(ctx context.Context, summary models.DischargeSummary) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.DischargeSummary, models.Pagination, error)
	GetByID(ctx context.Context, id int64) (models.DischargeSummary, error)
}

// WrapPlanRepository persists and reads WRAP plan submissions.
type WrapPlanRepository interface {
	Create(ctx context.Context, plan models.WrapPlan) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.WrapPlan, models.Pagination, error)
	GetByID(ctx context.Context, id int64) (models.WrapPlan, error)
}

// HandbookRepository persists and reads handbook acknowledgement submissions.
type HandbookRepository interface {
	Create(ctx context.Context, ack models.HandbookAcknowledgement) (int64, error)
	List(ctx context.Context, page, limit int) ([]models.HandbookAcknowledgement, models.Pagination, error)
	GetByID(ctx context.Context, id int64) (models.HandbookAcknowledgement, error)
}

// MasterDataRepository reads the seeded reference option lists.
type MasterDataRepository interface {
	// Options returns the active options of one category ordered by
	// display_order, ties broken by label.
	Options(ctx context.Context, category string) ([]models.MasterDataOption, error)
}

// UserRepository manages staff accounts and their permission rows.
type UserRepository interface {
	// CreateUser inserts the account and its one-to-one permission row in a
	// single transaction.
	CreateUser(ctx context.Context, user models.User, perms models.Permissions) (models.User, error)

	// FindByUsername returns the account matching username, or
	// [ErrNoUserWasFound].
	FindByUsername(ctx context.Context, username string) (models.User, error)

	// FindByID returns the account matching id, or [ErrNoUserWasFound].
	FindByID(ctx context.Context, id int64) (models.User, error)

	// Permissions returns the permission row of the given user. A missing
	// row yields the zero value (no capabilities), not an error.
	Permissions(ctx context.Context, userID int64) (models.Permissions, error)

	// ListUsers returns one page of accounts ordered newest-first.
	ListUsers(ctx context.Context, page, limit int) ([]models.User, models.Pagination, error)

	// UpdateUser applies a partial update to the account and, when present,
	// its permission row, in a single transaction.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) error
}
