package service

import (
	"context"
	"fmt"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/internal/validators"
	"github.com/harborlight/intake-server/models"
)

// referralService is the concrete implementation of [ReferralService].
//
// Submit runs the payload through the required-field validator before any
// transaction begins; a validation failure never reaches the store. The
// write itself is delegated to the repository's transactional multi-row
// writer, so a successful Submit means the parent row and every child row
// were committed together.
type referralService struct {
	repository store.ReferralRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewReferralService constructs a [ReferralService].
func NewReferralService(repository store.ReferralRepository, validator validators.Validator, logger *logger.Logger) ReferralService {
	return &referralService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

// Submit validates and persists one referral, returning the server-assigned
// identifier. Validation failures are wrapped in [ErrInvalidDataProvided]
// with the offending field name preserved in the message.
func (s *referralService) Submit(ctx context.Context, referral models.Referral) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, referral); err != nil {
		log.Error().Err(err).Str("form", "referral").Msg("submission rejected by validation")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repository.Create(ctx, referral)
}

func (s *referralService) List(ctx context.Context, page, limit int) ([]models.Referral, models.Pagination, error) {
	return s.repository.List(ctx, page, limit)
}

func (s *referralService) Get(ctx context.Context, id int64) (models.Referral, error) {
	return s.repository.GetByID(ctx, id)
}

type encounterService struct {
	repository store.EncounterRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewEncounterService constructs an [EncounterService].
func NewEncounterService(repository store.EncounterRepository, validator validators.Validator, logger *logger.Logger) EncounterService {
	return &encounterService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *encounterService) Submit(ctx context.Context, encounter models.Encounter) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, encounter); err != nil {
		log.Error().Err(err).Str("form", "encounter").Msg("submission rejected by validation")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repository.Create(ctx, encounter)
}

func (s *encounterService) List(ctx context.Context, page, limit int) ([]models.Encounter, models.Pagination, error) {
	return s.repository.List(ctx, page, limit)
}

func (s *encounterService) Get(ctx context.Context, id int64) (models.Encounter, error) {
	return s.repository.GetByID(ctx, id)
}

type snapAssessmentService struct {
	repository store.SnapAssessmentRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewSnapAssessmentService constructs a [SnapAssessmentService].
func NewSnapAssessmentService(repository store.SnapAssessmentRepository, validator validators.Validator, logger *logger.Logger) SnapAssessmentService {
	return &snapAssessmentService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *snapAssessmentService) Submit(ctx context.Context, assessment models.SnapAssessment) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, assessment); err != nil {
		log.Error().Err(err).Str("form", "snap-assessment").Msg("submission rejected by validation")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repository.Create(ctx, assessment)
}

func (s *snapAssessmentService) List(ctx context.Context, page, limit int) ([]models.SnapAssessment, models.Pagination, error) {
	return s.repository.List(ctx, page, limit)
}

func (s *snapAssessmentService) Get(ctx context.Context, id int64) (models.SnapAssessment, error) {
	return s.repository.GetByID(ctx, id)
}

type dischargeSummaryService struct {
	repository store.DischargeSummaryRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewDischargeSummaryService constructs a [DischargeSummaryService].
func NewDischargeSummaryService(repository store.DischargeSummaryRepository, validator validators.Validator, logger *logger.Logger) DischargeSummaryService {
	return &dischargeSummaryService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *dischargeSummaryService) Submit(ctx context.Context, summary models.DischargeSummary) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, summary); err != nil {
		log.Error().Err(err).Str("form", "discharge-summary").Msg("submission rejected by validation")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repository.Create(ctx, summary)
}

func (s *dischargeSummaryService) List(ctx context.Context, page, limit int) ([]models.DischargeSummary, models.Pagination, error) {
	return s.repository.List(ctx, page, limit)
}

func (s *dischargeSummaryService) Get(ctx context.Context, id int64) (models.DischargeSummary, error) {
	return s.repository.GetByID(ctx, id)
}

type wrapPlanService struct {
	repository store.WrapPlanRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewWrapPlanService constructs a [WrapPlanService].
func NewWrapPlanService(repository store.WrapPlanRepository, validator validators.Validator, logger *logger.Logger) WrapPlanService {
	return &wrapPlanService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *wrapPlanService) Submit(ctx context.Context, plan models.WrapPlan) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, plan); err != nil {
		log.Error().Err(err).Str("form", "wrap-plan").Msg("submission rejected by validation")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repository.Create(ctx, plan)
}

func (s *wrapPlanService) List(ctx context.Context, page, limit int) ([]models.WrapPlan, models.Pagination, error) {
	return s.repository.List(ctx, page, limit)
}

func (s *wrapPlanService) Get(ctx context.Context, id int64) (models.WrapPlan, error) {
	return s.repository.GetByID(ctx, id)
}

type handbookService struct {
	repository store.HandbookRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewHandbookService constructs a [HandbookService].
func NewHandbookService(repository store.HandbookRepository, validator validators.Validator, logger *logger.Logger) HandbookService {
	return &handbookService{
		repository: repository,
		validator:  validator,
		logger:     logger,
	}
}

func (s *handbookService) Submit(ctx context.Context, ack models.HandbookAcknowledgement) (int64, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, ack); err != nil {
		log.Error().Err(err).Str("form", "handbook-acknowledgement").Msg("submission rejected by validation")
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repository.Create(ctx, ack)
}

func (s *handbookService) List(ctx context.Context, page, limit int) ([]models.HandbookAcknowledgement, models.Pagination, error) {
	return s.repository.List(ctx, page, limit)
}

func (s *handbookService) Get(ctx context.Context, id int64) (models.HandbookAcknowledgement, error) {
	return s.repository.GetByID(ctx, id)
}
