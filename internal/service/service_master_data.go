package service

import (
	"context"
	"fmt"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/models"
)

// masterDataCategories maps each form's selectable payload field to its
// master data category. A form/field pair absent from this table is not a
// lookup the API offers; requests for it yield [ErrUnknownMasterDataField].
var masterDataCategories = map[string]map[string]string{
	"referrals": {
		"services": "referral-services",
		"gender":   "genders",
		"race":     "races",
	},
	"snap-assessments": {
		"supportAreas": "snap-support-areas",
	},
	"discharge-summaries": {
		"referrals": "discharge-referrals",
	},
	"wrap-plans": {
		"wellnessTools": "wellness-tools",
	},
	"handbook-acknowledgements": {
		"sections": "handbook-sections",
	},
}

// masterDataService is the concrete implementation of [MasterDataService].
type masterDataService struct {
	repository store.MasterDataRepository
	logger     *logger.Logger
}

// NewMasterDataService constructs a [MasterDataService].
func NewMasterDataService(repository store.MasterDataRepository, logger *logger.Logger) MasterDataService {
	return &masterDataService{
		repository: repository,
		logger:     logger,
	}
}

// Options resolves form and field to a master data category and returns its
// active options. The option order is fixed by the category's display order.
func (s *masterDataService) Options(ctx context.Context, form, field string) ([]models.MasterDataOption, error) {
	category, ok := masterDataCategories[form][field]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownMasterDataField, form, field)
	}

	return s.repository.Options(ctx, category)
}
