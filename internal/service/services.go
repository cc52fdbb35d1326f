package service

import (
	"github.com/harborlight/intake-server/internal/config"
	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/internal/validators"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	Referrals          ReferralService
	Encounters         EncounterService
	SnapAssessments    SnapAssessmentService
	DischargeSummaries DischargeSummaryService
	WrapPlans          WrapPlanService
	Handbook           HandbookService
	MasterData         MasterDataService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewFormValidator()

	return &Services{
		AuthService:        NewAuthService(repos.Users, cfg.Auth, logger),
		UserService:        NewUserService(repos.Users, logger),
		Referrals:          NewReferralService(repos.Referrals, validator, logger),
		Encounters:         NewEncounterService(repos.Encounters, validator, logger),
		SnapAssessments:    NewSnapAssessmentService(repos.SnapAssessments, validator, logger),
		DischargeSummaries: NewDischargeSummaryService(repos.DischargeSummaries, validator, logger),
		WrapPlans:          NewWrapPlanService(repos.WrapPlans, validator, logger),
		Handbook:           NewHandbookService(repos.Handbook, validator, logger),
		MasterData:         NewMasterDataService(repos.MasterData, logger),
	}
}
