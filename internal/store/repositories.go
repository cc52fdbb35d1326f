package store

import "github.com/harborlight/intake-server/internal/logger"

// Repositories bundles every repository of the intake server. It is built
// once from the injected database handle and passed to the service layer.
type Repositories struct {
	Users              UserRepository
	Referrals          ReferralRepository
	Encounters         EncounterRepository
	SnapAssessments    SnapAssessmentRepository
	DischargeSummaries DischargeSummaryRepository
	WrapPlans          WrapPlanRepository
	Handbook           HandbookRepository
	MasterData         MasterDataRepository
}

// NewRepositories wires all repositories to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:              NewUserRepository(db, logger),
		Referrals:          NewReferralRepository(db, logger),
		Encounters:         NewEncounterRepository(db, logger),
		SnapAssessments:    NewSnapAssessmentRepository(db, logger),
		DischargeSummaries: NewDischargeSummaryRepository(db, logger),
		WrapPlans:          NewWrapPlanRepository(db, logger),
		Handbook:           NewHandbookRepository(db, logger),
		MasterData:         NewMasterDataRepository(db, logger),
	}
}
