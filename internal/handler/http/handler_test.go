package http

import (
	"context"
	"testing"

	"github.com/harborlight/intake-server/internal/config"
	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/service"
	"github.com/harborlight/intake-server/models"
)

// ---------------------------------------------------------------------------
// Shared test doubles
// ---------------------------------------------------------------------------

// stubPinger implements DatabasePinger with a fixed outcome.
type stubPinger struct {
	err error
}

func (s *stubPinger) PingContext(_ context.Context) error {
	return s.err
}

// mockReferralService implements service.ReferralService for unit tests.
// Each method field can be overridden per test case.
type mockReferralService struct {
	submitFn func(ctx context.Context, referral models.Referral) (int64, error)
	listFn   func(ctx context.Context, page, limit int) ([]models.Referral, models.Pagination, error)
	getFn    func(ctx context.Context, id int64) (models.Referral, error)
}

func (m *mockReferralService) Submit(ctx context.Context, referral models.Referral) (int64, error) {
	return m.submitFn(ctx, referral)
}

func (m *mockReferralService) List(ctx context.Context, page, limit int) ([]models.Referral, models.Pagination, error) {
	return m.listFn(ctx, page, limit)
}

func (m *mockReferralService) Get(ctx context.Context, id int64) (models.Referral, error) {
	return m.getFn(ctx, id)
}

// mockMasterDataService implements service.MasterDataService.
type mockMasterDataService struct {
	optionsFn func(ctx context.Context, form, field string) ([]models.MasterDataOption, error)
}

func (m *mockMasterDataService) Options(ctx context.Context, form, field string) ([]models.MasterDataOption, error) {
	return m.optionsFn(ctx, form, field)
}

// mockAuthService implements service.AuthService.
type mockAuthService struct {
	loginFn       func(ctx context.Context, username, password string) (models.User, models.Permissions, error)
	identityFn    func(ctx context.Context, userID int64) (models.User, models.Permissions, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, models.Permissions, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) Identity(ctx context.Context, userID int64) (models.User, models.Permissions, error) {
	return m.identityFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) EnsureAdmin(_ context.Context) error {
	return nil
}

// mockUserService implements service.UserService.
type mockUserService struct {
	createFn func(ctx context.Context, user models.User, password string, perms models.Permissions) (models.User, error)
	listFn   func(ctx context.Context, page, limit int) ([]models.User, models.Pagination, error)
	updateFn func(ctx context.Context, id int64, update models.UserUpdate) error
}

func (m *mockUserService) Create(ctx context.Context, user models.User, password string, perms models.Permissions) (models.User, error) {
	return m.createFn(ctx, user, password, perms)
}

func (m *mockUserService) List(ctx context.Context, page, limit int) ([]models.User, models.Pagination, error) {
	return m.listFn(ctx, page, limit)
}

func (m *mockUserService) Update(ctx context.Context, id int64, update models.UserUpdate) error {
	return m.updateFn(ctx, id, update)
}

// newTestHandler builds a Handler around the given services with a healthy
// database stub and development mode off.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	cfg := &config.StructuredConfig{}
	return NewHandler(svcs, &stubPinger{}, cfg, logger.Nop())
}
