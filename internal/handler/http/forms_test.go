package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harborlight/intake-server/internal/config"
	"github.com/harborlight/intake-server/internal/logger"
	"github.com/harborlight/intake-server/internal/service"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/internal/validators"
	"github.com/harborlight/intake-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referralBody(t *testing.T, r models.Referral) string {
	t.Helper()
	b, err := json.Marshal(r)
	require.NoError(t, err)
	return string(b)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// ---------------------------------------------------------------------------
// Submit
// ---------------------------------------------------------------------------

func TestSubmitReferral_Success(t *testing.T) {
	referrals := &mockReferralService{
		submitFn: func(_ context.Context, r models.Referral) (int64, error) {
			assert.Equal(t, "Alex Morgan", r.Name)
			return 42, nil
		},
	}
	h := newTestHandler(t, &service.Services{Referrals: referrals})
	router := h.Init()

	body := referralBody(t, models.Referral{Name: "Alex Morgan", ReferralDate: "2026-03-02"})
	req := httptest.NewRequest(http.MethodPost, "/api/referrals", strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Referral submitted successfully", resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), data["referralId"])
}

func TestSubmitReferral_ValidationError(t *testing.T) {
	validationErr := fmt.Errorf("%w: %w: %s",
		service.ErrInvalidDataProvided, validators.ErrMissingRequiredField, "birthDate")
	referrals := &mockReferralService{
		submitFn: func(_ context.Context, _ models.Referral) (int64, error) {
			return 0, validationErr
		},
	}
	h := newTestHandler(t, &service.Services{Referrals: referrals})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/referrals", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "birthDate")
}

func TestSubmitReferral_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{Referrals: &mockReferralService{}})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/referrals", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitReferral_StoreFailure_HidesDetail(t *testing.T) {
	referrals := &mockReferralService{
		submitFn: func(_ context.Context, _ models.Referral) (int64, error) {
			return 0, fmt.Errorf("%w: %w", store.ErrExecutingStatement, errors.New("duplicate key value"))
		},
	}
	h := newTestHandler(t, &service.Services{Referrals: referrals})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/referrals", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	// dev mode is off: internal detail must not leak
	assert.NotContains(t, resp.Error, "duplicate key")
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestListReferrals_DefaultPagination(t *testing.T) {
	referrals := &mockReferralService{
		listFn: func(_ context.Context, page, limit int) ([]models.Referral, models.Pagination, error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 10, limit)
			return []models.Referral{}, models.Pagination{Page: 1, Limit: 10}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Referrals: referrals})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/referrals?page=abc&limit=-5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListReferrals_LimitCapped(t *testing.T) {
	referrals := &mockReferralService{
		listFn: func(_ context.Context, page, limit int) ([]models.Referral, models.Pagination, error) {
			assert.Equal(t, 3, page)
			assert.Equal(t, maxLimit, limit)
			return []models.Referral{}, models.Pagination{Page: 3, Limit: maxLimit}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Referrals: referrals})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/referrals?page=3&limit=5000", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListReferrals_Envelope(t *testing.T) {
	referrals := &mockReferralService{
		listFn: func(_ context.Context, _, _ int) ([]models.Referral, models.Pagination, error) {
			return []models.Referral{{ReferralID: 1, Name: "Alex Morgan"}},
				models.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Referrals: referrals})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/referrals", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.ListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Pagination.Total)
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestGetReferral_Success(t *testing.T) {
	referrals := &mockReferralService{
		getFn: func(_ context.Context, id int64) (models.Referral, error) {
			assert.Equal(t, int64(7), id)
			return models.Referral{ReferralID: 7, Name: "Alex Morgan"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{Referrals: referrals})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/referrals/7", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestGetReferral_InvalidID(t *testing.T) {
	h := newTestHandler(t, &service.Services{Referrals: &mockReferralService{}})
	router := h.Init()

	for _, raw := range []string{"abc", "0", "-3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/referrals/"+raw, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", raw)
	}
}

func TestGetReferral_NotFound(t *testing.T) {
	referrals := &mockReferralService{
		getFn: func(_ context.Context, _ int64) (models.Referral, error) {
			return models.Referral{}, store.ErrSubmissionNotFound
		},
	}
	h := newTestHandler(t, &service.Services{Referrals: referrals})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/referrals/999", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---------------------------------------------------------------------------
// Master data
// ---------------------------------------------------------------------------

func TestMasterData_Success(t *testing.T) {
	masterData := &mockMasterDataService{
		optionsFn: func(_ context.Context, form, field string) ([]models.MasterDataOption, error) {
			assert.Equal(t, "referrals", form)
			assert.Equal(t, "services", field)
			return []models.MasterDataOption{{Value: "Peer Support", Label: "Peer Support"}}, nil
		},
	}
	h := newTestHandler(t, &service.Services{MasterData: masterData})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/referrals/master-data/services", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestMasterData_UnknownField(t *testing.T) {
	masterData := &mockMasterDataService{
		optionsFn: func(_ context.Context, form, field string) ([]models.MasterDataOption, error) {
			return nil, fmt.Errorf("%w: %s/%s", service.ErrUnknownMasterDataField, form, field)
		},
	}
	h := newTestHandler(t, &service.Services{MasterData: masterData})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/referrals/master-data/favoriteColor", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---------------------------------------------------------------------------
// Health
// ---------------------------------------------------------------------------

func TestHealth_OK(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var status models.HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.True(t, status.Success)
	assert.Equal(t, "connected", status.Database)
}

func TestHealth_DatabaseDown(t *testing.T) {
	h := NewHandler(&service.Services{}, &stubPinger{err: errors.New("refused")}, &config.StructuredConfig{}, logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var status models.HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.False(t, status.Success)
	assert.Equal(t, "disconnected", status.Database)
}
