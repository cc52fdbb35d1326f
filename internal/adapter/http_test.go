package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/harborlight/intake-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) IntakeGateway {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	gw, err := NewHTTPIntakeGateway(ts.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return gw
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host", raw: "localhost:3001", want: "http://localhost:3001"},
		{name: "full url", raw: "https://intake.example.org/", want: "https://intake.example.org"},
		{name: "surrounding spaces", raw: "  http://10.0.0.5:3001  ", want: "http://10.0.0.5:3001"},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateway_Submit_Success(t *testing.T) {
	payload := json.RawMessage(`{"name":"Alex Morgan","referralDate":"2026-03-02"}`)

	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/referrals", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, string(payload), string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"message":"Referral submitted successfully","data":{"referralId":42}}`))
	})

	id, err := gw.Submit(context.Background(), "referrals", payload)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestGateway_Submit_ValidationRejection(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":"missing required field: birthDate"}`))
	})

	_, err := gw.Submit(context.Background(), "referrals", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "birthDate")
}

func TestGateway_Submit_UnknownForm(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an unknown form")
	})

	_, err := gw.Submit(context.Background(), "progress-notes", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownForm)
}

func TestGateway_List_Success(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/wrap-plans", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"id":1}],"pagination":{"page":2,"limit":25,"total":26,"totalPages":2}}`))
	})

	items, pagination, err := gw.List(context.Background(), "wrap-plans", 2, 25)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1}]`, string(items))
	assert.Equal(t, 26, pagination.Total)
}

func TestGateway_Get_NotFound(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/encounters/999", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"submission not found"}`))
	})

	_, err := gw.Get(context.Background(), "encounters", 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGateway_Options_Success(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/referrals/master-data/services", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":[{"value":"Peer Support","label":"Peer Support"}]}`))
	})

	options, err := gw.Options(context.Background(), "referrals", "services")
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Peer Support", options[0].Value)
}

func TestGateway_Health_Degraded(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"success":false,"status":"degraded","database":"disconnected"}`))
	})

	err := gw.Health(context.Background())
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestGateway_Health_OK(t *testing.T) {
	gw := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"status":"ok","database":"connected"}`))
	})

	require.NoError(t, gw.Health(context.Background()))
}

func TestGateway_InvalidAddress(t *testing.T) {
	_, err := NewHTTPIntakeGateway("   ", time.Second, logger.Nop())
	assert.Error(t, err)
}
