package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/harborlight/intake-server/internal/service"
	"github.com/harborlight/intake-server/internal/store"
	"github.com/harborlight/intake-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminAuth returns an AuthService mock whose tokens resolve to an account
// holding (or not holding) the user-management flag.
func adminAuth(canManageUsers bool) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return stubSignedToken("admin-token", 1), nil
		},
		identityFn: func(_ context.Context, userID int64) (models.User, models.Permissions, error) {
			return models.User{UserID: userID, Username: "admin", IsActive: true},
				models.Permissions{CanManageUsers: canManageUsers}, nil
		},
	}
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin-token")
	return req
}

func TestListUsers_RequiresPermission(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: adminAuth(false),
		UserService: &mockUserService{},
	})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/auth/users", ""))

	require.Equal(t, http.StatusForbidden, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, ErrInsufficientPermissions.Error(), resp.Error)
}

func TestListUsers_Success(t *testing.T) {
	users := &mockUserService{
		listFn: func(_ context.Context, page, limit int) ([]models.User, models.Pagination, error) {
			assert.Equal(t, 1, page)
			assert.Equal(t, 10, limit)
			return []models.User{{UserID: 1, Username: "admin"}},
				models.Pagination{Page: 1, Limit: 10, Total: 1, TotalPages: 1}, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: adminAuth(true),
		UserService: users,
	})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/auth/users", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListUsers_NoToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: adminAuth(true),
		UserService: &mockUserService{},
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateUser_Success(t *testing.T) {
	users := &mockUserService{
		createFn: func(_ context.Context, user models.User, password string, perms models.Permissions) (models.User, error) {
			assert.Equal(t, "riley", user.Username)
			assert.Equal(t, "Riley Chen", user.FullName)
			assert.Equal(t, "hunter2", password)
			assert.True(t, perms.CanViewSubmissions)
			user.UserID = 8
			return user, nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: adminAuth(true),
		UserService: users,
	})
	router := h.Init()

	body := `{"username":"riley","password":"hunter2","fullName":"Riley Chen","role":"staff",` +
		`"permissions":{"canViewSubmissions":true}}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/auth/users", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "User created successfully", resp.Message)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	users := &mockUserService{
		createFn: func(_ context.Context, _ models.User, _ string, _ models.Permissions) (models.User, error) {
			return models.User{}, store.ErrUsernameAlreadyExists
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: adminAuth(true),
		UserService: users,
	})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/auth/users",
		`{"username":"riley","password":"hunter2"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateUser_Success(t *testing.T) {
	users := &mockUserService{
		updateFn: func(_ context.Context, id int64, update models.UserUpdate) error {
			assert.Equal(t, int64(8), id)
			require.NotNil(t, update.IsActive)
			assert.False(t, *update.IsActive)
			return nil
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: adminAuth(true),
		UserService: users,
	})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/auth/users/8", `{"isActive":false}`))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestUpdateUser_InvalidID(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: adminAuth(true),
		UserService: &mockUserService{},
	})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/auth/users/zero", `{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUser_NothingToUpdate(t *testing.T) {
	users := &mockUserService{
		updateFn: func(_ context.Context, _ int64, _ models.UserUpdate) error {
			return store.ErrNothingToUpdate
		},
	}
	h := newTestHandler(t, &service.Services{
		AuthService: adminAuth(true),
		UserService: users,
	})
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/auth/users/8", `{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
