package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/resume-screener/internal/server/middleware"
	"github.com/jonathan/resume-screener/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestAuthHandler creates an AuthHandler backed by the in-memory store.
func setupTestAuthHandler(_ *testing.T) *AuthHandler {
	userSvc, _ := testUserService()
	return NewAuthHandler(userSvc, testJWTService())
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	handler := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestAuthHandler_Register_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		reqBody map[string]string
	}{
		{
			name:    "missing email",
			reqBody: map[string]string{"password": "password123"},
		},
		{
			name:    "invalid email",
			reqBody: map[string]string{"email": "invalid-email", "password": "password123"},
		},
		{
			name:    "password too short",
			reqBody: map[string]string{"email": "test@example.com", "password": "short"},
		},
		{
			name:    "missing password",
			reqBody: map[string]string{"email": "test@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := setupTestAuthHandler(t)

			body, _ := json.Marshal(tt.reqBody)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Register(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "validation error")
		})
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	handler := setupTestAuthHandler(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "dev@example.com",
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "dev@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler := setupTestAuthHandler(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "dev@example.com",
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	w = httptest.NewRecorder()
	handler.Register(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestAuthHandler_Login_Success(t *testing.T) {
	handler := setupTestAuthHandler(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "dev@example.com",
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w = httptest.NewRecorder()
	handler.Login(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)

	// Token should round-trip through the middleware validator
	claims, err := handler.jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := setupTestAuthHandler(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid email or password")
}

func TestAuthHandler_Me(t *testing.T) {
	handler := setupTestAuthHandler(t)

	body, _ := json.Marshal(map[string]string{
		"email":    "dev@example.com",
		"password": "password123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Register(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var registered types.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&registered))

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req = middleware.WithUserID(req, registered.User.ID)
	w = httptest.NewRecorder()

	handler.Me(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var me types.User
	require.NoError(t, json.NewDecoder(w.Body).Decode(&me))
	assert.Equal(t, registered.User.ID, me.ID)
	assert.Equal(t, "dev@example.com", me.Email)
}

func TestAuthHandler_Me_NoContext(t *testing.T) {
	handler := setupTestAuthHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()

	handler.Me(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
