package handler

import (
	"net/http"
	"testing"

	"mining-map-api/internal/models"
	"mining-map-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		setup      func(m *MockAuthService)
		wantStatus int
		wantText   string
		wantJSON   interface{}
	}{
		{
			name: "success",
			body: map[string]string{"username": "admin", "password": "secret"},
			setup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, models.Credentials{Username: "admin", Password: "secret"}).
					Return(&models.Session{AccessToken: "tok", TokenType: "bearer", Username: "admin", Role: "admin", ID: "u1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantJSON: map[string]interface{}{
				"access_token": "tok", "token_type": "bearer", "username": "admin", "role": "admin", "id": "u1",
			},
		},
		{
			name: "wrong password",
			body: map[string]string{"username": "admin", "password": "nope"},
			setup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantText:   "Invalid credentials",
		},
		{
			name:       "missing password",
			body:       map[string]string{"username": "admin"},
			setup:      func(m *MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantJSON:   map[string]interface{}{"error": "username and password are required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestRouter(Guards{})
			tt.setup(s.auth)

			w := serve(r, jsonRequest(t, http.MethodPost, "/auth/login", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, w.Body.String())
			} else {
				assert.Equal(t, tt.wantJSON, decodeBody(t, w))
			}
			s.auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.auth.On("Register", mock.Anything, models.NewUser{Username: "kofi", Password: "pw"}).
			Return(&models.User{ID: "u2", Username: "kofi", Role: models.RoleUser}, nil)

		w := serve(r, jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{"username": "kofi", "password": "pw"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]interface{}{"status": "success", "username": "kofi", "role": "user"}, decodeBody(t, w))
	})

	t.Run("taken", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.auth.On("Register", mock.Anything, mock.Anything).Return(nil, service.ErrConflict)

		w := serve(r, jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{"username": "admin", "password": "pw"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Username already taken", w.Body.String())
	})

	t.Run("bad role", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.auth.On("Register", mock.Anything, mock.Anything).
			Return(nil, service.ErrInvalidInput)

		w := serve(r, jsonRequest(t, http.MethodPost, "/auth/register", map[string]string{"username": "x", "password": "pw", "role": "root"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_UpdateUser(t *testing.T) {
	tests := []struct {
		name       string
		changed    bool
		err        error
		wantStatus int
		wantText   string
		wantJSON   interface{}
	}{
		{name: "updated", changed: true, wantStatus: http.StatusOK, wantJSON: map[string]interface{}{"status": "updated"}},
		{name: "no changes", wantStatus: http.StatusOK, wantJSON: map[string]interface{}{"status": "no changes"}},
		{name: "missing user", err: service.ErrNotFound, wantStatus: http.StatusNotFound, wantText: "User not found"},
		{name: "name taken", err: service.ErrConflict, wantStatus: http.StatusBadRequest, wantText: "Username already taken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestRouter(Guards{})
			s.auth.On("UpdateUser", mock.Anything, "u2", mock.Anything).Return(tt.changed, tt.err)

			w := serve(r, jsonRequest(t, http.MethodPut, "/auth/users/u2", map[string]string{"role": "admin"}))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, w.Body.String())
			} else {
				assert.Equal(t, tt.wantJSON, decodeBody(t, w))
			}
		})
	}
}

func TestAuthHandler_DeleteUser(t *testing.T) {
	r, s := newTestRouter(Guards{})
	s.auth.On("DeleteUser", mock.Anything, "u2").Return(nil)
	s.auth.On("DeleteUser", mock.Anything, "u3").Return(service.ErrNotFound)

	w := serve(r, jsonRequest(t, http.MethodDelete, "/auth/users/u2", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"status": "deleted"}, decodeBody(t, w))

	w = serve(r, jsonRequest(t, http.MethodDelete, "/auth/users/u3", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", w.Body.String())
}
