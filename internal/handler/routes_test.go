package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mining-map-api/internal/auth"
	"mining-map-api/internal/models"
	"mining-map-api/internal/service"
	"mining-map-api/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegister_Health(t *testing.T) {
	r, _ := newTestRouter(Guards{})
	w := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"status": "ok"}, decodeBody(t, w))
}

func TestRegister_LicenseIDsWithSlashes(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		setup  func(s *testServices)
		status int
		body   interface{}
	}{
		{
			name:   "delete slash id",
			method: http.MethodDelete,
			target: "/licenses/PL%203/12",
			setup: func(s *testServices) {
				s.licenses.On("Delete", mock.Anything, "PL 3/12").Return(nil)
			},
			status: http.StatusOK,
			body:   map[string]interface{}{"status": "success", "deleted_id": "PL 3/12"},
		},
		{
			name:   "delete missing id",
			method: http.MethodDelete,
			target: "/licenses/ML/9/2020",
			setup: func(s *testServices) {
				s.licenses.On("Delete", mock.Anything, "ML/9/2020").Return(service.ErrNotFound)
			},
			status: http.StatusNotFound,
			body:   map[string]interface{}{"detail": "License ML/9/2020 not found"},
		},
		{
			name:   "delete without id",
			method: http.MethodDelete,
			target: "/licenses/",
			setup:  func(s *testServices) {},
			status: http.StatusNotFound,
			body:   map[string]interface{}{"error": "not found"},
		},
		{
			name:   "list files of slash id",
			method: http.MethodGet,
			target: "/licenses/PL/3/12/files",
			setup: func(s *testServices) {
				s.files.On("List", mock.Anything, "PL/3/12").Return([]models.LicenseFile{}, nil)
			},
			status: http.StatusOK,
			body:   []interface{}{},
		},
		{
			name:   "brief of slash id",
			method: http.MethodPost,
			target: "/licenses/PL/3/12/brief",
			setup: func(s *testServices) {
				s.briefs.On("Brief", mock.Anything, "PL/3/12").Return(&models.Brief{LicenseID: "PL/3/12", Text: "ok"}, nil)
			},
			status: http.StatusOK,
			body:   map[string]interface{}{"license_id": "PL/3/12", "brief": "ok"},
		},
		{
			name:   "brief unavailable",
			method: http.MethodPost,
			target: "/licenses/A1/brief",
			setup: func(s *testServices) {
				s.briefs.On("Brief", mock.Anything, "A1").Return(nil, service.ErrUnavailable)
			},
			status: http.StatusServiceUnavailable,
			body:   map[string]interface{}{"error": "service unavailable"},
		},
		{
			name:   "unknown get path",
			method: http.MethodGet,
			target: "/licenses/A1",
			setup:  func(s *testServices) {},
			status: http.StatusNotFound,
			body:   map[string]interface{}{"error": "not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestRouter(Guards{})
			tt.setup(s)

			w := serve(r, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.body, decodeBody(t, w))
			s.licenses.AssertExpectations(t)
			s.files.AssertExpectations(t)
			s.briefs.AssertExpectations(t)
		})
	}
}

func TestRegister_BatchDelete(t *testing.T) {
	r, s := newTestRouter(Guards{})
	s.licenses.On("BatchDelete", mock.Anything, []string{"a", "b/c"}).Return(int64(2), nil)

	w := serve(r, jsonRequest(t, http.MethodPost, "/licenses/batch-delete", map[string]interface{}{"ids": []string{"a", "b/c"}}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"status": "success", "deleted_count": float64(2)}, decodeBody(t, w))
}

func TestRegister_FileRoutes(t *testing.T) {
	t.Run("upload", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.files.On("Upload", mock.Anything, "PL 3/12", mock.MatchedBy(func(up service.Upload) bool {
			return up.Filename == "site map.pdf" && up.Size == 3
		})).Return(&models.LicenseFile{ID: "f1", Filename: "site map.pdf", URL: "/files/f1_site_map.pdf"}, nil)

		w := serve(r, multipartRequest(t, "/licenses/PL%203/12/files", "site map.pdf", []byte("pdf")))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]interface{}{
			"id": "f1", "filename": "site map.pdf", "url": "/files/f1_site_map.pdf",
		}, decodeBody(t, w))
	})

	t.Run("upload to unknown license", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.files.On("Upload", mock.Anything, "ghost", mock.Anything).Return(nil, service.ErrNotFound)

		w := serve(r, multipartRequest(t, "/licenses/ghost/files", "a.txt", []byte("x")))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "License not found", w.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.files.On("Delete", mock.Anything, "f1").Return(nil)

		w := serve(r, httptest.NewRequest(http.MethodDelete, "/files/f1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, map[string]interface{}{"status": "deleted"}, decodeBody(t, w))
	})

	t.Run("serve", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.files.On("Open", mock.Anything, "f1_map.txt").Return(&storage.Object{
			ReadCloser:  io.NopCloser(strings.NewReader("hello")),
			Size:        5,
			ContentType: "text/plain",
		}, nil)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/files/f1_map.txt", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hello", w.Body.String())
		assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
		assert.Equal(t, "5", w.Header().Get("Content-Length"))
		assert.Equal(t, "attachment; filename=f1_map.txt", w.Header().Get("Content-Disposition"))
	})

	t.Run("serve html as attachment", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.files.On("Open", mock.Anything, "f2_page.html").Return(&storage.Object{
			ReadCloser:  io.NopCloser(strings.NewReader("<script>alert(1)</script>")),
			Size:        25,
			ContentType: "text/html; charset=utf-8",
		}, nil)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/files/f2_page.html", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "attachment; filename=f2_page.html", w.Header().Get("Content-Disposition"))
	})

	t.Run("serve image inline", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.files.On("Open", mock.Anything, "f3_site.png").Return(&storage.Object{
			ReadCloser:  io.NopCloser(strings.NewReader("png")),
			Size:        3,
			ContentType: "image/png",
		}, nil)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/files/f3_site.png", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Empty(t, w.Header().Get("Content-Disposition"))
	})

	t.Run("serve missing", func(t *testing.T) {
		r, s := newTestRouter(Guards{})
		s.files.On("Open", mock.Anything, "nope").Return(nil, service.ErrNotFound)

		w := serve(r, httptest.NewRequest(http.MethodGet, "/files/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("serve nested path", func(t *testing.T) {
		r, _ := newTestRouter(Guards{})
		w := serve(r, httptest.NewRequest(http.MethodGet, "/files/a/b", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRegister_Guards(t *testing.T) {
	verifier := new(MockTokenVerifier)
	verifier.On("Verify", "admin-token").Return(&auth.Claims{Role: models.RoleAdmin, UserID: "u1", RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"}}, nil)
	verifier.On("Verify", "user-token").Return(&auth.Claims{Role: models.RoleUser, UserID: "u2"}, nil)
	verifier.On("Verify", "bad").Return(nil, errors.New("expired"))

	tests := []struct {
		name   string
		method string
		target string
		token  string
		status int
	}{
		{name: "users without token", method: http.MethodGet, target: "/auth/users", status: http.StatusUnauthorized},
		{name: "users with bad token", method: http.MethodGet, target: "/auth/users", token: "bad", status: http.StatusUnauthorized},
		{name: "users as member", method: http.MethodGet, target: "/auth/users", token: "user-token", status: http.StatusForbidden},
		{name: "users as admin", method: http.MethodGet, target: "/auth/users", token: "admin-token", status: http.StatusOK},
		{name: "logs as member", method: http.MethodGet, target: "/activity/logs", token: "user-token", status: http.StatusForbidden},
		{name: "delete license without token", method: http.MethodDelete, target: "/licenses/A1", status: http.StatusUnauthorized},
		{name: "delete license as member", method: http.MethodDelete, target: "/licenses/A1", token: "user-token", status: http.StatusOK},
		{name: "public list", method: http.MethodGet, target: "/licenses", status: http.StatusOK},
		{name: "public export", method: http.MethodGet, target: "/licenses/export", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, s := newTestRouter(NewGuards(verifier, true))
			s.auth.On("ListUsers", mock.Anything).Return([]models.User{}, nil).Maybe()
			s.licenses.On("Delete", mock.Anything, "A1").Return(nil).Maybe()
			s.licenses.On("List", mock.Anything).Return([]models.License{}, nil).Maybe()
			s.licenses.On("Export", mock.Anything, mock.Anything).Return(nil, "id\n").Maybe()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			w := serve(r, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestNewGuards_Disabled(t *testing.T) {
	g := NewGuards(new(MockTokenVerifier), false)
	assert.Nil(t, g.Admin)
	assert.Nil(t, g.Member)

	r, s := newTestRouter(g)
	s.auth.On("ListUsers", mock.Anything).Return([]models.User{}, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/auth/users", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
