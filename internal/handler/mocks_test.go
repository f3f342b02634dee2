package handler

import (
	"context"
	"io"

	"mining-map-api/internal/auth"
	"mining-map-api/internal/models"
	"mining-map-api/internal/service"
	"mining-map-api/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockLicenseService is a mock implementation of the LicenseService interface
type MockLicenseService struct {
	mock.Mock
}

func (m *MockLicenseService) List(ctx context.Context) ([]models.License, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.License), args.Error(1)
}

func (m *MockLicenseService) Create(ctx context.Context, in models.LicenseInput) (*models.License, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.License), args.Error(1)
}

func (m *MockLicenseService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLicenseService) BatchDelete(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLicenseService) Export(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if s, ok := args.Get(1).(string); ok {
		io.WriteString(w, s)
	}
	return args.Error(0)
}

func (m *MockLicenseService) WriteTemplate(w io.Writer) error {
	io.WriteString(w, "company,country\n")
	return nil
}

func (m *MockLicenseService) Import(ctx context.Context, data []byte) (*service.ImportResult, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ImportResult), args.Error(1)
}

// MockFileService is a mock implementation of the FileService interface
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, licenseID string, up service.Upload) (*models.LicenseFile, error) {
	args := m.Called(ctx, licenseID, up)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LicenseFile), args.Error(1)
}

func (m *MockFileService) List(ctx context.Context, licenseID string) ([]models.LicenseFile, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LicenseFile), args.Error(1)
}

func (m *MockFileService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockFileService) Open(ctx context.Context, name string) (*storage.Object, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Object), args.Error(1)
}

// MockAuthService is a mock implementation of the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, in models.NewUser) (*models.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockAuthService) UpdateUser(ctx context.Context, id string, in models.UserUpdate) (bool, error) {
	args := m.Called(ctx, id, in)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthService) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockActivityService is a mock implementation of the ActivityService interface
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Log(ctx context.Context, in models.NewActivity) (*models.ActivityLog, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ActivityLog), args.Error(1)
}

func (m *MockActivityService) List(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityLog), args.Error(1)
}

// MockBriefService is a mock implementation of the BriefService interface
type MockBriefService struct {
	mock.Mock
}

func (m *MockBriefService) Brief(ctx context.Context, id string) (*models.Brief, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brief), args.Error(1)
}

// MockTokenVerifier is a mock implementation of the TokenVerifier interface
type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(token string) (*auth.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}
