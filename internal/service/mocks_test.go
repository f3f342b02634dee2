package service

import (
	"context"
	"io"

	"mining-map-api/internal/models"
	"mining-map-api/internal/repository"
	"mining-map-api/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockLicenseRepository is a mock implementation of LicenseRepository
type MockLicenseRepository struct {
	mock.Mock
}

func (m *MockLicenseRepository) ListLicenses(ctx context.Context) ([]models.License, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.License), args.Error(1)
}

func (m *MockLicenseRepository) GetLicense(ctx context.Context, id string) (*models.License, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.License), args.Error(1)
}

func (m *MockLicenseRepository) CreateLicense(ctx context.Context, l models.License) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLicenseRepository) InsertLicenses(ctx context.Context, licenses []models.License) (int64, error) {
	args := m.Called(ctx, licenses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLicenseRepository) DeleteLicense(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLicenseRepository) DeleteLicenses(ctx context.Context, ids []string) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLicenseRepository) LicenseFileURLs(ctx context.Context, ids []string) ([]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, u models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) EnsureUser(ctx context.Context, u models.User) (bool, error) {
	args := m.Called(ctx, u)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, id string, changes repository.UserChanges) error {
	return m.Called(ctx, id, changes).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Create(username, role, userID string) (string, error) {
	args := m.Called(username, role, userID)
	return args.String(0), args.Error(1)
}

// MockActivityRepository is a mock implementation of ActivityRepository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CreateActivity(ctx context.Context, a *models.ActivityLog) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockActivityRepository) ListActivity(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivityLog), args.Error(1)
}

// MockPublisher is a mock implementation of events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishActivity(ctx context.Context, entry models.ActivityLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

// MockFileRepository is a mock implementation of FileRepository
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) LicenseExists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileRepository) CreateFile(ctx context.Context, f models.LicenseFile) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFileRepository) ListFiles(ctx context.Context, licenseID string) ([]models.LicenseFile, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LicenseFile), args.Error(1)
}

func (m *MockFileRepository) GetFile(ctx context.Context, id string) (*models.LicenseFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LicenseFile), args.Error(1)
}

func (m *MockFileRepository) DeleteFile(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// MockStore is a mock implementation of storage.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	return m.Called(ctx, name, r, size, contentType).Error(0)
}

func (m *MockStore) Open(ctx context.Context, name string) (*storage.Object, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Object), args.Error(1)
}

func (m *MockStore) Delete(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// MockGenerator is a mock implementation of Generator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
