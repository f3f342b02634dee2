package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"mining-map-api/internal/models"
	"mining-map-api/internal/repository"
	"mining-map-api/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FilesPrefix is the public URL path under which dossier files are served.
const FilesPrefix = "/files/"

// FileRepository stores dossier file records.
type FileRepository interface {
	LicenseExists(ctx context.Context, id string) (bool, error)
	CreateFile(ctx context.Context, f models.LicenseFile) error
	ListFiles(ctx context.Context, licenseID string) ([]models.LicenseFile, error)
	GetFile(ctx context.Context, id string) (*models.LicenseFile, error)
	DeleteFile(ctx context.Context, id string) error
}

// Upload is one incoming dossier file.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileService attaches documents to licenses.
type FileService struct {
	repo  FileRepository
	store storage.Store
}

// NewFileService creates a file service.
func NewFileService(repo FileRepository, store storage.Store) *FileService {
	return &FileService{repo: repo, store: store}
}

// Upload stores the file and records it against licenseID.
func (s *FileService) Upload(ctx context.Context, licenseID string, up Upload) (*models.LicenseFile, error) {
	exists, err := s.repo.LicenseExists(ctx, licenseID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to check license: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	id := uuid.NewString()
	name := storage.ObjectName(id, up.Filename)

	if err := s.store.Save(ctx, name, up.Body, up.Size, up.ContentType); err != nil {
		return nil, fmt.Errorf("service: failed to store file: %w", err)
	}

	f := models.LicenseFile{
		ID:        id,
		LicenseID: licenseID,
		Filename:  up.Filename,
		URL:       FilesPrefix + name,
	}
	if err := s.repo.CreateFile(ctx, f); err != nil {
		if delErr := s.store.Delete(ctx, name); delErr != nil {
			log.Warn().Err(delErr).Str("object", name).Msg("failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("service: failed to record file: %w", err)
	}

	return &f, nil
}

// List returns the files of a license, newest first.
func (s *FileService) List(ctx context.Context, licenseID string) ([]models.LicenseFile, error) {
	files, err := s.repo.ListFiles(ctx, licenseID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list files: %w", err)
	}
	return files, nil
}

// Delete removes the stored object and its record. Unknown ids succeed.
func (s *FileService) Delete(ctx context.Context, id string) error {
	f, err := s.repo.GetFile(ctx, id)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("service: failed to load file: %w", err)
	}

	name := strings.TrimPrefix(f.URL, FilesPrefix)
	if err := s.store.Delete(ctx, name); err != nil {
		log.Warn().Err(err).Str("object", name).Msg("failed to remove stored file")
	}

	if err := s.repo.DeleteFile(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete file: %w", err)
	}
	return nil
}

// Open returns the stored object for serving.
func (s *FileService) Open(ctx context.Context, name string) (*storage.Object, error) {
	obj, err := s.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to open file: %w", err)
	}
	return obj, nil
}
