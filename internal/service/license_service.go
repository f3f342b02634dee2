package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mining-map-api/internal/models"
	"mining-map-api/internal/repository"
	"mining-map-api/internal/sheet"
	"mining-map-api/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultStatus is given to licenses created without one.
const DefaultStatus = "Operating"

// ExportColumns is the header row of the CSV export.
var ExportColumns = []string{
	"id", "company", "country", "region", "commodity", "license_type",
	"status", "lat", "lng", "phone_number", "contact_person", "date_issued",
}

// TemplateColumns is the header row of the import template.
var TemplateColumns = []string{
	"company", "country", "region", "commodity", "license_type",
	"status", "lat", "lng", "phone_number", "contact_person",
}

var templateExample = []string{
	"Example Mining Co", "Ghana", "Ashanti", "Gold", "Large Scale",
	"Operating", "6.5", "-1.5", "+233...", "John Doe",
}

// LicenseRepository is the storage the license service needs.
type LicenseRepository interface {
	ListLicenses(ctx context.Context) ([]models.License, error)
	GetLicense(ctx context.Context, id string) (*models.License, error)
	CreateLicense(ctx context.Context, l models.License) error
	InsertLicenses(ctx context.Context, licenses []models.License) (int64, error)
	DeleteLicense(ctx context.Context, id string) error
	DeleteLicenses(ctx context.Context, ids []string) (int64, error)
	LicenseFileURLs(ctx context.Context, ids []string) ([]string, error)
}

// LicenseService holds the license CRUD and CSV exchange rules.
type LicenseService struct {
	repo           LicenseRepository
	store          storage.Store
	defaultCountry string
}

// NewLicenseService creates a license service. Deleting a license also
// removes its dossier objects from store; a nil store skips that.
// defaultCountry fills imported rows that leave the country blank.
func NewLicenseService(repo LicenseRepository, store storage.Store, defaultCountry string) *LicenseService {
	if defaultCountry == "" {
		defaultCountry = sheet.DefaultCountry
	}
	return &LicenseService{repo: repo, store: store, defaultCountry: defaultCountry}
}

// List returns every license.
func (s *LicenseService) List(ctx context.Context) ([]models.License, error) {
	licenses, err := s.repo.ListLicenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list licenses: %w", err)
	}
	return licenses, nil
}

// Get returns one license.
func (s *LicenseService) Get(ctx context.Context, id string) (*models.License, error) {
	l, err := s.repo.GetLicense(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to get license: %w", err)
	}
	return l, nil
}

// Create stores a new license under a fresh uuid. The issue date stays empty.
func (s *LicenseService) Create(ctx context.Context, in models.LicenseInput) (*models.License, error) {
	if strings.TrimSpace(in.Company) == "" || strings.TrimSpace(in.Country) == "" {
		return nil, fmt.Errorf("%w: company and country are required", ErrInvalidInput)
	}

	l := models.License{
		ID:            uuid.NewString(),
		Company:       in.Company,
		Country:       in.Country,
		Region:        in.Region,
		Commodity:     in.Commodity,
		LicenseType:   in.LicenseType,
		Status:        DefaultStatus,
		Lat:           in.Lat,
		Lng:           in.Lng,
		PhoneNumber:   in.PhoneNumber,
		ContactPerson: in.ContactPerson,
	}
	if in.Status != nil {
		l.Status = *in.Status
	}

	if err := s.repo.CreateLicense(ctx, l); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("service: failed to create license: %w", err)
	}
	return &l, nil
}

// Delete removes one license. Its file records go with it through the
// foreign key and the stored objects are removed afterwards.
func (s *LicenseService) Delete(ctx context.Context, id string) error {
	objects, err := s.objectNames(ctx, []string{id})
	if err != nil {
		return err
	}

	if err := s.repo.DeleteLicense(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service: failed to delete license: %w", err)
	}

	s.removeObjects(ctx, objects)
	return nil
}

// BatchDelete removes all ids and returns how many existed. An empty list is
// answered without touching the database.
func (s *LicenseService) BatchDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	objects, err := s.objectNames(ctx, ids)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.DeleteLicenses(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("service: failed to batch delete licenses: %w", err)
	}

	s.removeObjects(ctx, objects)
	return n, nil
}

// objectNames collects the stored objects behind the files of ids. It must run
// before the licenses are deleted since the file rows cascade.
func (s *LicenseService) objectNames(ctx context.Context, ids []string) ([]string, error) {
	if s.store == nil {
		return nil, nil
	}
	urls, err := s.repo.LicenseFileURLs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list license files: %w", err)
	}
	names := make([]string, 0, len(urls))
	for _, u := range urls {
		names = append(names, strings.TrimPrefix(u, FilesPrefix))
	}
	return names, nil
}

func (s *LicenseService) removeObjects(ctx context.Context, names []string) {
	for _, name := range names {
		if err := s.store.Delete(ctx, name); err != nil {
			log.Warn().Err(err).Str("object", name).Msg("failed to remove stored file")
		}
	}
}

// Export writes all licenses as CSV with ExportColumns as header.
func (s *LicenseService) Export(ctx context.Context, w io.Writer) error {
	licenses, err := s.List(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return fmt.Errorf("service: failed to write export: %w", err)
	}
	for _, l := range licenses {
		date := ""
		if l.Date != nil {
			date = l.Date.Format("2006-01-02 15:04:05")
		}
		record := []string{
			l.ID, l.Company, l.Country, deref(l.Region), deref(l.Commodity), deref(l.LicenseType), l.Status,
			formatFloat(l.Lat), formatFloat(l.Lng), deref(l.PhoneNumber), deref(l.ContactPerson), date,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("service: failed to write export: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTemplate writes the import header plus one example row.
func (s *LicenseService) WriteTemplate(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll([][]string{TemplateColumns, templateExample}); err != nil {
		return fmt.Errorf("service: failed to write template: %w", err)
	}
	return nil
}

// ImportResult counts the rows of an import.
type ImportResult struct {
	Imported int64
	Skipped  int
}

// Import reads a CSV upload in the template layout and bulk-inserts every
// row that has a company and numeric coordinates. Each row gets a new id.
func (s *LicenseService) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	table, err := sheet.ReadDelimited(data, ',')
	if err != nil {
		if errors.Is(err, sheet.ErrEmptySheet) {
			return nil, fmt.Errorf("%w: No valid rows found or file is empty", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	cols := make(map[string]int, len(table.Headers))
	for i, h := range table.Headers {
		key := sheet.NormalizeHeader(h)
		if _, seen := cols[key]; !seen {
			cols[key] = i
		}
	}
	get := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	res := &ImportResult{}
	licenses := make([]models.License, 0, len(table.Rows))
	for _, row := range table.Rows {
		company, latText, lngText := get(row, "company"), get(row, "lat"), get(row, "lng")
		if company == "" || latText == "" || lngText == "" {
			res.Skipped++
			continue
		}
		lat, errLat := strconv.ParseFloat(latText, 64)
		lng, errLng := strconv.ParseFloat(lngText, 64)
		if errLat != nil || errLng != nil {
			res.Skipped++
			continue
		}

		licenses = append(licenses, models.License{
			ID:            uuid.NewString(),
			Company:       company,
			Country:       orDefault(get(row, "country"), s.defaultCountry),
			Region:        optional(get(row, "region")),
			Commodity:     optional(get(row, "commodity")),
			LicenseType:   optional(orDefault(get(row, "license_type"), sheet.Unknown)),
			Status:        orDefault(get(row, "status"), sheet.Unknown),
			Lat:           &lat,
			Lng:           &lng,
			PhoneNumber:   optional(get(row, "phone_number")),
			ContactPerson: optional(get(row, "contact_person")),
		})
	}

	if len(licenses) == 0 {
		return nil, fmt.Errorf("%w: No valid rows found or file is empty", ErrInvalidInput)
	}

	n, err := s.repo.InsertLicenses(ctx, licenses)
	if err != nil {
		return nil, fmt.Errorf("service: failed to import licenses: %w", err)
	}
	res.Imported = n
	return res, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
