package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mining-map-api/internal/models"
	"mining-map-api/internal/repository"
)

// Generator produces text from a prompt.
type Generator interface {
	Enabled() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// LicenseGetter loads a single license.
type LicenseGetter interface {
	GetLicense(ctx context.Context, id string) (*models.License, error)
}

// BriefService writes short summaries of licenses for the dossier view.
type BriefService struct {
	licenses LicenseGetter
	gen      Generator
}

// NewBriefService creates a brief service.
func NewBriefService(licenses LicenseGetter, gen Generator) *BriefService {
	return &BriefService{licenses: licenses, gen: gen}
}

// Brief summarises the license id.
func (s *BriefService) Brief(ctx context.Context, id string) (*models.Brief, error) {
	if s.gen == nil || !s.gen.Enabled() {
		return nil, ErrUnavailable
	}

	l, err := s.licenses.GetLicense(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("service: failed to get license: %w", err)
	}

	text, err := s.gen.Generate(ctx, BriefPrompt(l))
	if err != nil {
		return nil, fmt.Errorf("service: failed to generate brief: %w", err)
	}

	return &models.Brief{LicenseID: l.ID, Text: text}, nil
}

// BriefPrompt renders the instruction sent to the generator.
func BriefPrompt(l *models.License) string {
	var b strings.Builder
	b.WriteString("Write a three-sentence plain-language brief of this mining license for a field analyst. ")
	b.WriteString("Do not invent facts that are not listed.\n\n")

	line := func(label, value string) {
		if value = strings.TrimSpace(value); value != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, value)
		}
	}
	line("License ID", l.ID)
	line("Company", l.Company)
	line("Type", deref(l.LicenseType))
	line("Commodity", deref(l.Commodity))
	line("Status", l.Status)
	line("Country", l.Country)
	line("Region", deref(l.Region))
	if l.Date != nil {
		line("Issued", l.Date.Format("2006-01-02"))
	}
	if l.Lat != nil && l.Lng != nil {
		line("Coordinates", fmt.Sprintf("%.4f, %.4f", *l.Lat, *l.Lng))
	}
	return b.String()
}
