package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"mining-map-api/internal/models"
	"mining-map-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBriefService_Brief(t *testing.T) {
	license := &models.License{ID: "PL 3/12", Company: "Golden Star", Commodity: strPtr("Gold"), Region: strPtr("Tarkwa")}

	t.Run("generated", func(t *testing.T) {
		repo := new(MockLicenseRepository)
		gen := new(MockGenerator)
		repo.On("GetLicense", mock.Anything, "PL 3/12").Return(license, nil)
		gen.On("Enabled").Return(true)
		gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
			return strings.Contains(p, "Company: Golden Star")
		})).Return("A gold lease near Tarkwa.", nil)

		brief, err := NewBriefService(repo, gen).Brief(context.Background(), "PL 3/12")
		require.NoError(t, err)
		assert.Equal(t, &models.Brief{LicenseID: "PL 3/12", Text: "A gold lease near Tarkwa."}, brief)
	})

	t.Run("generator disabled", func(t *testing.T) {
		repo := new(MockLicenseRepository)
		gen := new(MockGenerator)
		gen.On("Enabled").Return(false)

		_, err := NewBriefService(repo, gen).Brief(context.Background(), "PL 3/12")
		assert.ErrorIs(t, err, ErrUnavailable)
		repo.AssertNotCalled(t, "GetLicense", mock.Anything, mock.Anything)
	})

	t.Run("no generator", func(t *testing.T) {
		_, err := NewBriefService(new(MockLicenseRepository), nil).Brief(context.Background(), "x")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unknown license", func(t *testing.T) {
		repo := new(MockLicenseRepository)
		gen := new(MockGenerator)
		gen.On("Enabled").Return(true)
		repo.On("GetLicense", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		_, err := NewBriefService(repo, gen).Brief(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("upstream failure", func(t *testing.T) {
		repo := new(MockLicenseRepository)
		gen := new(MockGenerator)
		gen.On("Enabled").Return(true)
		repo.On("GetLicense", mock.Anything, "PL 3/12").Return(license, nil)
		gen.On("Generate", mock.Anything, mock.Anything).Return("", assert.AnError)

		_, err := NewBriefService(repo, gen).Brief(context.Background(), "PL 3/12")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestBriefPrompt(t *testing.T) {
	issued := time.Date(2020, 2, 3, 0, 0, 0, 0, time.UTC)
	lat, lng := 5.3, -1.98333
	prompt := BriefPrompt(&models.License{
		ID: "PL 3/12", Company: "Golden Star", Status: " ", Date: &issued, Lat: &lat, Lng: &lng,
	})

	assert.Contains(t, prompt, "License ID: PL 3/12\n")
	assert.Contains(t, prompt, "Issued: 2020-02-03\n")
	assert.Contains(t, prompt, "Coordinates: 5.3000, -1.9833\n")
	assert.NotContains(t, prompt, "Status:")
	assert.NotContains(t, prompt, "Region:")
}
