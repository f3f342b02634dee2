package models

import "time"

// License is a mining license as served to the map frontend.
type License struct {
	ID            string     `json:"id"`
	Company       string     `json:"company"`
	LicenseType   *string    `json:"licenseType"`
	Commodity     *string    `json:"commodity"`
	Status        string     `json:"status"`
	Date          *time.Time `json:"date"`
	Country       string     `json:"country"`
	Region        *string    `json:"region"`
	Lat           *float64   `json:"lat"`
	Lng           *float64   `json:"lng"`
	PhoneNumber   *string    `json:"phoneNumber"`
	ContactPerson *string    `json:"contactPerson"`
}

// LicenseInput is the body accepted when creating a license.
type LicenseInput struct {
	Company       string   `json:"company" binding:"required"`
	Country       string   `json:"country" binding:"required"`
	Region        *string  `json:"region"`
	Commodity     *string  `json:"commodity"`
	LicenseType   *string  `json:"licenseType"`
	Status        *string  `json:"status"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	PhoneNumber   *string  `json:"phoneNumber"`
	ContactPerson *string  `json:"contactPerson"`
}

// LicenseRecord is one converted spreadsheet row. It is the JSON written by the
// importer and the row shape of the staging database.
type LicenseRecord struct {
	ID              string   `json:"id" db:"id"`
	Company         string   `json:"company" db:"company"`
	LicenseType     string   `json:"licenseType" db:"license_type"`
	Commodity       string   `json:"commodity" db:"commodity"`
	Status          string   `json:"status" db:"status"`
	Date            string   `json:"date" db:"date_issued"`
	Country         string   `json:"country" db:"country"`
	Region          string   `json:"region" db:"region"`
	Lat             *float64 `json:"lat,omitempty" db:"lat"`
	Lng             *float64 `json:"lng,omitempty" db:"lng"`
	MatchedLocation string   `json:"matched_location,omitempty" db:"matched_location"`
}

// Geocoded reports whether the record carries coordinates.
func (r LicenseRecord) Geocoded() bool {
	return r.Lat != nil && r.Lng != nil
}

// Brief is a generated plain-language summary of a license.
type Brief struct {
	LicenseID string `json:"license_id"`
	Text      string `json:"brief"`
}

// BatchDelete is the body of POST /licenses/batch-delete.
type BatchDelete struct {
	IDs []string `json:"ids"`
}
