package models

import "time"

// LicenseFile is a dossier document attached to a license.
type LicenseFile struct {
	ID        string    `json:"id"`
	LicenseID string    `json:"-"`
	Filename  string    `json:"filename"`
	URL       string    `json:"url"`
	Date      time.Time `json:"date"`
}
