package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mining-map-api/internal/geocode"
	"mining-map-api/internal/models"
)

// Unknown is the placeholder for fields whose column is missing.
const Unknown = "Unknown"

// DefaultCountry is stamped on every converted record unless overridden.
const DefaultCountry = "Ghana"

// ErrBlankRow marks a data row with no non-empty cells.
var ErrBlankRow = errors.New("blank row")

// RowError reports a row that was skipped. Row is the zero-based data row.
type RowError struct {
	Row int
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Summary counts the outcome of a conversion.
type Summary struct {
	Processed int `json:"processed"`
	Geocoded  int `json:"geocoded"`
	Skipped   int `json:"skipped"`
}

// Result is the output of Convert. Records keep input order.
type Result struct {
	Records []models.LicenseRecord
	Errors  []RowError
	Columns ColumnMap
}

// Summary tallies the result.
func (r *Result) Summary() Summary {
	s := Summary{Processed: len(r.Records), Skipped: len(r.Errors)}
	for _, rec := range r.Records {
		if rec.Geocoded() {
			s.Geocoded++
		}
	}
	return s
}

// Converter turns spreadsheet rows into geocoded license records.
type Converter struct {
	resolver *geocode.Resolver
	synonyms []Synonym
	country  string
}

// Option configures a Converter.
type Option func(*Converter)

// WithCountry overrides the country stamped on records.
func WithCountry(country string) Option {
	return func(c *Converter) {
		c.country = country
	}
}

// WithSynonyms replaces the column keyword sets.
func WithSynonyms(synonyms []Synonym) Option {
	return func(c *Converter) {
		c.synonyms = synonyms
	}
}

// NewConverter creates a converter that locates rows with resolver.
func NewConverter(resolver *geocode.Resolver, opts ...Option) *Converter {
	c := &Converter{
		resolver: resolver,
		synonyms: DefaultSynonyms,
		country:  DefaultCountry,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert processes every data row of t in order. Rows that cannot be
// converted are reported in Result.Errors and left out of Result.Records.
func (c *Converter) Convert(t *Table) *Result {
	res := &Result{
		Records: make([]models.LicenseRecord, 0, len(t.Rows)),
		Columns: MapColumns(t.Headers, c.synonyms),
	}

	for i, row := range t.Rows {
		rec, err := c.convertRow(res.Columns, i, row)
		if err != nil {
			res.Errors = append(res.Errors, RowError{Row: i, Err: err})
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res
}

func (c *Converter) convertRow(cols ColumnMap, idx int, row []string) (rec models.LicenseRecord, err error) {
	if isBlank(row) {
		return rec, ErrBlankRow
	}

	rec = models.LicenseRecord{
		ID:          field(cols, row, FieldID, strconv.Itoa(idx)),
		Company:     field(cols, row, FieldCompany, Unknown),
		LicenseType: field(cols, row, FieldLicenseType, Unknown),
		Commodity:   field(cols, row, FieldCommodity, Unknown),
		Status:      field(cols, row, FieldStatus, Unknown),
		Date:        field(cols, row, FieldDate, ""),
		Country:     c.country,
		Region:      cell(row, cols.Index(FieldRegion)),
	}
	if rec.ID == "" {
		rec.ID = strconv.Itoa(idx)
	}

	if m, ok := c.resolver.Resolve(rec.Region); ok {
		lat, lng := m.Point.Lat, m.Point.Lng
		rec.Lat = &lat
		rec.Lng = &lng
		rec.MatchedLocation = m.Key
	}

	return rec, nil
}

// field returns the cell for a mapped column, or fallback when the column is
// missing. A present but empty cell stays empty.
func field(cols ColumnMap, row []string, name, fallback string) string {
	if !cols.Has(name) {
		return fallback
	}
	return cell(row, cols.Index(name))
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	v := row[i]
	if v == "nan" || v == "NaN" {
		return ""
	}
	return v
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []models.LicenseRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("sheet: encode records: %w", err)
	}
	return nil
}

// ReadJSON reads records written by WriteJSON.
func ReadJSON(r io.Reader) ([]models.LicenseRecord, error) {
	var records []models.LicenseRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("sheet: decode records: %w", err)
	}
	return records, nil
}
