package sheet

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Field names used by the column finder.
const (
	FieldID          = "id"
	FieldCompany     = "company"
	FieldLicenseType = "licenseType"
	FieldStatus      = "status"
	FieldCommodity   = "commodity"
	FieldRegion      = "region"
	FieldDate        = "date"
)

// Synonym lists a field and the keywords that identify its column.
type Synonym struct {
	Field    string
	Keywords []string
}

// DefaultSynonyms are the keyword sets used for license exports. A column
// matches when its normalised header contains any keyword.
var DefaultSynonyms = []Synonym{
	{Field: FieldID, Keywords: []string{"code", "id", "license_no"}},
	{Field: FieldCompany, Keywords: []string{"company", "holder", "applicant", "owner"}},
	{Field: FieldLicenseType, Keywords: []string{"type", "status_type"}},
	{Field: FieldStatus, Keywords: []string{"status", "state"}},
	{Field: FieldCommodity, Keywords: []string{"commodity", "mineral", "target"}},
	{Field: FieldRegion, Keywords: []string{"region", "district", "location"}},
	{Field: FieldDate, Keywords: []string{"start_date", "date", "issued"}},
}

// NormalizeHeader canonicalises a header cell: NFKC, trimmed, lower case,
// spaces replaced by underscores and dots removed.
func NormalizeHeader(col string) string {
	col = norm.NFKC.String(col)
	col = strings.TrimPrefix(col, "\ufeff")
	col = strings.ToLower(strings.TrimSpace(col))
	col = strings.ReplaceAll(col, " ", "_")
	return strings.ReplaceAll(col, ".", "")
}

// FindColumn returns the index of the first header containing any keyword,
// scanning headers in order. It returns -1 when nothing matches.
func FindColumn(headers []string, keywords []string) int {
	for i, col := range headers {
		for _, k := range keywords {
			if strings.Contains(col, k) {
				return i
			}
		}
	}
	return -1
}

// ColumnMap maps field names to column indexes.
type ColumnMap map[string]int

// Index returns the column for field, or -1 when it was not found.
func (m ColumnMap) Index(field string) int {
	if i, ok := m[field]; ok {
		return i
	}
	return -1
}

// Has reports whether a column was found for field.
func (m ColumnMap) Has(field string) bool {
	return m.Index(field) >= 0
}

// MapColumns normalises headers and resolves every synonym against them.
func MapColumns(headers []string, synonyms []Synonym) ColumnMap {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeHeader(h)
	}

	m := make(ColumnMap, len(synonyms))
	for _, s := range synonyms {
		m[s.Field] = FindColumn(normalized, s.Keywords)
	}
	return m
}
