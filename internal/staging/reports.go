package staging

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"mining-map-api/internal/geocode"
)

// ValueCount is a grouped value and the number of rows holding it.
type ValueCount struct {
	Value string `db:"value" json:"value"`
	Count int    `db:"count" json:"count"`
}

// CommodityCounts returns the most common raw commodity values.
func (db *DB) CommodityCounts(ctx context.Context, limit int) ([]ValueCount, error) {
	var out []ValueCount
	err := db.SelectContext(ctx, &out, `
		SELECT COALESCE(commodity, '') AS value, COUNT(*) AS count
		FROM licenses
		GROUP BY commodity
		ORDER BY count DESC, value
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("staging: failed to count commodities: %w", err)
	}
	return out, nil
}

// SearchCommodity groups commodities containing term, case-insensitively.
func (db *DB) SearchCommodity(ctx context.Context, term string) ([]ValueCount, error) {
	var out []ValueCount
	err := db.SelectContext(ctx, &out, `
		SELECT commodity AS value, COUNT(*) AS count
		FROM licenses
		WHERE commodity LIKE '%' || ? || '%'
		GROUP BY commodity
		ORDER BY count DESC, value
	`, term)
	if err != nil {
		return nil, fmt.Errorf("staging: failed to search commodities: %w", err)
	}
	return out, nil
}

// RegionCounts returns the most common regions for country, with internal
// whitespace collapsed for display.
func (db *DB) RegionCounts(ctx context.Context, country string, limit int) ([]ValueCount, error) {
	var out []ValueCount
	err := db.SelectContext(ctx, &out, `
		SELECT COALESCE(region, '') AS value, COUNT(*) AS count
		FROM licenses
		WHERE country = ?
		GROUP BY region
		ORDER BY count DESC, value
		LIMIT ?
	`, country, limit)
	if err != nil {
		return nil, fmt.Errorf("staging: failed to count regions: %w", err)
	}
	for i := range out {
		out[i].Value = strings.Join(strings.Fields(out[i].Value), " ")
	}
	return out, nil
}

// MissingCoordinates counts records of country without a resolved location.
func (db *DB) MissingCoordinates(ctx context.Context, country string) (int, error) {
	var n int
	err := db.GetContext(ctx, &n, `SELECT COUNT(*) FROM licenses WHERE country = ? AND lat IS NULL`, country)
	if err != nil {
		return 0, fmt.Errorf("staging: failed to count missing coordinates: %w", err)
	}
	return n, nil
}

// FindIDs returns ids containing fragment, for tracking down ids with stray
// whitespace or formatting.
func (db *DB) FindIDs(ctx context.Context, fragment string) ([]string, error) {
	var ids []string
	err := db.SelectContext(ctx, &ids, `SELECT id FROM licenses WHERE id LIKE '%' || ? || '%' ORDER BY id`, fragment)
	if err != nil {
		return nil, fmt.Errorf("staging: failed to find ids: %w", err)
	}
	return ids, nil
}

// Districts returns the sorted, distinct region fragments (one per line of
// the region field) across all records.
func (db *DB) Districts(ctx context.Context) ([]string, error) {
	regions, err := db.distinctRegions(ctx, "")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, r := range regions {
		for _, part := range geocode.Fragments(r) {
			seen[part] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

var columnGap = regexp.MustCompile(`\s{2,}`)

// LeadingSegments returns the sorted, distinct first segments of the regions
// of country, where segments are separated by runs of two or more spaces.
// South African exports pad "DISTRICT<spaces>PROVINCE" this way.
func (db *DB) LeadingSegments(ctx context.Context, country string) ([]string, error) {
	regions, err := db.distinctRegions(ctx, country)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, r := range regions {
		if seg := LeadingSegment(r); seg != "" {
			seen[seg] = struct{}{}
		}
	}
	return sortedKeys(seen), nil
}

// LeadingSegment returns the first gap-separated segment of region.
func LeadingSegment(region string) string {
	for _, part := range columnGap.Split(region, -1) {
		if part = strings.TrimSpace(part); part != "" {
			return part
		}
	}
	return ""
}

func (db *DB) distinctRegions(ctx context.Context, country string) ([]string, error) {
	q := `SELECT DISTINCT region FROM licenses WHERE region IS NOT NULL AND region != ''`
	args := []interface{}{}
	if country != "" {
		q += ` AND country = ?`
		args = append(args, country)
	}

	var regions []string
	if err := db.SelectContext(ctx, &regions, q, args...); err != nil {
		return nil, fmt.Errorf("staging: failed to list regions: %w", err)
	}
	return regions, nil
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
