package core

import (
	"sort"
	"time"

	"microdrop-launcher/internal/types"
)

// NormalizeRegistry returns the records ordered most-recently-used
// first with duplicate paths collapsed. The first occurrence of a path
// wins, matching the on-disk policy that the freshest entry is listed
// first. Records that have never been used sort after all used ones,
// keeping their relative order.
func NormalizeRegistry(records []types.ProfileRecord) []types.ProfileRecord {
	sorted := make([]types.ProfileRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Used, sorted[j].Used
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	seen := map[string]struct{}{}
	out := make([]types.ProfileRecord, 0, len(sorted))
	for _, record := range sorted {
		if _, ok := seen[record.Path]; ok {
			continue
		}
		seen[record.Path] = struct{}{}
		out = append(out, record)
	}
	return out
}

// AddProfile appends a record for path (unused timestamp) and
// re-normalizes. Adding an already-registered path is a no-op apart
// from re-normalization.
func AddProfile(records []types.ProfileRecord, path string) []types.ProfileRecord {
	for _, record := range records {
		if record.Path == path {
			return NormalizeRegistry(records)
		}
	}
	return NormalizeRegistry(append(records, types.ProfileRecord{Path: path}))
}

// RemoveProfile drops every record whose path equals path.
func RemoveProfile(records []types.ProfileRecord, path string) []types.ProfileRecord {
	out := make([]types.ProfileRecord, 0, len(records))
	for _, record := range records {
		if record.Path == path {
			continue
		}
		out = append(out, record)
	}
	return NormalizeRegistry(out)
}

// TouchProfile sets the used timestamp of the record for path and
// re-normalizes, moving it to the front of the registry.
func TouchProfile(records []types.ProfileRecord, path string, used time.Time) []types.ProfileRecord {
	out := make([]types.ProfileRecord, len(records))
	copy(out, records)
	for i := range out {
		if out[i].Path == path {
			stamp := used
			out[i].Used = &stamp
		}
	}
	return NormalizeRegistry(out)
}
