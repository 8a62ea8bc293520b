package ports

import "microdrop-launcher/internal/types"

// VersionCachePort persists the latest known application version along
// with the user's ignore preference for it.
type VersionCachePort interface {
	// Load returns the cached record, or a zero value when no cache
	// exists. A corrupted cache file is removed and treated as
	// absent.
	Load() (types.CachedVersion, error)

	// Save overwrites the cached record.
	Save(cached types.CachedVersion) error
}
