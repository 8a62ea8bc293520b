package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"microdrop-launcher/internal/types"
)

// CacheFileName holds the latest known application version under the
// user config directory.
const CacheFileName = "latest-version.yml"

// VersionCacheAdapter persists the latest-version record as a small
// YAML file.
type VersionCacheAdapter struct {
	Path string
}

func NewVersionCacheAdapter(path string) VersionCacheAdapter {
	return VersionCacheAdapter{Path: path}
}

// Load returns the cached record. A missing file yields a zero value;
// a corrupted file is deleted and also yields a zero value, so a bad
// cache can never block launching.
func (a VersionCacheAdapter) Load() (types.CachedVersion, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.CachedVersion{}, nil
		}
		return types.CachedVersion{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read version cache").
			WithCause(err)
	}
	var cached types.CachedVersion
	if err := yaml.Unmarshal(data, &cached); err != nil {
		log.Warn().Str("path", a.Path).Msg("removing corrupted version cache")
		if removeErr := os.Remove(a.Path); removeErr != nil {
			log.Error().Err(removeErr).Msg("could not delete corrupted version cache")
		}
		return types.CachedVersion{}, nil
	}
	return cached, nil
}

// Save overwrites the cached record, creating the parent directory when
// needed.
func (a VersionCacheAdapter) Save(cached types.CachedVersion) error {
	data, err := yaml.Marshal(cached)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode version cache").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create version cache directory").
			WithCause(err)
	}
	if err := os.WriteFile(a.Path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write version cache").
			WithCause(err)
	}
	return nil
}
