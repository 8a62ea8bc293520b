package adapters

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"microdrop-launcher/internal/core"
	"microdrop-launcher/internal/types"
)

// profileRecordDoc is the on-disk shape of one registry entry. The
// timestamp travels as a string (null for never-launched profiles) so
// files written by earlier launcher versions stay readable.
type profileRecordDoc struct {
	Path          string  `yaml:"path"`
	UsedTimestamp *string `yaml:"used_timestamp"`
}

// ProfileStoreAdapter persists the profile registry as a YAML list.
type ProfileStoreAdapter struct{}

func NewProfileStoreAdapter() ProfileStoreAdapter {
	return ProfileStoreAdapter{}
}

// Load reads the registry file. A missing file is an empty registry.
func (a ProfileStoreAdapter) Load(path string) ([]types.ProfileRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read profiles file").
			WithCause(err)
	}
	var docs []profileRecordDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse profiles yaml").
			WithCause(err)
	}
	records := make([]types.ProfileRecord, 0, len(docs))
	for _, doc := range docs {
		if doc.Path == "" {
			continue
		}
		record := types.ProfileRecord{Path: doc.Path}
		if doc.UsedTimestamp != nil {
			if used := parseTimeFlexible(*doc.UsedTimestamp); !used.IsZero() {
				record.Used = &used
			}
		}
		records = append(records, record)
	}
	return core.NormalizeRegistry(records), nil
}

// Save writes the registry most-recently-used first with duplicates
// collapsed, creating the parent directory when needed.
func (a ProfileStoreAdapter) Save(path string, records []types.ProfileRecord) error {
	normalized := core.NormalizeRegistry(records)
	docs := make([]profileRecordDoc, 0, len(normalized))
	for _, record := range normalized {
		doc := profileRecordDoc{Path: record.Path}
		if record.Used != nil {
			stamp := record.Used.UTC().Format(time.RFC3339)
			doc.UsedTimestamp = &stamp
		}
		docs = append(docs, doc)
	}
	data, err := yaml.Marshal(docs)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode profiles yaml").
			WithCause(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create profiles directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write profiles file").
			WithCause(err)
	}
	return nil
}
