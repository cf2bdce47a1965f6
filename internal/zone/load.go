package zone

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonmap/internal/logging"
)

// SupportedSchemaRange is the semver constraint a snapshot schemaVersion must meet.
const SupportedSchemaRange = ">= 1.0.0, < 2.0.0"

// countryFileExtensions are the file types LoadCountries reads.
//
//nolint:gochecknoglobals // Read-only lookup table.
var countryFileExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// CheckSchemaVersion validates a snapshot schemaVersion. An empty version is
// accepted and treated as the current schema.
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidSchemaVersion, version, err)
	}

	constraint, err := semver.NewConstraint(SupportedSchemaRange)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("%w %s (supported: %s)", ErrUnsupportedSchema, v, SupportedSchemaRange)
	}
	return nil
}

// Parse decodes a snapshot from YAML or JSON bytes and checks its schema version.
func Parse(ctx context.Context, data []byte) (*Snapshot, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "zone").
		Str("operation", "parse_snapshot").
		Int("data_size_bytes", len(data)).
		Msg("parsing state snapshot")

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptySnapshot
	}

	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	if err := CheckSchemaVersion(snap.SchemaVersion); err != nil {
		return nil, err
	}

	if snap.Data.Countries == nil {
		snap.Data.Countries = make(map[string]*CountryRecord)
	}

	log.Debug().
		Str("component", "zone").
		Str("selected_zone", snap.Application.SelectedZoneName).
		Int("zone_count", len(snap.Data.Countries)).
		Msg("parsed state snapshot")

	return &snap, nil
}

// LoadSnapshot reads and parses the snapshot file at path.
func LoadSnapshot(ctx context.Context, path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	snap, err := Parse(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", path, err)
	}
	return snap, nil
}

// LoadCountries reads one country record per file in dir. The zone name is the
// file name without its extension, so DE.yaml holds zone "DE". Files are read
// concurrently; the first failure cancels the remaining reads.
func LoadCountries(ctx context.Context, dir string) (map[string]*CountryRecord, error) {
	log := logging.FromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading countries directory: %w", err)
	}

	var (
		mu        sync.Mutex
		countries = make(map[string]*CountryRecord, len(entries))
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || !countryFileExtensions[ext] {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		path := filepath.Join(dir, entry.Name())

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			record, loadErr := loadCountryFile(path)
			if loadErr != nil {
				return loadErr
			}
			mu.Lock()
			countries[name] = record
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("component", "zone").
		Str("operation", "load_countries").
		Str("dir", dir).
		Int("zone_count", len(countries)).
		Msg("loaded country records")

	return countries, nil
}

func loadCountryFile(path string) (*CountryRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading country file %s: %w", path, err)
	}

	var record CountryRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding country file %s: %w", path, err)
	}
	return &record, nil
}

// MergeCountries returns a copy of s whose country map holds both the
// snapshot's countries and the given ones. Entries in countries win.
func (s *Snapshot) MergeCountries(countries map[string]*CountryRecord) *Snapshot {
	out := *s
	out.Data.Countries = make(map[string]*CountryRecord, len(s.Data.Countries)+len(countries))
	for name, record := range s.Data.Countries {
		out.Data.Countries[name] = record
	}
	for name, record := range countries {
		out.Data.Countries[name] = record
	}
	return &out
}
