// Package repo holds the in-memory version history and the on-disk store
// layout it is persisted under.
package repo

import (
	"errors"
	"fmt"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/config"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/fsio"
)

// ErrNotFound marks a missing version, snapshot or source file.
var ErrNotFound = errors.New("not found")

// Record is one immutable snapshot of one file.
type Record struct {
	Filename  string
	Version   int
	Timestamp int64
	Size      int64
	Hash      string
	Comment   string
}

// Repository owns the version history for one tracked project.
// History is ordered newest-first: check-in prepends.
type Repository struct {
	BasePath string

	// TotalVersions counts check-ins across all files. Display only;
	// numbering is always derived per file from History.
	TotalVersions int

	History []*Record
}

// NewRepository constructs a Repository pointing at base.
// It does NOT touch the filesystem.
func NewRepository(base string) *Repository {
	return &Repository{BasePath: base}
}

// InitAt creates the on-disk store layout: control directory, versions and
// temp subdirectories, empty metadata file and config.json.
// Fails if the control directory already exists.
func InitAt(base string) error {
	vcsPath := config.VCSPath(base)
	if err := fsio.Mkdir(vcsPath, 0o755); err != nil {
		return fmt.Errorf("failed to create control directory %q: %w", vcsPath, err)
	}

	for _, d := range []string{config.VersionsPath(base), config.TempPath(base)} {
		if err := fsio.Mkdir(d, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", d, err)
		}
	}

	header := "# VCS Metadata File\nTOTAL_VERSIONS=0\n"
	if err := fsio.WriteFile(config.MetadataPath(base), []byte(header), 0o644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	if err := config.WriteRepoConfig(base); err != nil {
		return fmt.Errorf("failed to write repo config: %w", err)
	}

	return nil
}

// ExistsAt reports whether a control directory is present at base.
// It checks presence only, not validity.
func ExistsAt(base string) bool {
	return config.Exists(base)
}

// LatestVersion returns the highest version number recorded for name,
// or 0 when the file is untracked.
func (r *Repository) LatestVersion(name string) int {
	latest := 0
	for _, rec := range r.History {
		if rec.Filename == name && rec.Version > latest {
			latest = rec.Version
		}
	}
	return latest
}

// FindVersion returns the exact (name, version) record or ErrNotFound.
func (r *Repository) FindVersion(name string, version int) (*Record, error) {
	for _, rec := range r.History {
		if rec.Filename == name && rec.Version == version {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("version %d of %q: %w", version, name, ErrNotFound)
}

// VersionsOf returns all records for name in History order (newest first).
func (r *Repository) VersionsOf(name string) []*Record {
	var out []*Record
	for _, rec := range r.History {
		if rec.Filename == name {
			out = append(out, rec)
		}
	}
	return out
}

// Prepend adds a freshly created record at the head of History and bumps
// the running check-in counter.
func (r *Repository) Prepend(rec *Record) {
	r.History = append([]*Record{rec}, r.History...)
	r.TotalVersions++
}
