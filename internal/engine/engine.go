// Package engine implements the versioning operations: check-in, check-out,
// list, rollback, status and verify. It is the only writer of History.
package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/config"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/fsio"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/hash"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/meta"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/repo"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/snapshot"
)

// UnknownHash is recorded when fingerprinting fails; check-in proceeds anyway.
const UnknownHash = "unknown"

// Engine composes the repository, metadata store and snapshot store.
type Engine struct {
	Repo      *repo.Repository
	Snapshots *snapshot.Store
}

// Open loads the persisted history at base into a fresh Engine.
func Open(base string) (*Engine, error) {
	r := repo.NewRepository(base)
	if err := meta.Load(r); err != nil {
		return nil, fmt.Errorf("failed to load repository at %q: %w", base, err)
	}
	return &Engine{
		Repo:      r,
		Snapshots: snapshot.NewStore(base),
	}, nil
}

// CheckIn snapshots the current content of name as the next version and
// persists the updated history. Returns the new version number.
func (e *Engine) CheckIn(name, comment string) (int, error) {
	fi, err := fsio.StatFile(name)
	if err != nil {
		return 0, fmt.Errorf("source file %q: %w", name, repo.ErrNotFound)
	}

	next := e.Repo.LatestVersion(name) + 1

	if err := e.Snapshots.Save(name, next); err != nil {
		return 0, err
	}

	// Fingerprint failure degrades to a sentinel label rather than
	// aborting the check-in.
	label, err := hash.Fingerprint(name)
	if err != nil {
		label = UnknownHash
	}

	e.Repo.Prepend(&repo.Record{
		Filename:  name,
		Version:   next,
		Timestamp: time.Now().Unix(),
		Size:      fi.Size(),
		Hash:      label,
		Comment:   sanitizeComment(comment),
	})

	if err := meta.Save(e.Repo); err != nil {
		return 0, err
	}

	if err := e.recordIntegrity(name, next); err != nil {
		return 0, err
	}

	return next, nil
}

// CheckOut restores the stored content of (name, version) over the working
// file. History is not touched.
func (e *Engine) CheckOut(name string, version int) error {
	if _, err := e.Repo.FindVersion(name, version); err != nil {
		return err
	}
	return e.Snapshots.Retrieve(name, version, name)
}

// List returns all records for name, newest first. An untracked file yields
// an empty slice, not an error.
func (e *Engine) List(name string) []*repo.Record {
	return e.Repo.VersionsOf(name)
}

// Rollback restores version over the working file, then records that
// restoration as a brand-new version. History only ever grows. On check-in
// failure the working file is left at the rolled-back content.
func (e *Engine) Rollback(name string, version int) (int, error) {
	if _, err := e.Repo.FindVersion(name, version); err != nil {
		return 0, err
	}
	if err := e.Snapshots.Retrieve(name, version, name); err != nil {
		return 0, err
	}
	return e.CheckIn(name, fmt.Sprintf("Rollback to version %d", version))
}

func (e *Engine) recordIntegrity(name string, version int) error {
	idx, err := snapshot.LoadIndex(e.Repo.BasePath)
	if err != nil {
		return err
	}
	if err := e.Snapshots.RecordDigest(idx, name, version); err != nil {
		return err
	}
	return snapshot.SaveIndex(e.Repo.BasePath, idx)
}

// sanitizeComment keeps a comment from corrupting its own metadata line: the
// format defines no escaping, so '|' and line breaks are replaced.
func sanitizeComment(comment string) string {
	if comment == "" {
		return config.DefaultComment
	}
	comment = strings.ReplaceAll(comment, "|", "/")
	comment = strings.ReplaceAll(comment, "\n", " ")
	comment = strings.ReplaceAll(comment, "\r", " ")
	return comment
}
