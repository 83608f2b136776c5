package snapshot

import (
	"fmt"
	"path/filepath"
	"sort"

	"golang.org/x/exp/mmap"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/config"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/fsio"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/hash"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/util"
)

// Entry is the recorded digest of one stored snapshot.
type Entry struct {
	Digest string `json:"digest"`
	Size   int64  `json:"size"`
}

// Index maps "<name>/v<N>" to the digest recorded at check-in time.
type Index map[string]Entry

// Damage describes one snapshot that failed verification.
type Damage struct {
	Key    string
	Reason string
}

// IndexKey returns the integrity index key for a snapshot.
func IndexKey(name string, version int) string {
	return fmt.Sprintf("%s/v%d", filepath.Base(name), version)
}

// LoadIndex reads integrity.json. A missing index is empty, not an error.
func LoadIndex(base string) (Index, error) {
	idx := Index{}
	path := config.IntegrityPath(base)
	if !fsio.Exists(path) {
		return idx, nil
	}
	if err := util.ReadJSON(path, &idx); err != nil {
		return nil, fmt.Errorf("failed to read integrity index: %w", err)
	}
	return idx, nil
}

// SaveIndex atomically rewrites integrity.json.
func SaveIndex(base string, idx Index) error {
	if err := util.WriteJSON(config.IntegrityPath(base), idx); err != nil {
		return fmt.Errorf("failed to write integrity index: %w", err)
	}
	return nil
}

// RecordDigest digests the stored snapshot for (name, version) and adds it
// to the index.
func (s *Store) RecordDigest(idx Index, name string, version int) error {
	digest, size, err := DigestSnapshot(s.Path(name, version))
	if err != nil {
		return err
	}
	idx[IndexKey(name, version)] = Entry{Digest: digest, Size: size}
	return nil
}

// DigestSnapshot memory-maps a stored snapshot and returns its xxh3 digest
// and size.
func DigestSnapshot(path string) (string, int64, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to map snapshot %q: %w", path, err)
	}
	defer r.Close()

	data := make([]byte, r.Len())
	if r.Len() > 0 {
		if _, err := r.ReadAt(data, 0); err != nil {
			return "", 0, fmt.Errorf("failed to read snapshot %q: %w", path, err)
		}
	}
	return hash.DigestBytes(data), int64(len(data)), nil
}

// VerifyAll re-digests every indexed snapshot and reports the ones that are
// missing or whose content no longer matches.
func (s *Store) VerifyAll(idx Index) []Damage {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var damaged []Damage
	for _, key := range keys {
		want := idx[key]
		path := filepath.Join(config.VersionsPath(s.Base), filepath.FromSlash(key))
		if !fsio.Exists(path) {
			damaged = append(damaged, Damage{Key: key, Reason: "snapshot missing"})
			continue
		}
		digest, size, err := DigestSnapshot(path)
		if err != nil {
			damaged = append(damaged, Damage{Key: key, Reason: err.Error()})
			continue
		}
		if size != want.Size {
			damaged = append(damaged, Damage{Key: key, Reason: fmt.Sprintf("size %d, recorded %d", size, want.Size)})
			continue
		}
		if digest != want.Digest {
			damaged = append(damaged, Damage{Key: key, Reason: "content digest mismatch"})
		}
	}
	return damaged
}

// RebuildIndex re-digests every snapshot on disk and returns a fresh index.
func (s *Store) RebuildIndex() (Index, error) {
	idx := Index{}
	root := config.VersionsPath(s.Base)

	dirs, err := fsio.ReadDir(root)
	if err != nil {
		if fsio.IsNotExist(err) {
			return idx, nil
		}
		return nil, fmt.Errorf("failed to list versions directory: %w", err)
	}

	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		files, err := fsio.ReadDir(filepath.Join(root, d.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to list versions of %q: %w", d.Name(), err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			path := filepath.Join(root, d.Name(), f.Name())
			digest, size, err := DigestSnapshot(path)
			if err != nil {
				return nil, err
			}
			idx[d.Name()+"/"+f.Name()] = Entry{Digest: digest, Size: size}
		}
	}
	return idx, nil
}
