// Package snapshot stores and retrieves whole-file version copies under the
// control directory, and keeps a digest index over them for integrity checks.
package snapshot

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/config"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/fsio"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/repo"
)

const copyBufSize = 32 * 1024

// Store is the snapshot store rooted at a repository base path.
type Store struct {
	Base string
}

func NewStore(base string) *Store {
	return &Store{Base: base}
}

// Path returns the on-disk location of a snapshot:
// <base>/.vcs/versions/<name>/v<N>.
func (s *Store) Path(name string, version int) string {
	return filepath.Join(config.SnapshotDir(s.Base, name), fmt.Sprintf("v%d", version))
}

// Save copies the current content of sourcePath into the versioned location,
// creating the per-file directory if absent.
func (s *Store) Save(sourcePath string, version int) error {
	dir := config.SnapshotDir(s.Base, sourcePath)
	if err := fsio.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create version directory %q: %w", dir, err)
	}
	dst := filepath.Join(dir, fmt.Sprintf("v%d", version))
	if err := copyFile(sourcePath, dst); err != nil {
		return fmt.Errorf("failed to store snapshot v%d of %q: %w", version, sourcePath, err)
	}
	return nil
}

// Retrieve copies the stored snapshot back over dest. The content is staged
// next to dest and renamed into place, so a failed retrieve never leaves dest
// truncated. Returns repo.ErrNotFound if the snapshot does not exist.
func (s *Store) Retrieve(name string, version int, dest string) error {
	src := s.Path(name, version)
	if !fsio.Exists(src) {
		return fmt.Errorf("snapshot v%d of %q: %w", version, name, repo.ErrNotFound)
	}

	tmp, err := fsio.CreateTemp(filepath.Dir(dest), "tmp-*")
	if err != nil {
		return fmt.Errorf("failed to stage restore of %q: %w", dest, err)
	}
	tmpName := tmp.Name()
	tmp.Close()
	defer fsio.Remove(tmpName)

	if err := copyFile(src, tmpName); err != nil {
		return fmt.Errorf("failed to restore snapshot v%d of %q: %w", version, name, err)
	}
	if err := fsio.Rename(tmpName, dest); err != nil {
		return fmt.Errorf("failed to replace %q: %w", dest, err)
	}
	return nil
}

// copyFile streams src to dst in fixed-size chunks, so memory use is
// independent of file size.
func copyFile(src, dst string) error {
	in, err := fsio.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsio.Create(dst)
	if err != nil {
		return err
	}

	buf := make([]byte, copyBufSize)
	if _, err := io.CopyBuffer(out, in, buf); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
