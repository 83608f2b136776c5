package config

import (
	"path/filepath"
	"time"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/fsio"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/util"
)

const IsDev = false

const (
	VCSDir        = ".vcs"
	VersionsDir   = "versions"
	TempDir       = "temp"
	MetadataFile  = "versions.meta"
	IntegrityFile = "integrity.json"
	ConfigFile    = "config.json"
)

const (
	DefaultComment = "No comment provided"
	DefaultHash    = "djb2"
)

// RepoConfig is the config.json stored inside the control directory.
type RepoConfig struct {
	Created int64  `json:"created"`
	Hash    string `json:"hash"`
}

// VCSPath returns the control directory path for a repository root.
func VCSPath(base string) string {
	return filepath.Join(base, VCSDir)
}

func VersionsPath(base string) string {
	return filepath.Join(base, VCSDir, VersionsDir)
}

func TempPath(base string) string {
	return filepath.Join(base, VCSDir, TempDir)
}

func MetadataPath(base string) string {
	return filepath.Join(base, VCSDir, MetadataFile)
}

func IntegrityPath(base string) string {
	return filepath.Join(base, VCSDir, IntegrityFile)
}

func ConfigPath(base string) string {
	return filepath.Join(base, VCSDir, ConfigFile)
}

// SnapshotDir returns the per-file version directory. Snapshots are keyed by
// the base name of the tracked file.
func SnapshotDir(base, name string) string {
	return filepath.Join(VersionsPath(base), filepath.Base(name))
}

// WriteRepoConfig writes a fresh config.json for a newly initialized repository.
func WriteRepoConfig(base string) error {
	cfg := RepoConfig{
		Created: time.Now().Unix(),
		Hash:    DefaultHash,
	}
	return util.WriteJSON(ConfigPath(base), cfg)
}

// SelectedHash returns the configured hash label algorithm.
// Falls back to "djb2" if not specified or config is missing.
func SelectedHash(base string) string {
	var cfg RepoConfig
	if err := util.ReadJSON(ConfigPath(base), &cfg); err != nil {
		return DefaultHash
	}
	if cfg.Hash == "" {
		return DefaultHash
	}
	return cfg.Hash
}

// Exists reports whether a repository control directory is present at base.
func Exists(base string) bool {
	return fsio.IsDir(VCSPath(base))
}
