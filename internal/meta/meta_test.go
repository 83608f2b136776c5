package meta_test

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/config"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/fsio"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/meta"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/repo"
)

func newRepo(t *testing.T) *repo.Repository {
	t.Helper()
	tmp := t.TempDir()
	if err := repo.InitAt(tmp); err != nil {
		t.Fatalf("InitAt failed: %v", err)
	}
	return repo.NewRepository(tmp)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	r := newRepo(t)
	r.Prepend(&repo.Record{Filename: "a.txt", Version: 1, Timestamp: 1700000001, Size: 10, Hash: "17c93edee42", Comment: "first"})
	r.Prepend(&repo.Record{Filename: "b.txt", Version: 1, Timestamp: 1700000002, Size: 20, Hash: "deadbeef7", Comment: ""})
	r.Prepend(&repo.Record{Filename: "a.txt", Version: 2, Timestamp: 1700000003, Size: 12, Hash: "unknown", Comment: "second change"})

	if err := meta.Save(r); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := repo.NewRepository(r.BasePath)
	if err := meta.Load(loaded); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.TotalVersions != r.TotalVersions {
		t.Errorf("TotalVersions = %d, want %d", loaded.TotalVersions, r.TotalVersions)
	}
	if !reflect.DeepEqual(loaded.History, r.History) {
		t.Errorf("history changed across save/load:\n got %+v\nwant %+v", loaded.History, r.History)
	}
}

func TestLoadPreservesOrderAcrossRuns(t *testing.T) {
	r := newRepo(t)
	r.Prepend(&repo.Record{Filename: "a.txt", Version: 1})
	r.Prepend(&repo.Record{Filename: "a.txt", Version: 2})
	if err := meta.Save(r); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// two load/save cycles must not reverse the history
	for i := 0; i < 2; i++ {
		next := repo.NewRepository(r.BasePath)
		if err := meta.Load(next); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if next.History[0].Version != 2 {
			t.Fatalf("cycle %d: newest record is v%d, want v2", i, next.History[0].Version)
		}
		if err := meta.Save(next); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
}

func TestLoadMissingFileIsEmptyHistory(t *testing.T) {
	r := newRepo(t)
	if err := os.Remove(config.MetadataPath(r.BasePath)); err != nil {
		t.Fatal(err)
	}

	if err := meta.Load(r); err != nil {
		t.Fatalf("Load of missing file should succeed, got %v", err)
	}
	if len(r.History) != 0 || r.TotalVersions != 0 {
		t.Errorf("expected empty history, got %d records", len(r.History))
	}
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	r := newRepo(t)
	content := "# VCS Metadata File\n" +
		"TOTAL_VERSIONS=2\n" +
		"\n" +
		"garbage line that matches nothing\n" +
		"FILE=a.txt|VERSION=1|TIMESTAMP=1700000000|SIZE=5|HASH=abc1234|COMMENT=ok\n" +
		"SOMETHING=else\n" +
		"FILE=b.txt|VERSION=2\n"
	if err := os.WriteFile(config.MetadataPath(r.BasePath), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := meta.Load(r); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(r.History) != 2 {
		t.Fatalf("expected 2 records, got %d", len(r.History))
	}
	if r.TotalVersions != 2 {
		t.Errorf("TotalVersions = %d, want 2", r.TotalVersions)
	}

	full := r.History[0]
	if full.Filename != "a.txt" || full.Version != 1 || full.Size != 5 || full.Hash != "abc1234" || full.Comment != "ok" {
		t.Errorf("fully populated record parsed wrong: %+v", full)
	}

	// missing fields stay at their zero values
	partial := r.History[1]
	if partial.Filename != "b.txt" || partial.Version != 2 {
		t.Errorf("partial record parsed wrong: %+v", partial)
	}
	if partial.Timestamp != 0 || partial.Size != 0 || partial.Hash != "" || partial.Comment != "" {
		t.Errorf("missing fields should be zero: %+v", partial)
	}
}

func TestSaveFailureLeavesOldMetadataIntact(t *testing.T) {
	r := newRepo(t)
	r.Prepend(&repo.Record{Filename: "a.txt", Version: 1, Comment: "kept"})
	if err := meta.Save(r); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	before, err := os.ReadFile(config.MetadataPath(r.BasePath))
	if err != nil {
		t.Fatal(err)
	}

	// simulate a failed replace: the staged temp file never lands
	origRename := fsio.Rename
	fsio.Rename = func(_, _ string) error { return errors.New("simulated rename error") }
	defer func() { fsio.Rename = origRename }()

	r.Prepend(&repo.Record{Filename: "a.txt", Version: 2, Comment: "lost"})
	if err := meta.Save(r); err == nil {
		t.Fatal("expected Save to fail")
	}

	after, err := os.ReadFile(config.MetadataPath(r.BasePath))
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("failed save corrupted the existing metadata file")
	}
}
