package snapshot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/repo"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/snapshot"
)

func newStore(t *testing.T) (*snapshot.Store, string) {
	t.Helper()
	tmp := t.TempDir()
	if err := repo.InitAt(tmp); err != nil {
		t.Fatalf("InitAt failed: %v", err)
	}
	return snapshot.NewStore(tmp), tmp
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestSaveAndRetrieve(t *testing.T) {
	store, tmp := newStore(t)
	src := filepath.Join(tmp, "a.txt")
	writeFile(t, src, "version one content")

	if err := store.Save(src, 1); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// later versions share the per-file directory
	writeFile(t, src, "version two content")
	if err := store.Save(src, 2); err != nil {
		t.Fatalf("Save of second version failed: %v", err)
	}

	dest := filepath.Join(tmp, "a.txt")
	if err := store.Retrieve(src, 1, dest); err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	data, _ := os.ReadFile(dest)
	if string(data) != "version one content" {
		t.Errorf("retrieved content %q, want the version one bytes", data)
	}

	if err := store.Retrieve(src, 2, dest); err != nil {
		t.Fatalf("Retrieve failed: %v", err)
	}
	data, _ = os.ReadFile(dest)
	if string(data) != "version two content" {
		t.Errorf("retrieved content %q, want the version two bytes", data)
	}
}

func TestRetrieveMissingSnapshot(t *testing.T) {
	store, tmp := newStore(t)
	err := store.Retrieve("a.txt", 9, filepath.Join(tmp, "a.txt"))
	if !errors.Is(err, repo.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFailedRetrieveLeavesDestinationAlone(t *testing.T) {
	store, tmp := newStore(t)
	dest := filepath.Join(tmp, "a.txt")
	writeFile(t, dest, "working copy")

	if err := store.Retrieve("a.txt", 1, dest); err == nil {
		t.Fatal("expected retrieve of missing snapshot to fail")
	}
	data, _ := os.ReadFile(dest)
	if string(data) != "working copy" {
		t.Errorf("failed retrieve altered the destination: %q", data)
	}
}

func TestIntegrityIndexRoundTrip(t *testing.T) {
	store, tmp := newStore(t)
	src := filepath.Join(tmp, "a.txt")
	writeFile(t, src, "indexed content")
	if err := store.Save(src, 1); err != nil {
		t.Fatal(err)
	}

	idx, err := snapshot.LoadIndex(tmp)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	if len(idx) != 0 {
		t.Fatalf("fresh index should be empty, got %d entries", len(idx))
	}

	if err := store.RecordDigest(idx, src, 1); err != nil {
		t.Fatalf("RecordDigest failed: %v", err)
	}
	if err := snapshot.SaveIndex(tmp, idx); err != nil {
		t.Fatalf("SaveIndex failed: %v", err)
	}

	reloaded, err := snapshot.LoadIndex(tmp)
	if err != nil {
		t.Fatalf("LoadIndex failed: %v", err)
	}
	entry, ok := reloaded[snapshot.IndexKey("a.txt", 1)]
	if !ok {
		t.Fatalf("index entry missing, got %+v", reloaded)
	}
	if entry.Size != int64(len("indexed content")) {
		t.Errorf("entry size = %d, want %d", entry.Size, len("indexed content"))
	}

	if damaged := store.VerifyAll(reloaded); len(damaged) != 0 {
		t.Errorf("expected clean verify, got %+v", damaged)
	}
}

func TestVerifyDetectsCorruption(t *testing.T) {
	store, tmp := newStore(t)
	src := filepath.Join(tmp, "a.txt")
	writeFile(t, src, "original bytes")
	if err := store.Save(src, 1); err != nil {
		t.Fatal(err)
	}

	idx := snapshot.Index{}
	if err := store.RecordDigest(idx, src, 1); err != nil {
		t.Fatal(err)
	}

	// tamper with the stored snapshot, keeping the size
	writeFile(t, store.Path("a.txt", 1), "tampered bytes")

	damaged := store.VerifyAll(idx)
	if len(damaged) != 1 {
		t.Fatalf("expected 1 damaged snapshot, got %+v", damaged)
	}
	if damaged[0].Key != snapshot.IndexKey("a.txt", 1) {
		t.Errorf("wrong damage key: %+v", damaged[0])
	}
}

func TestVerifyDetectsMissingSnapshot(t *testing.T) {
	store, tmp := newStore(t)
	src := filepath.Join(tmp, "a.txt")
	writeFile(t, src, "bytes")
	if err := store.Save(src, 1); err != nil {
		t.Fatal(err)
	}

	idx := snapshot.Index{}
	if err := store.RecordDigest(idx, src, 1); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(store.Path("a.txt", 1)); err != nil {
		t.Fatal(err)
	}

	damaged := store.VerifyAll(idx)
	if len(damaged) != 1 || damaged[0].Reason != "snapshot missing" {
		t.Errorf("expected missing-snapshot damage, got %+v", damaged)
	}
}

func TestRebuildIndex(t *testing.T) {
	store, tmp := newStore(t)
	a := filepath.Join(tmp, "a.txt")
	b := filepath.Join(tmp, "b.txt")
	writeFile(t, a, "content a")
	writeFile(t, b, "content b")
	for v, src := range map[int]string{1: a, 2: a} {
		if err := store.Save(src, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.Save(b, 1); err != nil {
		t.Fatal(err)
	}

	idx, err := store.RebuildIndex()
	if err != nil {
		t.Fatalf("RebuildIndex failed: %v", err)
	}
	if len(idx) != 3 {
		t.Fatalf("expected 3 entries, got %d: %+v", len(idx), idx)
	}
	if damaged := store.VerifyAll(idx); len(damaged) != 0 {
		t.Errorf("rebuilt index should verify clean, got %+v", damaged)
	}
}
