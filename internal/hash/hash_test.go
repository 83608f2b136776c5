package hash_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/hash"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestSumKnownValues(t *testing.T) {
	tmp := t.TempDir()

	// djb2 over content then length: seed 5381, h = h*33 + b
	cases := []struct {
		content string
		want    uint64
	}{
		{"abc", 6385036782},
		{"", 177573},
	}
	for _, tc := range cases {
		path := writeFile(t, tmp, "f.txt", tc.content)
		got, err := hash.Sum(path)
		if err != nil {
			t.Fatalf("Sum failed: %v", err)
		}
		if got != tc.want {
			t.Errorf("Sum(%q) = %d, want %d", tc.content, got, tc.want)
		}
	}
}

func TestSumMissingFile(t *testing.T) {
	if _, err := hash.Sum(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFingerprintFormat(t *testing.T) {
	tmp := t.TempDir()
	path := writeFile(t, tmp, "f.txt", "abc")

	fp, err := hash.Fingerprint(path)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}

	// the content part is the deterministic djb2 sum in hex; the clock
	// suffix varies
	prefix := fmt.Sprintf("%08x", uint64(6385036782))
	if !strings.HasPrefix(fp, prefix) {
		t.Errorf("fingerprint %q does not start with %q", fp, prefix)
	}
	suffix := strings.TrimPrefix(fp, prefix)
	if suffix == "" || len(suffix) > 4 {
		t.Errorf("unexpected clock suffix %q in %q", suffix, fp)
	}
}

func TestDigestDeterministic(t *testing.T) {
	tmp := t.TempDir()
	a := writeFile(t, tmp, "a.txt", "same content")
	b := writeFile(t, tmp, "b.txt", "same content")
	c := writeFile(t, tmp, "c.txt", "other content")

	da, err := hash.Digest(a)
	if err != nil {
		t.Fatalf("Digest failed: %v", err)
	}
	db, _ := hash.Digest(b)
	dc, _ := hash.Digest(c)

	if da != db {
		t.Errorf("identical content produced different digests: %s vs %s", da, db)
	}
	if da == dc {
		t.Errorf("different content produced the same digest: %s", da)
	}
}
