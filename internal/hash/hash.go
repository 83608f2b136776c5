// Package hash produces the two content identifiers used by the store: a
// legacy djb2 fingerprint label and a deterministic xxh3 digest.
package hash

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/fsio"
)

const seed = 5381

// Sum folds the file content into a djb2 accumulator (h = h*33 + byte),
// then folds in the byte length the same way. Deterministic.
func Sum(path string) (uint64, error) {
	f, err := fsio.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	h := uint64(seed)
	var size uint64

	r := bufio.NewReader(f)
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			h = h*33 + uint64(b)
		}
		size += uint64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read %q: %w", path, err)
		}
	}

	h = h*33 + size
	return h, nil
}

// Fingerprint returns the display label stored in version records: the djb2
// accumulator in hex with the wall clock modulo 10000 appended.
//
// The clock suffix makes the label non-deterministic: two check-ins of
// byte-identical content produce different fingerprints. It identifies a
// snapshot in listings and nothing more; integrity checks use Digest.
func Fingerprint(path string) (string, error) {
	h, err := Sum(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%08x%d", h, time.Now().Unix()%10000), nil
}

// Digest returns the deterministic xxh3-128 hex digest of the file content,
// used by the snapshot integrity index.
func Digest(path string) (string, error) {
	data, err := fsio.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}
	return fmt.Sprintf("%x", xxh3.Hash128(data).Bytes()), nil
}

// DigestBytes is Digest for content already in memory.
func DigestBytes(data []byte) string {
	return fmt.Sprintf("%x", xxh3.Hash128(data).Bytes())
}
