// Package meta persists the version history to the versions.meta text file.
//
// The format is line-oriented: a TOTAL_VERSIONS counter plus one pipe-delimited
// FILE= line per record. Comment lines ('#') and blank lines are ignored.
// Parsing is tolerant: malformed lines are skipped, a missing field leaves the
// zero value. COMMENT is the last field and may not contain '|'.
package meta

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/config"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/fsio"
	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/repo"
)

// Save serializes the entire history and replaces versions.meta. The rewrite
// is staged through a temp file in the control directory's temp subdirectory
// and renamed into place, so an interrupted save never truncates the previous
// metadata.
func Save(r *repo.Repository) error {
	var b strings.Builder
	b.WriteString("# VCS Metadata File\n")
	fmt.Fprintf(&b, "TOTAL_VERSIONS=%d\n", r.TotalVersions)
	b.WriteString("\n# File Versions\n")

	for _, rec := range r.History {
		fmt.Fprintf(&b, "FILE=%s|VERSION=%d|TIMESTAMP=%d|SIZE=%d|HASH=%s|COMMENT=%s\n",
			rec.Filename, rec.Version, rec.Timestamp, rec.Size, rec.Hash, rec.Comment)
	}

	tmp, err := fsio.CreateTemp(config.TempPath(r.BasePath), "meta-*")
	if err != nil {
		return fmt.Errorf("failed to stage metadata: %w", err)
	}
	defer fsio.Remove(tmp.Name())

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write metadata: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	if err := fsio.Rename(tmp.Name(), config.MetadataPath(r.BasePath)); err != nil {
		return fmt.Errorf("failed to replace metadata file: %w", err)
	}
	return nil
}

// Load parses versions.meta into the repository's history. A missing file is
// an empty history, not an error. Records are appended in file order, which
// keeps the saved newest-first ordering stable across runs.
func Load(r *repo.Repository) error {
	f, err := fsio.Open(config.MetadataPath(r.BasePath))
	if err != nil {
		if fsio.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to open metadata file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "TOTAL_VERSIONS="):
			n, _ := strconv.Atoi(strings.TrimPrefix(line, "TOTAL_VERSIONS="))
			r.TotalVersions = n
		case strings.HasPrefix(line, "FILE="):
			r.History = append(r.History, parseRecord(line))
		}
		// anything else is skipped
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read metadata file: %w", err)
	}
	return nil
}

// parseRecord parses one FILE= line. Field order is fixed; a field that is
// absent or carries the wrong key is left at its zero value.
func parseRecord(line string) *repo.Record {
	rec := &repo.Record{}
	fields := strings.Split(strings.TrimPrefix(line, "FILE="), "|")

	rec.Filename = fields[0]
	for _, f := range fields[1:] {
		switch {
		case strings.HasPrefix(f, "VERSION="):
			rec.Version, _ = strconv.Atoi(strings.TrimPrefix(f, "VERSION="))
		case strings.HasPrefix(f, "TIMESTAMP="):
			rec.Timestamp, _ = strconv.ParseInt(strings.TrimPrefix(f, "TIMESTAMP="), 10, 64)
		case strings.HasPrefix(f, "SIZE="):
			rec.Size, _ = strconv.ParseInt(strings.TrimPrefix(f, "SIZE="), 10, 64)
		case strings.HasPrefix(f, "HASH="):
			rec.Hash = strings.TrimPrefix(f, "HASH=")
		case strings.HasPrefix(f, "COMMENT="):
			rec.Comment = strings.TrimPrefix(f, "COMMENT=")
		}
	}
	return rec
}
