package util

import (
	"encoding/json"
	"path/filepath"

	"github.com/arnab37seal/VCS---A-Simple-Version-Control-System/internal/fsio"
)

// WriteJSON writes a JSON file atomically (temp file + rename).
var WriteJSON = func(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := fsio.CreateTemp(dir, "tmp-*.json")
	if err != nil {
		return err
	}
	defer fsio.Remove(tmp.Name()) // ensure cleanup on error

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return fsio.Rename(tmp.Name(), path)
}

// ReadJSON reads a JSON file and unmarshals it into v
var ReadJSON = func(path string, v any) error {
	data, err := fsio.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
