package store

import (
	"encoding/json"
	"errors"
	"os"
)

// documentFile reads and rewrites one whole JSON document. Every mutation
// serializes the entire document and truncates the file, which keeps the
// on-disk layout compatible with the legacy flat-file documents.
type documentFile struct {
	path string
}

// load decodes the document into v. An absent file means an empty store.
func (d documentFile) load(v interface{}) error {
	data, err := os.ReadFile(d.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (d documentFile) save(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(d.path, data, 0o644)
}
