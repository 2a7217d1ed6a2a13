package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/miloscript/monify/internal/model"
)

// FileStore reads and writes the profile document directly on disk. The CLI
// and tests use it; the desktop shell goes through HostBridge instead.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore for the document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the document. A missing file means no state was
// ever saved and returns ok=false.
func (s *FileStore) Load() (*model.Document, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading document: %w", err)
	}

	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("parsing document %s: %w", s.path, err)
	}
	return &doc, true, nil
}

// Save writes the document atomically: marshal, write to a temp file in the
// same directory, then rename over the target. A crash mid-write leaves the
// previous document intact.
func (s *FileStore) Save(doc *model.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating document dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".monify-*")
	if err != nil {
		return fmt.Errorf("creating temp document: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp document: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing document: %w", err)
	}
	return nil
}
