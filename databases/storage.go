package databases

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/lembremed/lembremed-api/config"
)

// Storage loads and persists the whole document. Every operation touches
// the entire file; there is no partial or incremental persistence.
type Storage interface {
	Load() (Document, error)
	Save(doc Document) error
	Mutate(fn func(doc Document) error) error
}

type jsonStorage struct {
	path string
	mu   sync.RWMutex
}

// NewStorage uses the values from the config and returns a document storage
func NewStorage(conf *config.Config) Storage {
	return &jsonStorage{path: conf.DatabasePath}
}

// Load reads and parses the document file. A missing, unreadable or
// invalid file is an error for the request, never an empty document.
func (s *jsonStorage) Load() (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// Save serializes the full document and replaces the file on disk.
func (s *jsonStorage) Save(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Mutate runs a load-mutate-save sequence under the write lock so two
// concurrent mutations cannot interleave. When fn returns an error the
// document is not written back.
func (s *jsonStorage) Mutate(fn func(doc Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.save(doc)
}

func (s *jsonStorage) load() (Document, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &StorageError{Op: "read", Path: s.path, Err: err}
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &StorageError{Op: "parse", Path: s.path, Err: err}
	}
	return doc, nil
}

// save writes to a temp file in the same directory and renames it into
// place, so a reader never observes a torn document.
func (s *jsonStorage) save(doc Document) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &StorageError{Op: "marshal", Path: s.path, Err: err}
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".db-*.json")
	if err != nil {
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
