package batch

import (
	"fmt"

	"github.com/lerenn/gh-issue-generator/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=store.go -destination=mocks/store.gen.go -package=mocks

// Store persists the pending batch and reads or writes batch documents.
type Store interface {
	// Load reads the pending batch. A missing file is an empty batch.
	Load() (*Batch, error)

	// Save writes the pending batch.
	Save(b *Batch) error

	// Import reads the document at path.
	Import(path string) (*Batch, error)

	// Export writes b as a document at path.
	Export(b *Batch, path string) error

	// Clear deletes the pending batch.
	Clear() error
}

type realStore struct {
	fs   fs.FS
	path string
}

// NewStore creates a store keeping the pending batch at path.
func NewStore(fs fs.FS, path string) Store {
	return &realStore{fs: fs, path: path}
}

// Load reads the pending batch.
func (s *realStore) Load() (*Batch, error) {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to check batch file: %w", err)
	}
	if !exists {
		return New(), nil
	}

	return s.Import(s.path)
}

// Save writes the pending batch.
func (s *realStore) Save(b *Batch) error {
	return s.Export(b, s.path)
}

// Clear deletes the pending batch file.
func (s *realStore) Clear() error {
	if err := s.fs.Remove(s.path); err != nil {
		return fmt.Errorf("failed to remove batch file: %w", err)
	}
	return nil
}

// Import reads the document at path.
func (s *realStore) Import(path string) (*Batch, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	drafts, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return New(drafts...), nil
}

// Export writes b as a document at path.
func (s *realStore) Export(b *Batch, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := Marshal(b.Drafts(), format)
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}

	if err := s.fs.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write batch file: %w", err)
	}

	return nil
}
