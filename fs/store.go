package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docview"
)

// Ensure Store implements docview.PayloadWriter at compile time.
var _ docview.PayloadWriter = (*Store)(nil)

// Store writes payloads into a directory with atomic update semantics.
// Payloads are saved to a temporary directory, then moved into place on
// Commit.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// PutPayload writes the payload below the temporary directory.
func (s *Store) PutPayload(ctx context.Context, p *docview.Payload) error {
	if err := p.Validate(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(p.Path))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(p.Content), 0644)
}

// Commit replaces the output directory with the temporary one.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything written since the last Commit.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
