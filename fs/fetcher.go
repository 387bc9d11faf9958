// Package fs provides directory-based storage for documentation payloads.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"

	"github.com/fwojciec/docview"
)

// Ensure Fetcher implements docview.Fetcher and docview.PayloadLister at
// compile time.
var (
	_ docview.Fetcher       = (*Fetcher)(nil)
	_ docview.PayloadLister = (*Fetcher)(nil)
)

// Fetcher reads payloads from a directory tree.
type Fetcher struct {
	root string
	fsys iofs.FS
}

// NewFetcher creates a Fetcher rooted at dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{root: dir, fsys: os.DirFS(dir)}
}

// Fetch returns the content of the file at path, relative to the root.
// Returns EINVALID for paths escaping the root and ENOTFOUND for missing
// files.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	if err := docview.ValidatePath(path); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := iofs.ReadFile(f.fsys, path)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", docview.Errorf(docview.ENOTFOUND, "payload %s not found in %s", path, f.root)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Paths returns every regular file under the root in lexical order.
func (f *Fetcher) Paths(ctx context.Context) ([]string, error) {
	var paths []string
	err := iofs.WalkDir(f.fsys, ".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
