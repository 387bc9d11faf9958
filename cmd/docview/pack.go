package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/fs"
	"github.com/fwojciec/docview/sqlite"
)

// Run executes the pack command.
func (c *PackCmd) Run(deps *Dependencies) error {
	src, closeSrc, err := openPackSource(c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}
	defer closeSrc()

	dest, commit, abort, err := openPackDest(c.Dest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	n, err := docview.CopyPayloads(deps.Ctx, src, dest, func(path string, n, total int) {
		deps.Logger.Debug("pack", "path", path, "n", n, "total", total)
	})
	if err != nil {
		_ = abort()
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if err := commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Packed %d payloads into %s\n", n, c.Dest)
	return nil
}

func openPackSource(path string) (docview.PayloadSource, func() error, error) {
	if isPacked(path) {
		db := sqlite.NewDB(path)
		db.ReadOnly = true
		if err := db.Open(); err != nil {
			return nil, nil, err
		}
		return sqlite.NewPayloadService(db), db.Close, nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if !info.IsDir() {
		return nil, nil, docview.Errorf(docview.EINVALID, "%s is not a directory", path)
	}
	return fs.NewFetcher(path), func() error { return nil }, nil
}

// openPackDest returns the writer for path with functions that finish or
// discard the write.
func openPackDest(path string) (w docview.PayloadWriter, commit, abort func() error, err error) {
	if isPacked(path) {
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return nil, nil, nil, err
		}
		return sqlite.NewPayloadService(db), db.Close, db.Close, nil
	}
	store := fs.NewStore(filepath.Dir(path), filepath.Base(path))
	return store, store.Commit, store.Abort, nil
}
