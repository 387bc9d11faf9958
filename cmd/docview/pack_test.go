package main_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("packs a directory into a database that serves the same pages", func(t *testing.T) {
		t.Parallel()

		dir := writeDocs(t, nil)
		db := filepath.Join(t.TempDir(), "docs.db")

		stdout, _, err := run(t, "pack", dir, db)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Packed 7 payloads")

		stdout, _, err = run(t, "--source", db, "show", "dart-core.String")
		require.NoError(t, err)
		assert.Contains(t, stdout, "# String (class)")
		assert.Contains(t, stdout, "- int length")
	})

	t.Run("unpacks a database into a directory", func(t *testing.T) {
		t.Parallel()

		dir := writeDocs(t, nil)
		tmp := t.TempDir()
		db := filepath.Join(tmp, "docs.db")
		out := filepath.Join(tmp, "unpacked")

		_, _, err := run(t, "pack", dir, db)
		require.NoError(t, err)
		_, _, err = run(t, "pack", db, out)
		require.NoError(t, err)

		for name, content := range docsFixture {
			got, err := os.ReadFile(filepath.Join(out, name))
			require.NoError(t, err)
			assert.Equal(t, content, string(got), name)
		}
		_, err = os.Stat(out + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("fails on a missing source", func(t *testing.T) {
		t.Parallel()

		tmp := t.TempDir()
		_, stderr, err := run(t, "pack", filepath.Join(tmp, "missing"), filepath.Join(tmp, "out.db"))

		require.Error(t, err)
		assert.Contains(t, stderr, "error:")
	})
}
