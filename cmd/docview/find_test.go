package main_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("matches the last address component", func(t *testing.T) {
		t.Parallel()

		dir := writeDocs(t, nil)
		stdout, _, err := run(t, "--source", dir, "find", "str")

		require.NoError(t, err)
		assert.Equal(t, "dart-core.String  class\n", stdout)
	})

	t.Run("limits results", func(t *testing.T) {
		t.Parallel()

		dir := writeDocs(t, nil)
		stdout, _, err := run(t, "--source", dir, "find", "dart-core", "-n", "2")

		require.NoError(t, err)
		assert.Equal(t, "dart-core  library\ndart-core.Object  class\n", stdout)
	})

	t.Run("reports no matches", func(t *testing.T) {
		t.Parallel()

		dir := writeDocs(t, nil)
		stdout, _, err := run(t, "--source", dir, "find", "zzz")

		require.NoError(t, err)
		assert.Contains(t, stdout, `No addresses match "zzz"`)
	})
}
