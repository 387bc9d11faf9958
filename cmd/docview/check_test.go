package main_test

import (
	"testing"

	"github.com/fwojciec/docview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes on a consistent documentation set", func(t *testing.T) {
		t.Parallel()

		dir := writeDocs(t, nil)
		stdout, _, err := run(t, "--source", dir, "check")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Checked 5 pages")
		assert.Contains(t, stdout, "0 broken references, 0 failed pages")
	})

	t.Run("reports dangling comment links", func(t *testing.T) {
		t.Parallel()

		dir := writeDocs(t, map[string]string{"dart-async.Future.json": `{
  "name": "Future",
  "qualifiedName": "dart-async.Future",
  "comment": "<p>See <a href=\"#dart-async.Missing\">Missing</a>.</p>"
}`})
		stdout, _, err := run(t, "--source", dir, "check")

		require.Error(t, err)
		assert.Equal(t, docview.EINVALID, docview.ErrorCode(err))
		assert.Contains(t, stdout, "dart-async.Future: unresolved comment reference dart-async.Missing")
	})

	t.Run("reports pages that fail to load", func(t *testing.T) {
		t.Parallel()

		dir := writeDocs(t, map[string]string{"dart-async.Future.json": "- not\n- a mapping\n"})
		_, stderr, err := run(t, "--source", dir, "check")

		require.Error(t, err)
		assert.Contains(t, stderr, "skip dart-async.Future")
	})
}
