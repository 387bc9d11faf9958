package docview_test

import (
	"testing"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/yaml"
	"github.com/stretchr/testify/require"
)

// record decodes a YAML or JSON document for use as a payload.
func record(t *testing.T, src string) docview.Record {
	t.Helper()
	rec, err := yaml.NewDecoder().Decode(src)
	require.NoError(t, err)
	return rec
}
