package docview_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/docview"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docview.Errorf(docview.ENOTFOUND, "payload %q not found", "dart-core.json")

	assert.Equal(t, docview.ENOTFOUND, docview.ErrorCode(err))
	assert.Equal(t, "payload \"dart-core.json\" not found", docview.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("library dart-core: %w", docview.Errorf(docview.EMALFORMED, "bad"))

	assert.Equal(t, docview.EMALFORMED, docview.ErrorCode(err))
	assert.Equal(t, "bad", docview.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, docview.EINTERNAL, docview.ErrorCode(err))
	assert.Equal(t, "Internal error.", docview.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docview.ErrorCode(nil))
	assert.Empty(t, docview.ErrorMessage(nil))
}
