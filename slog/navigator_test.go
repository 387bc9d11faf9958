package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/mock"
	dvslog "github.com/fwojciec/docview/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingNavigator_HandleLink(t *testing.T) {
	t.Parallel()

	t.Run("logs resolved location", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Navigator{
			HandleLinkFn: func(ctx context.Context, rawURI string) (bool, error) {
				return true, nil
			},
			CurrentLocationFn: func() docview.Location {
				return docview.ParseLocation("dart-core.String@id_length")
			},
		}

		nav := dvslog.NewLoggingNavigator(inner, logger)
		ok, err := nav.HandleLink(context.Background(), "#dart-core.String.length")

		require.NoError(t, err)
		assert.True(t, ok)
		output := buf.String()
		assert.Contains(t, output, "msg=navigate")
		assert.Contains(t, output, "uri=#dart-core.String.length")
		assert.Contains(t, output, "resolved=true")
		assert.Contains(t, output, "location=dart-core.String@id_length")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Navigator{
			HandleLinkFn: func(ctx context.Context, rawURI string) (bool, error) {
				return false, errors.New("unavailable")
			},
			CurrentLocationFn: func() docview.Location {
				return docview.Location{Library: docview.HomeAddress}
			},
		}

		nav := dvslog.NewLoggingNavigator(inner, logger)
		_, err := nav.HandleLink(context.Background(), "#x")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "resolved=false")
		assert.Contains(t, output, "err=unavailable")
	})

	t.Run("delegates current page", func(t *testing.T) {
		t.Parallel()

		home, err := docview.NewHome(libraryList(t))
		require.NoError(t, err)
		inner := &mock.Navigator{
			CurrentPageFn: func() docview.Item { return home },
		}

		nav := dvslog.NewLoggingNavigator(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		assert.Same(t, home, nav.CurrentPage())
	})
}

func libraryList(t *testing.T) docview.Record {
	t.Helper()
	rec := docview.NewRecord()
	rec.Set("libraries", []any{})
	return rec
}
