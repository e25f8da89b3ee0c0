package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/seolens/seolens"
	"github.com/seolens/seolens/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns result on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries after transient failures", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			if calls < 3 {
				return "", seolens.Errorf(seolens.EUNAVAILABLE, "temporarily unavailable")
			}
			return "<html></html>", nil
		}

		html, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(_ context.Context, _ string) (string, error) {
			calls++
			return "", seolens.Errorf(seolens.EUNAVAILABLE, "down")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)
		require.Error(t, err)
		assert.Equal(t, seolens.EUNAVAILABLE, seolens.ErrorCode(err))
		assert.Equal(t, 4, calls, "1 initial + 3 retries")
	})

	t.Run("logs each retry attempt", func(t *testing.T) {
		t.Parallel()

		var logged int
		logger := func(format string, args ...any) { logged++ }
		fetch := func(_ context.Context, _ string) (string, error) {
			return "", seolens.Errorf(seolens.EUNAVAILABLE, "down")
		}

		_, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, noDelays)
		require.Error(t, err)
		assert.Equal(t, 3, logged)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, error) {
			cancel()
			return "", seolens.Errorf(seolens.EUNAVAILABLE, "down")
		}

		_, err := crawl.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Minute})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	delays := crawl.DefaultRetryDelays()
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, delays)
}
