package xclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twminer/internal/logger"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func stubResponse(code int, header http.Header) *http.Response {
	if header == nil {
		header = http.Header{}
	}
	return &http.Response{StatusCode: code, Header: header, Body: io.NopCloser(strings.NewReader(""))}
}

func newTestTransport(next http.RoundTripper, maxWaits int) (*rateLimitTransport, *[]time.Duration) {
	var slept []time.Duration
	tr := newRateLimitTransport(context.Background(), next, 1000, 10, maxWaits, logger.Nop())
	tr.now = func() time.Time { return time.Unix(1_000, 0) }
	tr.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return tr, &slept
}

func TestRateLimitTransportWaitsUntilReset(t *testing.T) {
	calls := 0
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			h := http.Header{}
			h.Set("x-rate-limit-reset", strconv.Itoa(1_060))
			return stubResponse(http.StatusTooManyRequests, h), nil
		}
		return stubResponse(http.StatusOK, nil), nil
	})
	tr, slept := newTestTransport(next, 0)

	req := httptest.NewRequest(http.MethodGet, "https://api.example/1.1/x.json", nil)
	resp, err := tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []time.Duration{61 * time.Second}, *slept)
}

func TestRateLimitTransportGivesUpAfterMaxWaits(t *testing.T) {
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusTooManyRequests, nil), nil
	})
	tr, slept := newTestTransport(next, 2)

	resp, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "https://api.example/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Len(t, *slept, 2)
	assert.Equal(t, defaultWindow, (*slept)[0])
}

func TestRateLimitTransportPassesThrough(t *testing.T) {
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusNotFound, nil), nil
	})
	tr, slept := newTestTransport(next, 0)

	resp, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "https://api.example/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, *slept)
}

func TestRateLimitTransportDoesNotReplayBodies(t *testing.T) {
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusTooManyRequests, nil), nil
	})
	tr, slept := newTestTransport(next, 0)

	req := httptest.NewRequest(http.MethodPost, "https://api.example/", strings.NewReader("x=1"))
	resp, err := tr.RoundTrip(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Empty(t, *slept)
}

func TestResetDelayFallbacks(t *testing.T) {
	tr, _ := newTestTransport(nil, 0)

	h := http.Header{}
	h.Set("x-rate-limit-reset", "900") // already passed
	assert.Equal(t, time.Second, tr.resetDelay(stubResponse(429, h)))

	h = http.Header{}
	h.Set("Retry-After", "7")
	assert.Equal(t, 7*time.Second, tr.resetDelay(stubResponse(429, h)))

	assert.Equal(t, defaultWindow, tr.resetDelay(stubResponse(429, nil)))
}

func TestRateLimitTransportWaitEndsWithSession(t *testing.T) {
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return stubResponse(http.StatusTooManyRequests, nil), nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	tr := newRateLimitTransport(ctx, next, 1000, 10, 0, logger.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := tr.RoundTrip(httptest.NewRequest(http.MethodGet, "https://api.example/", nil))
		done <- err
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("rate-limit wait ignored session cancellation")
	}
}

func TestRateLimitTransportBindsSessionContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var got context.Context
	next := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Context()
		return stubResponse(http.StatusOK, nil), nil
	})
	tr := newRateLimitTransport(ctx, next, 1000, 10, 0, logger.Nop())

	req, err := http.NewRequest(http.MethodGet, "https://api.example/", nil)
	require.NoError(t, err)
	_, err = tr.RoundTrip(req)
	require.NoError(t, err)
	assert.NotNil(t, got.Done())

	cancel()
	assert.ErrorIs(t, got.Err(), context.Canceled)
}

func TestSleepCtx(t *testing.T) {
	assert.NoError(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.ErrorIs(t, sleepCtx(ctx, time.Hour), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
