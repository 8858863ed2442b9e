package xclient

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"twminer/internal/logger"
	"twminer/internal/metrics"
)

// defaultWindow is the length of a v1.1 rate-limit window, used when the
// response carries no reset hint.
const defaultWindow = 15 * time.Minute

// sleepFunc blocks for d or until ctx is done.
type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// rateLimitTransport paces outgoing requests and, when the platform reports
// an exhausted window, sleeps until the window resets and sends the request
// again. The next transport signs every attempt afresh.
//
// Requests without a context of their own are bound to ctx, so canceling it
// aborts both in-flight calls and window waits.
type rateLimitTransport struct {
	ctx      context.Context
	next     http.RoundTripper
	limiter  *rate.Limiter
	maxWaits int // 0 waits forever
	log      *logger.Logger

	now   func() time.Time
	sleep sleepFunc
}

func newRateLimitTransport(ctx context.Context, next http.RoundTripper, rps float64, burst, maxWaits int, log *logger.Logger) *rateLimitTransport {
	if rps <= 0 {
		rps = 1
	}
	if burst < 1 {
		burst = 1
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return &rateLimitTransport{
		ctx:      ctx,
		next:     next,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		maxWaits: maxWaits,
		log:      log,
		now:      time.Now,
		sleep:    sleepCtx,
	}
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// the API library builds requests without a context
	if req.Context().Done() == nil {
		req = req.WithContext(t.ctx)
	}
	ctx := req.Context()
	for waits := 0; ; waits++ {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		resp, err := t.next.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if !isRateLimited(resp) || !replayable(req) {
			return resp, nil
		}
		if t.maxWaits > 0 && waits >= t.maxWaits {
			return resp, nil
		}

		wait := t.resetDelay(resp)
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		metrics.IncRateLimitWait()
		t.log.Warn().
			Str("path", req.URL.Path).
			Dur("wait", wait).
			Int("attempt", waits+1).
			Msg("rate limit reached, waiting for window reset")
		if err := t.sleep(ctx, wait); err != nil {
			return nil, err
		}
	}
}

func isRateLimited(resp *http.Response) bool {
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == 420
}

func replayable(req *http.Request) bool {
	return req.Body == nil || req.Body == http.NoBody
}

// resetDelay reads x-rate-limit-reset (epoch seconds), then Retry-After,
// and falls back to a full window.
func (t *rateLimitTransport) resetDelay(resp *http.Response) time.Duration {
	if v := resp.Header.Get("x-rate-limit-reset"); v != "" {
		if epoch, err := strconv.ParseInt(v, 10, 64); err == nil {
			d := time.Unix(epoch, 0).Sub(t.now())
			if d < 0 {
				d = 0
			}
			return d + time.Second
		}
	}
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
		if at, err := http.ParseTime(v); err == nil {
			if d := at.Sub(t.now()); d > 0 {
				return d
			}
			return 0
		}
	}
	return defaultWindow
}
