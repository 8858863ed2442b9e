package xclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"twminer/internal/logger"
	"twminer/internal/model"
)

// rewriteTransport sends every request to the test server, keeping the path.
type rewriteTransport struct {
	target *url.URL
}

func (r rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = r.target.Scheme
	out.URL.Host = r.target.Host
	out.Host = r.target.Host
	return http.DefaultTransport.RoundTrip(out)
}

var testCreds = model.Credentials{
	ConsumerKey:    "ck",
	ConsumerSecret: "cs",
	AccessToken:    "at",
	AccessSecret:   "as",
}

func newTestSession(t *testing.T, h http.HandlerFunc, verify bool) (*Session, error) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	target, err := url.Parse(srv.URL)
	require.NoError(t, err)

	return NewSession(context.Background(), testCreds, Options{
		RequestTimeout:    time.Second,
		RPS:               1000,
		Burst:             10,
		MaxRateLimitWaits: 3,
		VerifyCredentials: verify,
		BaseTransport:     rewriteTransport{target: target},
		sleep:             func(context.Context, time.Duration) error { return nil },
	}, logger.Nop())
}
