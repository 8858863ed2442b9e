package xclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"

	"twminer/internal/logger"
	"twminer/internal/model"
)

// AuthDiagnostic is the line shown when a session cannot be built.
const AuthDiagnostic = "There has been an issue with verification."

// Options tunes the session transport.
type Options struct {
	RequestTimeout    time.Duration
	RPS               float64
	Burst             int
	MaxRateLimitWaits int
	VerifyCredentials bool
	// BaseTransport carries the signed requests; nil uses a clone of
	// http.DefaultTransport.
	BaseTransport http.RoundTripper

	// sleep replaces the rate-limit wait; nil waits on a timer.
	sleep sleepFunc
}

// Session is an authenticated handle to the v1.1 API.
type Session struct {
	api *twitter.Client
}

// NewSession signs every request with creds (OAuth 1.0a, HMAC-SHA1) and
// optionally verifies them with a handshake call. Canceling ctx aborts the
// session's in-flight calls and rate-limit waits.
func NewSession(ctx context.Context, creds model.Credentials, opts Options, log *logger.Logger) (*Session, error) {
	if !creds.Complete() {
		return nil, ErrMissingCredentials
	}

	base := opts.BaseTransport
	if base == nil {
		tr := http.DefaultTransport.(*http.Transport).Clone()
		tr.ResponseHeaderTimeout = opts.RequestTimeout
		base = tr
	}

	baseCtx := context.WithValue(ctx, oauth1.HTTPClient, &http.Client{Transport: base})
	signed := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret).
		Client(baseCtx, oauth1.NewToken(creds.AccessToken, creds.AccessSecret))
	limited := newRateLimitTransport(ctx, signed.Transport, opts.RPS, opts.Burst, opts.MaxRateLimitWaits, log)
	if opts.sleep != nil {
		limited.sleep = opts.sleep
	}
	signed.Transport = limited

	s := &Session{api: twitter.NewClient(signed)}
	if opts.VerifyCredentials {
		if err := s.verify(); err != nil {
			return nil, fmt.Errorf("verify credentials: %w", err)
		}
	}
	return s, nil
}

func (s *Session) verify() error {
	_, resp, err := s.api.Accounts.VerifyCredentials(&twitter.AccountVerifyParams{
		SkipStatus:      twitter.Bool(true),
		IncludeEntities: twitter.Bool(false),
	})
	return mapError(resp, err)
}

// Authenticator builds sessions and reports failures on Out instead of
// returning them.
type Authenticator struct {
	Options Options
	Out     io.Writer
	Log     *logger.Logger
}

// Authenticate returns a session for creds, or nil after printing a single
// diagnostic line when the session cannot be built.
func (a Authenticator) Authenticate(ctx context.Context, creds model.Credentials) *Session {
	s, err := NewSession(ctx, creds, a.Options, a.Log)
	if err != nil {
		a.Log.Error().Err(err).Str("kind", Kind(err)).Msg("authentication failed")
		fmt.Fprintln(a.Out, AuthDiagnostic)
		return nil
	}
	a.Log.Info().Bool("verified", a.Options.VerifyCredentials).Msg("session ready")
	return s
}
