package xclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dghubble/go-twitter/twitter"
)

var (
	ErrNoSession          = errors.New("no authenticated session")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrSuspended          = errors.New("account suspended")
	ErrForbidden          = errors.New("forbidden")
	ErrRateLimited        = errors.New("rate limited")
	ErrBadRequest         = errors.New("bad request")
	ErrTransport          = errors.New("transport failure")
)

// v1.1 error codes, see the platform's response code table.
var codeErrors = map[int]error{
	25:  ErrBadRequest,
	32:  ErrUnauthorized,
	34:  ErrNotFound,
	44:  ErrBadRequest,
	50:  ErrNotFound,
	63:  ErrSuspended,
	64:  ErrSuspended,
	88:  ErrRateLimited,
	89:  ErrUnauthorized,
	135: ErrUnauthorized,
	136: ErrForbidden,
	179: ErrForbidden,
	195: ErrBadRequest,
	215: ErrUnauthorized,
}

func statusError(code int) error {
	switch {
	case code == http.StatusBadRequest:
		return ErrBadRequest
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests || code == 420:
		return ErrRateLimited
	default:
		return ErrTransport
	}
}

// mapError folds the (response, error) pair returned by the API library into
// one of the sentinel errors above, keeping the original as a wrapped cause.
func mapError(resp *http.Response, err error) error {
	var apiErr twitter.APIError
	if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 {
		if sentinel, ok := codeErrors[apiErr.Errors[0].Code]; ok {
			return fmt.Errorf("%w: %w", sentinel, err)
		}
	}
	if resp != nil && resp.StatusCode >= http.StatusBadRequest {
		if err == nil {
			return fmt.Errorf("%w: http %d", statusError(resp.StatusCode), resp.StatusCode)
		}
		return fmt.Errorf("%w: %w", statusError(resp.StatusCode), err)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}

// Kind returns a short label naming the failure class of err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoSession):
		return "no_session"
	case errors.Is(err, ErrMissingCredentials):
		return "missing_credentials"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrSuspended):
		return "suspended"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, ErrBadRequest):
		return "bad_request"
	case errors.Is(err, ErrTransport):
		return "transport"
	default:
		return "other"
	}
}
