package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"twminer/internal/logger"
)

var (
	ErrTranslateFailed   = errors.New("translation failed")
	ErrUnexpectedPayload = errors.New("unexpected translation payload")
)

// Client translates short texts through the public gtx translate endpoint.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// New returns a Client rooted at baseURL, e.g. https://translate.googleapis.com.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: rc, log: log}
}

// Translate returns text rendered in the target language; the source
// language is detected server side.
func (c *Client) Translate(ctx context.Context, text, target string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     target,
			"dt":     "t",
			"q":      text,
		}).
		Get("/translate_a/single")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranslateFailed, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	out, err := decode(resp.Body())
	if err != nil {
		return "", err
	}
	c.log.Debug().Str("target", target).Int("chars", len(out)).Msg("translated")
	return out, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrTranslateFailed, resp.StatusCode(), body)
}

// decode joins the translated segments of a response shaped like
// [[["Hello","Hola",null,null,1],...],null,"es",...].
func decode(body []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil || len(payload) == 0 {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedPayload, truncate(body))
	}
	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedPayload, err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		s, ok := seg[0].(string)
		if !ok {
			return "", fmt.Errorf("%w: segment is %T", ErrUnexpectedPayload, seg[0])
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func truncate(b []byte) string {
	const limit = 64
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
