package config

import "errors"

var (
	ErrInvalidSearchConfig    = errors.New("invalid search configuration")
	ErrInvalidAPIConfig       = errors.New("invalid api configuration")
	ErrInvalidTranslateConfig = errors.New("invalid translate configuration")
)

// validate checks the merged config. Missing credentials are not an error
// here: the authenticator reports them when the session is built.
func (c Config) validate() error {
	if c.Search.Count < 1 || c.Search.Count > 100 {
		return ErrInvalidSearchConfig
	}
	if c.API.RequestTimeout <= 0 || c.API.RPS <= 0 || c.API.Burst < 1 || c.API.MaxRateLimitWaits < 0 {
		return ErrInvalidAPIConfig
	}
	if c.Translate.BaseURL == "" || c.Translate.Target == "" {
		return ErrInvalidTranslateConfig
	}
	return nil
}
