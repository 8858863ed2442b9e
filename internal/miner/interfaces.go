package miner

import (
	"context"

	"twminer/internal/model"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/miner_mock.go -package=mock

// API is the read surface of the X API used by the menu flows.
type API interface {
	SearchRecent(ctx context.Context, query string, count int) ([]model.Tweet, error)
	UserTimeline(ctx context.Context, screenName string, count int) ([]model.Tweet, error)
	LookupUser(ctx context.Context, screenName string) (model.UserProfile, error)
}

// Translator renders text in a target language.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// History records issued queries.
type History interface {
	Record(ctx context.Context, e model.QueryEvent) error
}
