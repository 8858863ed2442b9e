package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTweet(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"plain", "hello world", "hello world"},
		{"url", "read this https://t.co/abc123 now", "read this now"},
		{"www", "see www.example.com/x?y=1", "see"},
		{"retweet marker", "RT @gopher: generics are here", "@gopher: generics are here"},
		{"fav marker", "FAV this one", "this one"},
		{"hashtag kept", "#RT is a tag", "#RT is a tag"},
		{"mention kept", "thanks @RT", "thanks @RT"},
		{"inside word kept", "ARTS and CRAFTS", "ARTS and CRAFTS"},
		{"whitespace", "  a \n\t b  ", "a b"},
		{"only link", "https://t.co/x", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanTweet(tc.in))
		})
	}
}

func TestIsEnglish(t *testing.T) {
	assert.True(t, IsEnglish("en"))
	assert.True(t, IsEnglish("EN"))
	assert.False(t, IsEnglish("es"))
	assert.False(t, IsEnglish("und"))
	assert.False(t, IsEnglish(""))
}
