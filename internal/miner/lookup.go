package miner

import (
	"context"
	"fmt"
	"strings"

	"twminer/internal/cmdlog"
	"twminer/internal/model"
)

// GetUser looks up a profile by handle. On failure it prints a single
// diagnostic line and returns the error.
func (c *Client) GetUser(ctx context.Context, handle string) (model.UserProfile, error) {
	var profile model.UserProfile
	err := cmdlog.Run(c.log, string(model.QueryLookup), func() error {
		var err error
		profile, err = c.api.LookupUser(ctx, handle)
		return err
	})
	results := 1
	if err != nil {
		results = 0
	}
	c.record(ctx, model.QueryLookup, handle, results, err)
	if err != nil {
		c.fail(ctx, MsgSearchError)
		return model.UserProfile{}, err
	}
	return profile, nil
}

// PrintUser prints the profile attributes in fixed order.
func (c *Client) PrintUser(p model.UserProfile) {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "Screen Name: %s\n", p.ScreenName)
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "ID: %d\n", p.ID)
	fmt.Fprintf(&b, "Location: %s\n", p.Location)
	fmt.Fprintf(&b, "Date Created: %s\n", p.CreatedAt.UTC().Format(dateLayout))
	fmt.Fprintf(&b, "Description: %s\n", p.Description)
	fmt.Fprintf(&b, "Is Verified? %t\n", p.Verified)
	fmt.Fprintf(&b, "Is This Account Protected? %t\n", p.Protected)
	fmt.Fprintf(&b, "URL: %s\n\n", p.URL)
	c.println(b.String())
}
