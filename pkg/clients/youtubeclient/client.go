// Package youtubeclient wraps the YouTube Data API lookups the daily dose
// feature needs: find a channel by name and fetch its most recent upload.
package youtubeclient

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
)

// Video is the lookup result consumed by the dose service.
type Video struct {
	Title string
	URL   string
}

// Client wraps an authenticated YouTube service.
type Client struct {
	svc *youtube.Service
}

// NewClient creates a client using API-key authentication; the Data API
// search endpoints need no user consent.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key is not set")
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// LatestVideo finds the channel best matching query and returns its most
// recently published video.
func (c *Client) LatestVideo(query string) (*Video, error) {
	channelResp, err := c.svc.Search.List([]string{"id"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Do()
	if err != nil {
		return nil, fmt.Errorf("channel search failed: %w", err)
	}
	if len(channelResp.Items) == 0 {
		return nil, fmt.Errorf("no channel found for %q", query)
	}
	channelID := channelResp.Items[0].Id.ChannelId

	videoResp, err := c.svc.Search.List([]string{"id", "snippet"}).
		ChannelId(channelID).
		Order("date").
		Type("video").
		MaxResults(1).
		Do()
	if err != nil {
		return nil, fmt.Errorf("video search failed: %w", err)
	}
	if len(videoResp.Items) == 0 {
		return nil, fmt.Errorf("channel %q has no videos", query)
	}

	item := videoResp.Items[0]
	return &Video{
		Title: item.Snippet.Title,
		URL:   "https://www.youtube.com/watch?v=" + item.Id.VideoId,
	}, nil
}
