package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"bitacora/mediafeed/internal/media"
)

// Sentinel errors for permanent upstream conditions.
var (
	ErrChannelNotFound = errors.New("channel not found")
)

// Duration code substituted when the detail lookup is missing an id,
// e.g. because the video was deleted between the two calls.
const missingDuration = "PT0S"

// Client fetches playlist items and channel metadata from the YouTube
// Data API v3. All credentials and identifiers are injected through the
// constructor; nothing is hard-coded in fetch logic.
type Client struct {
	service   *youtube.Service
	channelID string
}

// NewClient creates an API client authenticated by key.
func NewClient(ctx context.Context, apiKey, channelID string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &Client{
		service:   service,
		channelID: channelID,
	}, nil
}

// ResolveUploadsPlaylist looks up the channel's canonical uploads
// playlist identifier.
func (c *Client) ResolveUploadsPlaylist(ctx context.Context) (string, error) {
	call := c.service.Channels.List([]string{"contentDetails"}).
		Id(c.channelID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return "", fmt.Errorf("resolve uploads playlist for channel %s: %w", c.channelID, err)
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("channel %s: %w", c.channelID, ErrChannelNotFound)
	}

	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

// ListGroupItems fetches up to pageSize entries for one group, then
// enriches them with duration and engagement metadata via a single
// batched detail lookup. Any upstream error aborts the whole group;
// the caller decides how to degrade.
func (c *Client) ListGroupItems(ctx context.Context, group media.Group, pageSize int64) ([]media.Item, error) {
	playlistID := group.PlaylistID
	if playlistID == "" {
		resolved, err := c.ResolveUploadsPlaylist(ctx)
		if err != nil {
			return nil, err
		}
		playlistID = resolved
	}

	listCall := c.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(pageSize).
		Context(ctx)

	listResp, err := listCall.Do()
	if err != nil {
		return nil, fmt.Errorf("list playlist %s: %w", playlistID, err)
	}
	if len(listResp.Items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(listResp.Items))
	for _, item := range listResp.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil {
			continue
		}
		ids = append(ids, item.Snippet.ResourceId.VideoId)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	detailCall := c.service.Videos.List([]string{"contentDetails", "statistics"}).
		Id(ids...).
		Context(ctx)

	detailResp, err := detailCall.Do()
	if err != nil {
		return nil, fmt.Errorf("fetch video details for playlist %s: %w", playlistID, err)
	}

	return buildItems(group, listResp.Items, detailResp.Items), nil
}

// ChannelStats fetches channel-level metadata and counters.
func (c *Client) ChannelStats(ctx context.Context) (*media.ChannelStats, error) {
	call := c.service.Channels.List([]string{"snippet", "statistics"}).
		Id(c.channelID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("fetch channel stats for %s: %w", c.channelID, err)
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("channel %s: %w", c.channelID, ErrChannelNotFound)
	}

	channel := resp.Items[0]
	stats := &media.ChannelStats{ID: channel.Id}
	if channel.Snippet != nil {
		stats.Title = channel.Snippet.Title
		stats.Description = channel.Snippet.Description
		stats.CustomURL = channel.Snippet.CustomUrl
		stats.ThumbnailURL = bestThumbnail(channel.Snippet.Thumbnails)
	}
	if channel.Statistics != nil {
		stats.SubscriberCount = channel.Statistics.SubscriberCount
		stats.VideoCount = channel.Statistics.VideoCount
		stats.ViewCount = channel.Statistics.ViewCount
	}

	return stats, nil
}

// buildItems merges a page of playlist entries with their batched detail
// records. Entries whose id is absent from the details keep zeroed
// metadata instead of being dropped.
func buildItems(group media.Group, entries []*youtube.PlaylistItem, details []*youtube.Video) []media.Item {
	detailByID := make(map[string]*youtube.Video, len(details))
	for _, d := range details {
		detailByID[d.Id] = d
	}

	items := make([]media.Item, 0, len(entries))
	for _, entry := range entries {
		if entry.Snippet == nil || entry.Snippet.ResourceId == nil {
			continue
		}

		item := media.Item{
			ID:          entry.Snippet.ResourceId.VideoId,
			Title:       entry.Snippet.Title,
			Description: entry.Snippet.Description,
			GroupID:     group.ID,
		}

		if t, err := time.Parse(time.RFC3339, entry.Snippet.PublishedAt); err == nil {
			item.PublishedAt = t
		}
		item.ThumbnailURL = bestThumbnail(entry.Snippet.Thumbnails)

		durationCode := missingDuration
		if detail, ok := detailByID[item.ID]; ok {
			if detail.ContentDetails != nil && detail.ContentDetails.Duration != "" {
				durationCode = detail.ContentDetails.Duration
			}
			if detail.Statistics != nil {
				item.ViewCount = detail.Statistics.ViewCount
				item.LikeCount = detail.Statistics.LikeCount
			}
		}
		item.DurationSeconds = media.ParseDuration(durationCode)

		items = append(items, item)
	}

	return items
}

// bestThumbnail picks the highest-quality thumbnail offered.
func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, candidate := range []*youtube.Thumbnail{t.Maxres, t.Standard, t.High, t.Medium, t.Default} {
		if candidate != nil && candidate.Url != "" {
			return candidate.Url
		}
	}
	return ""
}
