package media

import "time"

// GroupAll is the synthetic aggregate view. It is never the ID of a
// configured group; filtering by it returns the full item set.
const GroupAll = "all"

// Item represents a single video or podcast episode produced by the
// aggregation pipeline. Items are built fresh on every fetch cycle and
// are not mutated after aggregation attaches the ShortForm flag.
type Item struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	PublishedAt     time.Time `json:"published_at"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	DurationSeconds int       `json:"duration_seconds"`
	ViewCount       uint64    `json:"view_count"`
	LikeCount       uint64    `json:"like_count"`
	GroupID         string    `json:"group_id"`
	ShortForm       bool      `json:"short_form"`
}

// Group is a named bucket of media items. An empty PlaylistID means the
// group covers the channel's uploads playlist, resolved at fetch time.
type Group struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PlaylistID string `json:"playlist_id,omitempty"`
}

// ChannelStats holds channel-level metadata and counters.
type ChannelStats struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	CustomURL       string `json:"custom_url"`
	ThumbnailURL    string `json:"thumbnail_url"`
	SubscriberCount uint64 `json:"subscriber_count"`
	VideoCount      uint64 `json:"video_count"`
	ViewCount       uint64 `json:"view_count"`
}
