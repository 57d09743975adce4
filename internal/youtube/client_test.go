package youtube

import (
	"context"
	"testing"
	"time"

	"google.golang.org/api/youtube/v3"

	"bitacora/mediafeed/internal/media"
)

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(context.Background(), "", "UCG3dyzVNXgbYD4bCR61kMWA"); err == nil {
		t.Error("NewClient() should fail without an API key")
	}
}

func playlistEntry(id, title, published string) *youtube.PlaylistItem {
	return &youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{
			ResourceId:  &youtube.ResourceId{VideoId: id},
			Title:       title,
			PublishedAt: published,
			Thumbnails: &youtube.ThumbnailDetails{
				High:    &youtube.Thumbnail{Url: "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"},
				Default: &youtube.Thumbnail{Url: "https://i.ytimg.com/vi/" + id + "/default.jpg"},
			},
		},
	}
}

func TestBuildItemsMergesDetails(t *testing.T) {
	group := media.Group{ID: "patagonia", Name: "Patagonia", PlaylistID: "PLone"}
	entries := []*youtube.PlaylistItem{
		playlistEntry("vid1", "Ruta 40", "2023-12-15T15:30:00Z"),
		playlistEntry("vid2", "Casa rural", "2023-11-20T14:00:00Z"),
	}
	details := []*youtube.Video{
		{
			Id:             "vid1",
			ContentDetails: &youtube.VideoContentDetails{Duration: "PT15M30S"},
			Statistics:     &youtube.VideoStatistics{ViewCount: 15432, LikeCount: 1200},
		},
		{
			Id:             "vid2",
			ContentDetails: &youtube.VideoContentDetails{Duration: "PT22M15S"},
			Statistics:     &youtube.VideoStatistics{ViewCount: 8765, LikeCount: 950},
		},
	}

	items := buildItems(group, entries, details)

	if len(items) != 2 {
		t.Fatalf("buildItems() returned %d items, want 2", len(items))
	}

	first := items[0]
	if first.ID != "vid1" || first.DurationSeconds != 930 || first.ViewCount != 15432 {
		t.Errorf("first item = %+v, want vid1/930s/15432 views", first)
	}
	if first.GroupID != "patagonia" {
		t.Errorf("GroupID = %q, want %q", first.GroupID, "patagonia")
	}
	want := time.Date(2023, 12, 15, 15, 30, 0, 0, time.UTC)
	if !first.PublishedAt.Equal(want) {
		t.Errorf("PublishedAt = %v, want %v", first.PublishedAt, want)
	}
	if first.ThumbnailURL != "https://i.ytimg.com/vi/vid1/hqdefault.jpg" {
		t.Errorf("ThumbnailURL = %q, want the high-quality variant", first.ThumbnailURL)
	}
}

func TestBuildItemsKeepsEntriesWithMissingDetails(t *testing.T) {
	group := media.Group{ID: "patagonia"}
	entries := []*youtube.PlaylistItem{
		playlistEntry("vid1", "Ruta 40", "2023-12-15T15:30:00Z"),
		playlistEntry("gone", "Video borrado", "2023-10-01T10:00:00Z"),
	}
	details := []*youtube.Video{
		{
			Id:             "vid1",
			ContentDetails: &youtube.VideoContentDetails{Duration: "PT15M30S"},
			Statistics:     &youtube.VideoStatistics{ViewCount: 10},
		},
	}

	items := buildItems(group, entries, details)

	if len(items) != 2 {
		t.Fatalf("buildItems() returned %d items, want 2 (missing detail must not drop the entry)", len(items))
	}

	missing := items[1]
	if missing.DurationSeconds != 0 || missing.ViewCount != 0 || missing.LikeCount != 0 {
		t.Errorf("missing-detail item = %+v, want zeroed metadata", missing)
	}
}

func TestBestThumbnail(t *testing.T) {
	tests := []struct {
		name string
		in   *youtube.ThumbnailDetails
		want string
	}{
		{"nil set", nil, ""},
		{"empty set", &youtube.ThumbnailDetails{}, ""},
		{
			"maxres wins",
			&youtube.ThumbnailDetails{
				Maxres:  &youtube.Thumbnail{Url: "maxres.jpg"},
				Default: &youtube.Thumbnail{Url: "default.jpg"},
			},
			"maxres.jpg",
		},
		{
			"falls through to default",
			&youtube.ThumbnailDetails{Default: &youtube.Thumbnail{Url: "default.jpg"}},
			"default.jpg",
		},
		{
			"medium beats default",
			&youtube.ThumbnailDetails{
				Medium:  &youtube.Thumbnail{Url: "medium.jpg"},
				Default: &youtube.Thumbnail{Url: "default.jpg"},
			},
			"medium.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestThumbnail(tt.in); got != tt.want {
				t.Errorf("bestThumbnail() = %q, want %q", got, tt.want)
			}
		})
	}
}
