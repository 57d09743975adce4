package config

import (
	"time"

	"bitacora/mediafeed/internal/media"
)

// Constants defining default values for application configuration
const (
	// Channel whose uploads back the groups that carry no explicit playlist.
	DefaultChannelID = "UCG3dyzVNXgbYD4bCR61kMWA"

	DefaultGroupsCSVPath = "./playlists.csv"

	// Items requested per group per fetch cycle. The presentation layer
	// consumes small pages; MaxPageSize caps operator overrides.
	DefaultPageSize = 5
	MaxPageSize     = 50

	// Per-group fetch deadline. A group that misses it is treated as
	// failed without blocking its siblings.
	DefaultFetchTimeout = 12 * time.Second

	DefaultServerPort = 8080
	DefaultServerHost = "" // Empty string means all interfaces

	DefaultLogLevel = "debug"
)

// DefaultGroups returns the built-in playlist groups, used when no CSV
// file overrides them.
func DefaultGroups() []media.Group {
	return []media.Group{
		{ID: "PLqo040G7sAp4SqwAI_5_3VcwEuk8xiMM5", Name: "Patagonia", PlaylistID: "PLqo040G7sAp4SqwAI_5_3VcwEuk8xiMM5"},
		{ID: "PLqo040G7sAp5_HtCb6sDIpK-1bHb8q8RE", Name: "Gente con Pasión", PlaylistID: "PLqo040G7sAp5_HtCb6sDIpK-1bHb8q8RE"},
		{ID: "PLqo040G7sAp7uhQLbCuusvLIO8IPQUBHl", Name: "Casa Rural", PlaylistID: "PLqo040G7sAp7uhQLbCuusvLIO8IPQUBHl"},
		{ID: "PLqo040G7sAp5UDgybfoertiE-9GTfQsbh", Name: "Restauración", PlaylistID: "PLqo040G7sAp5UDgybfoertiE-9GTfQsbh"},
	}
}
