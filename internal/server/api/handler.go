package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/hlog"

	"bitacora/mediafeed/internal/media"
	"bitacora/mediafeed/internal/pipeline"
	"bitacora/mediafeed/internal/server/pagination"
)

const defaultLimit = 10
const maxLimit = 50

// MediaSource runs the aggregation pipeline and exposes the configured
// groups. FetchAll never fails: upstream errors degrade to an empty
// result, and the handler substitutes placeholder content.
type MediaSource interface {
	FetchAll(ctx context.Context) []media.Item
	Groups() []media.Group
}

// ChannelSource provides channel-level metadata.
type ChannelSource interface {
	ChannelStats(ctx context.Context) (*media.ChannelStats, error)
}

// ItemView is an Item plus the display strings the presentation layer
// renders directly.
type ItemView struct {
	media.Item
	DurationDisplay  string `json:"duration_display"`
	ViewCountDisplay string `json:"view_count_display"`
	LikeCountDisplay string `json:"like_count_display"`
}

// Response structure for the media items endpoint
type Response struct {
	Items      []ItemView `json:"items"`
	NextCursor *string    `json:"next_cursor,omitempty"`
}

// GroupsResponse structure for the groups endpoint
type GroupsResponse struct {
	Groups []media.Group `json:"groups"`
}

// MediaItemsHandler holds dependencies for the media API handlers.
type MediaItemsHandler struct {
	source MediaSource
}

// NewMediaItemsHandler creates a new handler instance.
func NewMediaItemsHandler(source MediaSource) *MediaItemsHandler {
	return &MediaItemsHandler{
		source: source,
	}
}

// GetMediaItems handles requests to fetch the aggregated media list.
// Every request re-runs the full pipeline; nothing is cached between
// invocations.
func (h *MediaItemsHandler) GetMediaItems(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)
	log.Debug().Msg("Processing media items request")

	ctx := r.Context()

	query := r.URL.Query()
	limitStr := query.Get("limit")
	groupID := query.Get("group")
	formStr := query.Get("form")
	cursorStr := query.Get("cursor")

	limit := defaultLimit
	if limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil || parsedLimit <= 0 || parsedLimit > maxLimit {
			log.Warn().Err(err).Str("limit", limitStr).Msg("Invalid 'limit' parameter value")
			http.Error(w, fmt.Sprintf("Invalid 'limit' parameter: must be between 1 and %d", maxLimit), http.StatusBadRequest)
			return
		}
		limit = parsedLimit
	}

	var wantShort *bool
	switch formStr {
	case "":
	case "short":
		v := true
		wantShort = &v
	case "long":
		v := false
		wantShort = &v
	default:
		log.Warn().Str("form", formStr).Msg("Invalid 'form' parameter value")
		http.Error(w, "Invalid 'form' parameter: use 'short' or 'long'", http.StatusBadRequest)
		return
	}

	var cursorTimestamp time.Time
	var cursorID string
	if cursorStr != "" {
		ts, id, err := pagination.DecodeCursor(cursorStr)
		if err != nil {
			log.Warn().Err(err).Str("cursor", cursorStr).Msg("Invalid 'cursor' parameter")
			http.Error(w, "Invalid 'cursor' parameter", http.StatusBadRequest)
			return
		}
		cursorTimestamp = ts
		cursorID = id
	}

	items := h.source.FetchAll(ctx)
	if len(items) == 0 {
		log.Warn().Msg("Aggregation yielded no items, serving placeholder content")
		items = pipeline.Placeholders()
	}

	items = pipeline.FilterByGroup(items, groupID)
	if wantShort != nil {
		items = pipeline.FilterByForm(items, *wantShort)
	}

	if cursorStr != "" {
		items = itemsAfter(items, cursorTimestamp, cursorID)
	}

	var nextCursorStr *string
	hasNextPage := len(items) > limit
	actualItems := items
	if hasNextPage {
		actualItems = items[:limit]
		lastItem := actualItems[len(actualItems)-1]
		cursor := pagination.EncodeCursor(lastItem.PublishedAt.UTC(), lastItem.ID)
		nextCursorStr = &cursor
	}

	response := Response{
		Items:      itemViews(actualItems),
		NextCursor: nextCursorStr,
	}

	writeJSON(w, r, response)
}

// GetGroups returns the configured groups, prefixed by the synthetic
// aggregate view.
func (h *MediaItemsHandler) GetGroups(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)
	log.Debug().Msg("Processing groups request")

	groups := make([]media.Group, 0, len(h.source.Groups())+1)
	groups = append(groups, media.Group{ID: media.GroupAll, Name: "Todos"})
	groups = append(groups, h.source.Groups()...)

	writeJSON(w, r, GroupsResponse{Groups: groups})
}

// ChannelHandler serves channel-level metadata.
type ChannelHandler struct {
	source ChannelSource
}

// NewChannelHandler creates a new handler instance.
func NewChannelHandler(source ChannelSource) *ChannelHandler {
	return &ChannelHandler{
		source: source,
	}
}

// GetChannel handles requests for channel statistics.
func (h *ChannelHandler) GetChannel(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)
	log.Debug().Msg("Processing channel stats request")

	stats, err := h.source.ChannelStats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error fetching channel stats from upstream")
		http.Error(w, "Upstream unavailable", http.StatusBadGateway)
		return
	}

	writeJSON(w, r, stats)
}

// itemsAfter resumes the aggregated list after the cursor position. If
// the cursor item disappeared between requests, it resumes at the first
// strictly older entry.
func itemsAfter(items []media.Item, ts time.Time, id string) []media.Item {
	for i, item := range items {
		if item.PublishedAt.Equal(ts) && item.ID == id {
			return items[i+1:]
		}
	}
	for i, item := range items {
		if item.PublishedAt.Before(ts) {
			return items[i:]
		}
	}
	return nil
}

func itemViews(items []media.Item) []ItemView {
	views := make([]ItemView, len(items))
	for i, item := range items {
		views[i] = ItemView{
			Item:             item,
			DurationDisplay:  media.FormatDuration(item.DurationSeconds),
			ViewCountDisplay: media.FormatCount(item.ViewCount),
			LikeCountDisplay: media.FormatCount(item.LikeCount),
		}
	}
	return views
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	log := hlog.FromRequest(r)

	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error marshaling JSON response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, writeErr := w.Write(jsonBytes); writeErr != nil {
		log.Error().Err(writeErr).Msg("Error writing JSON response body to client")
		// Cannot reliably send a different status code here.
	}
	log.Debug().Int("bytes_written", len(jsonBytes)).Msg("Response completed")
}
