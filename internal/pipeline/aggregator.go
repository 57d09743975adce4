package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"bitacora/mediafeed/internal/media"
)

// GroupFetcher retrieves one group's page of items from the upstream
// metadata API.
type GroupFetcher interface {
	ListGroupItems(ctx context.Context, group media.Group, pageSize int64) ([]media.Item, error)
}

// Aggregator runs the fetch -> classify -> merge pipeline over all
// configured groups. It keeps no state between invocations; every call
// to FetchAll re-executes the full pipeline.
type Aggregator struct {
	fetcher  GroupFetcher
	groups   []media.Group
	pageSize int64
	timeout  time.Duration
}

// New creates an aggregator over the given groups.
func New(fetcher GroupFetcher, groups []media.Group, pageSize int64, timeout time.Duration) (*Aggregator, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("group fetcher cannot be nil")
	}
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("fetch timeout must be positive")
	}

	return &Aggregator{
		fetcher:  fetcher,
		groups:   groups,
		pageSize: pageSize,
		timeout:  timeout,
	}, nil
}

// Groups returns the configured groups.
func (a *Aggregator) Groups() []media.Group {
	return a.groups
}

// FetchAll fetches every configured group concurrently, waits for all
// of them, and merges the results. A group that fails or times out is
// logged and contributes zero items; siblings are unaffected, so the
// result may be partial but is never an error.
func (a *Aggregator) FetchAll(ctx context.Context) []media.Item {
	results := make([][]media.Item, len(a.groups))

	var wg sync.WaitGroup
	for i, group := range a.groups {
		wg.Add(1)
		go func(i int, group media.Group) {
			defer wg.Done()

			groupCtx, cancel := context.WithTimeout(ctx, a.timeout)
			defer cancel()

			items, err := a.fetcher.ListGroupItems(groupCtx, group, a.pageSize)
			if err != nil {
				log.Error().
					Err(err).
					Str("group_id", group.ID).
					Str("group_name", group.Name).
					Msg("Group fetch failed, continuing without it")
				return
			}
			results[i] = items
		}(i, group)
	}
	wg.Wait()

	merged := Aggregate(results)

	log.Debug().
		Int("groups", len(a.groups)).
		Int("items", len(merged)).
		Msg("Aggregation cycle finished")

	return merged
}

// Aggregate concatenates the groups' results in configured order,
// attaches the short-form classification, and orders everything by
// publish time, newest first. Equal timestamps keep their pre-sort
// order. Items are not deduplicated: a video fetched through two groups
// legitimately appears once per group.
func Aggregate(groupResults [][]media.Item) []media.Item {
	var merged []media.Item
	for _, items := range groupResults {
		for _, item := range items {
			item.ShortForm = media.Classify(item.Title, item.Description, item.DurationSeconds)
			merged = append(merged, item)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	return merged
}
