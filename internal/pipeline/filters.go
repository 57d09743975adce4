package pipeline

import "bitacora/mediafeed/internal/media"

// FilterByGroup returns the items belonging to one group. The synthetic
// aggregate id "all" (or an empty id) returns the input unmodified.
func FilterByGroup(items []media.Item, groupID string) []media.Item {
	if groupID == "" || groupID == media.GroupAll {
		return items
	}

	filtered := make([]media.Item, 0, len(items))
	for _, item := range items {
		if item.GroupID == groupID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterByForm returns only short-form or only long-form items.
func FilterByForm(items []media.Item, wantShort bool) []media.Item {
	filtered := make([]media.Item, 0, len(items))
	for _, item := range items {
		if item.ShortForm == wantShort {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
