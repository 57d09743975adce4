package pipeline

import (
	"testing"

	"bitacora/mediafeed/internal/media"
)

func TestPlaceholdersShape(t *testing.T) {
	items := Placeholders()

	if len(items) == 0 {
		t.Fatal("Placeholders() returned no items")
	}

	for _, item := range items {
		if item.ID == "" || item.Title == "" || item.ThumbnailURL == "" {
			t.Errorf("placeholder missing required fields: %+v", item)
		}
		if item.PublishedAt.IsZero() {
			t.Errorf("placeholder %s has zero publish time", item.ID)
		}
		if item.GroupID == "" || item.GroupID == media.GroupAll {
			t.Errorf("placeholder %s must belong to a real group, got %q", item.ID, item.GroupID)
		}
		if want := media.Classify(item.Title, item.Description, item.DurationSeconds); item.ShortForm != want {
			t.Errorf("placeholder %s classification = %v, want %v", item.ID, item.ShortForm, want)
		}
	}
}

func TestPlaceholdersOrdered(t *testing.T) {
	items := Placeholders()

	for i := 1; i < len(items); i++ {
		if items[i].PublishedAt.After(items[i-1].PublishedAt) {
			t.Fatalf("Placeholders() not ordered newest first at index %d", i)
		}
	}
}

func TestPlaceholdersReturnsFreshCopy(t *testing.T) {
	first := Placeholders()
	first[0].Title = "mutated"

	second := Placeholders()
	if second[0].Title == "mutated" {
		t.Error("Placeholders() shares state between calls")
	}
}
