package pagination

import (
	"testing"
	"time"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2023, 12, 15, 15, 30, 0, 123456789, time.UTC)
	id := "dQw4w9WgXcQ"

	cursor := EncodeCursor(ts, id)

	gotTS, gotID, err := DecodeCursor(cursor)
	if err != nil {
		t.Fatalf("DecodeCursor() returned error: %v", err)
	}
	if !gotTS.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", gotTS, ts)
	}
	if gotID != id {
		t.Errorf("id = %q, want %q", gotID, id)
	}
}

func TestDecodeCursorInvalid(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"no separator", "bm9zZXBhcmF0b3I="},      // "noseparator"
		{"bad timestamp", "bm90LWEtdGltZSx2aWQx"}, // "not-a-time,vid1"
		{"empty id", EncodeCursor(time.Now(), "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeCursor(tt.cursor); err == nil {
				t.Errorf("DecodeCursor(%q) should fail", tt.cursor)
			}
		})
	}
}
