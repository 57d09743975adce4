package media

import "strings"

// shortFormMarker is the textual tag creators put on short-form uploads.
const shortFormMarker = "#shorts"

// shortFormMaxSeconds is the duration ceiling for short-form content.
const shortFormMaxSeconds = 60

// Classify reports whether an item is short-form content: at most a
// minute long, or tagged with the "#shorts" marker (any case) in its
// title or description.
func Classify(title, description string, durationSeconds int) bool {
	if durationSeconds <= shortFormMaxSeconds {
		return true
	}
	if strings.Contains(strings.ToLower(title), shortFormMarker) {
		return true
	}
	return strings.Contains(strings.ToLower(description), shortFormMarker)
}
