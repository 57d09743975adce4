package media

import (
	"fmt"
	"regexp"
	"strconv"
)

// ISO 8601 duration as reported by the videos endpoint, e.g. "PT1H2M3S".
// Each component is optional.
var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converts a broadcast-duration code into total seconds.
// Malformed or empty input yields 0, never an error.
func ParseDuration(code string) int {
	m := durationRe.FindStringSubmatch(code)
	if m == nil {
		return 0
	}

	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	return hours*3600 + minutes*60 + seconds
}

// FormatDuration renders seconds as "M:SS", or "H:MM:SS" once an hour
// component is present.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
