package media

import (
	"fmt"
	"strconv"
)

// FormatCount abbreviates view and like counters for display:
// 2300000 -> "2.3M", 1500 -> "1.5K", 999 -> "999".
func FormatCount(n uint64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.FormatUint(n, 10)
	}
}
