package timer

import (
	"fmt"
	"time"
)

// Format renders d as HH:MM:SS. Hours are padded to two digits and grow
// past 99 instead of wrapping; sub-second parts are truncated.
func Format(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
