package video

import "fmt"

// FormatSeconds renders whole seconds as zero-padded MM:SS. Minutes are not
// wrapped into hours: 3661 seconds renders as "61:01".
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatClock renders "elapsed / total" for a frame position.
func FormatClock(current, total int, fps float64) string {
	return FormatSeconds(Seconds(current, fps)) + " / " + FormatSeconds(Seconds(total, fps))
}
